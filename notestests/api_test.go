package notestests

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/notesvc/notes-contract-tests/client"
)

func recordingAPI(t *testing.T) (*NotesAPI, <-chan httphelpers.HTTPRequestInfo) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(map[string]string{"id": "abc"}, nil))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewNotesAPI(client.New(server.URL, nil)), requests
}

func nextRequest(t *testing.T, ch <-chan httphelpers.HTTPRequestInfo) httphelpers.HTTPRequestInfo {
	t.Helper()
	select {
	case info := <-ch:
		return info
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for recorded request")
		return httphelpers.HTTPRequestInfo{}
	}
}

func TestCreateNoteBody(t *testing.T) {
	api, requests := recordingAPI(t)

	_, err := api.CreateNote("a title", "a body", nil)
	require.NoError(t, err)
	info := nextRequest(t, requests)
	assert.Equal(t, "POST", info.Request.Method)
	assert.Equal(t, "/notes", info.Request.URL.Path)
	assert.JSONEq(t, `{"title":"a title","body":"a body"}`, string(info.Body))

	_, err = api.CreateNote("a title", "a body", []string{"work", "urgent"})
	require.NoError(t, err)
	info = nextRequest(t, requests)
	assert.JSONEq(t, `{"title":"a title","body":"a body","tags":["work","urgent"]}`, string(info.Body))
}

func TestListNotesQueryEncoding(t *testing.T) {
	api, requests := recordingAPI(t)

	_, err := api.ListNotes(ListNotesOptions{
		Page:      ldvalue.NewOptionalInt(2),
		Limit:     ldvalue.NewOptionalInt(5),
		Search:    "meeting",
		Tags:      []string{"work", "urgent"},
		SortBy:    "createdAt",
		SortOrder: "DESC",
	})
	require.NoError(t, err)

	info := nextRequest(t, requests)
	query := info.Request.URL.Query()
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "5", query.Get("limit"))
	assert.Equal(t, "meeting", query.Get("search"))
	assert.Equal(t, []string{"work", "urgent"}, query["tags"])
	assert.Equal(t, "createdAt", query.Get("sortBy"))
	assert.Equal(t, "DESC", query.Get("sortOrder"))
}

func TestListNotesOmitsUnsetParams(t *testing.T) {
	api, requests := recordingAPI(t)

	_, err := api.ListNotes(ListNotesOptions{})
	require.NoError(t, err)

	info := nextRequest(t, requests)
	assert.Equal(t, "/notes", info.Request.URL.Path)
	assert.Empty(t, info.Request.URL.RawQuery)
}

func TestGetAndDeleteNotePaths(t *testing.T) {
	api, requests := recordingAPI(t)

	_, err := api.GetNote("some-id")
	require.NoError(t, err)
	info := nextRequest(t, requests)
	assert.Equal(t, "GET", info.Request.Method)
	assert.Equal(t, "/notes/some-id", info.Request.URL.Path)

	_, err = api.DeleteNote("some-id")
	require.NoError(t, err)
	info = nextRequest(t, requests)
	assert.Equal(t, "DELETE", info.Request.Method)
	assert.Equal(t, "/notes/some-id", info.Request.URL.Path)
}

func TestUpdateNotePartialBodyOmitsUnsetFields(t *testing.T) {
	api, requests := recordingAPI(t)

	_, err := api.UpdateNote("some-id", NoteUpdate{Title: ldvalue.NewOptionalString("new title")})
	require.NoError(t, err)
	info := nextRequest(t, requests)
	assert.Equal(t, "PATCH", info.Request.Method)
	assert.JSONEq(t, `{"title":"new title"}`, string(info.Body))

	_, err = api.UpdateNote("some-id", NoteUpdate{
		Title: ldvalue.NewOptionalString("t"),
		Body:  ldvalue.NewOptionalString("b"),
		Tags:  []string{"x"},
	})
	require.NoError(t, err)
	info = nextRequest(t, requests)
	assert.JSONEq(t, `{"title":"t","body":"b","tags":["x"]}`, string(info.Body))
}

func TestUpdateNoteEmptyTagsClearsTags(t *testing.T) {
	api, requests := recordingAPI(t)

	// A non-nil empty slice sends tags:[], which is different from omitting it.
	_, err := api.UpdateNote("some-id", NoteUpdate{Tags: []string{}})
	require.NoError(t, err)
	info := nextRequest(t, requests)
	assert.JSONEq(t, `{"tags":[]}`, string(info.Body))
}
