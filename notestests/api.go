package notestests

import (
	"net/url"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/notesvc/notes-contract-tests/client"
	"github.com/notesvc/notes-contract-tests/framework"
)

const notesPath = "/notes"

// NotesAPI adds the Notes resource request builders on top of the base API
// client. It also tracks the ids of every note it successfully created, which
// is never appended to for a rejected (400/422) create.
type NotesAPI struct {
	*client.APIClient
	CreatedNotes []string
}

// NewNotesAPI wraps a base client with the Notes-specific builders.
func NewNotesAPI(base *client.APIClient) *NotesAPI {
	return &NotesAPI{APIClient: base}
}

// ListNotesOptions holds the query parameters for ListNotes. Undefined or
// zero-valued fields are omitted from the request entirely.
type ListNotesOptions struct {
	Page      ldvalue.OptionalInt
	Limit     ldvalue.OptionalInt
	Search    string
	Tags      []string
	SortBy    string
	SortOrder string
}

// NoteUpdate holds the fields of a PATCH request. Undefined fields are absent
// from the request body, which is what makes the update partial; a nil Tags
// slice is likewise omitted.
type NoteUpdate struct {
	Title ldvalue.OptionalString
	Body  ldvalue.OptionalString
	Tags  []string
}

// CreateNote creates a note. A nil or empty tags slice omits the tags field
// from the request body.
func (a *NotesAPI) CreateNote(title, body string, tags []string) (framework.Response, error) {
	payload := map[string]interface{}{
		"title": title,
		"body":  body,
	}
	if len(tags) > 0 {
		payload["tags"] = tags
	}
	return a.Post(notesPath, payload)
}

// ListNotes lists notes with the given pagination, search, filter, and sort
// parameters. List-valued tags are sent as repeated query keys
// (tags=a&tags=b).
func (a *NotesAPI) ListNotes(opts ListNotesOptions) (framework.Response, error) {
	params := url.Values{}
	if opts.Page.IsDefined() {
		params.Set("page", strconv.Itoa(opts.Page.IntValue()))
	}
	if opts.Limit.IsDefined() {
		params.Set("limit", strconv.Itoa(opts.Limit.IntValue()))
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	for _, tag := range opts.Tags {
		params.Add("tags", tag)
	}
	if opts.SortBy != "" {
		params.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		params.Set("sortOrder", opts.SortOrder)
	}
	return a.Get(notesPath, params)
}

// GetNote fetches a single note by id.
func (a *NotesAPI) GetNote(id string) (framework.Response, error) {
	return a.Get(notesPath+"/"+id, nil)
}

// UpdateNote applies a partial or complete update to a note.
func (a *NotesAPI) UpdateNote(id string, update NoteUpdate) (framework.Response, error) {
	payload := map[string]interface{}{}
	if update.Title.IsDefined() {
		payload["title"] = update.Title.StringValue()
	}
	if update.Body.IsDefined() {
		payload["body"] = update.Body.StringValue()
	}
	if update.Tags != nil {
		payload["tags"] = update.Tags
	}
	return a.Patch(notesPath+"/"+id, payload)
}

// DeleteNote soft-deletes a note.
func (a *NotesAPI) DeleteNote(id string) (framework.Response, error) {
	return a.Delete(notesPath + "/" + id)
}
