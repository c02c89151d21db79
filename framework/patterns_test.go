package framework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type capturingRecorder struct {
	results []Result
}

func (c *capturingRecorder) Record(r Result) {
	c.results = append(c.results, r)
}

func cannedCreate(status int, body string) CreateFunc {
	return func(payload ldvalue.Value) (Response, error) {
		return jsonResponse(status, body), nil
	}
}

func cannedRead(status int, body string) ReadFunc {
	return func(id string) (Response, error) {
		return jsonResponse(status, body), nil
	}
}

func cannedList(status int, body string) ListFunc {
	return func(page, limit ldvalue.OptionalInt) (Response, error) {
		return jsonResponse(status, body), nil
	}
}

func TestCreatePatternSuccess(t *testing.T) {
	rec := &capturingRecorder{}
	ok, body, err := TestCreate(rec, cannedCreate(201, `{"id":"abc"}`), ldvalue.Null(), "create", nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", body.GetByKey("id").StringValue())

	require.Len(t, rec.results, 2)
	assert.Equal(t, "create", rec.results[0].Name)
	assert.Equal(t, "create - valid JSON", rec.results[1].Name)
	assert.True(t, rec.results[0].OK())
	assert.True(t, rec.results[1].OK())
}

func TestCreatePatternShortCircuitsOnStatus(t *testing.T) {
	rec := &capturingRecorder{}
	ok, body, err := TestCreate(rec, cannedCreate(500, `oops`), ldvalue.Null(), "create", nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, body.IsNull())

	// Only the status assertion ran.
	require.Len(t, rec.results, 1)
	assert.False(t, rec.results[0].OK())
}

func TestCreatePatternMissingRequiredField(t *testing.T) {
	rec := &capturingRecorder{}
	ok, body, err := TestCreate(rec, cannedCreate(201, `{"name":"abc"}`), ldvalue.Null(), "create", nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, body.IsNull())

	require.Len(t, rec.results, 2)
	assert.Contains(t, rec.results[1].Info(), "id")
}

func TestCreatePatternPropagatesTransportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	create := func(payload ldvalue.Value) (Response, error) {
		return Response{}, transportErr
	}
	_, _, err := TestCreate(nil, create, ldvalue.Null(), "create", nil, nil)
	assert.ErrorIs(t, err, transportErr)
}

func TestCreatePatternNilRecorderDiscardsResults(t *testing.T) {
	ok, _, err := TestCreate(nil, cannedCreate(200, `{"id":"abc"}`), ldvalue.Null(), "create", nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadPattern(t *testing.T) {
	rec := &capturingRecorder{}
	ok, body, err := TestRead(rec, cannedRead(200, `{"id":"abc","title":"t","body":"b"}`),
		"abc", "read", nil, []string{"id", "title", "body"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", body.GetByKey("title").StringValue())
	assert.Len(t, rec.results, 2)
}

func TestUpdatePatternRequiresNoFields(t *testing.T) {
	update := func(id string, payload ldvalue.Value) (Response, error) {
		return jsonResponse(200, `{"anything":"goes"}`), nil
	}
	ok, body, err := TestUpdate(nil, update, "abc", ldvalue.Null(), "update", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "goes", body.GetByKey("anything").StringValue())
}

func TestDeletePatternDefaultStatuses(t *testing.T) {
	for _, status := range []int{200, 204} {
		del := func(id string) (Response, error) {
			return Response{StatusCode: status}, nil
		}
		ok, err := TestDelete(nil, del, "abc", fmt.Sprintf("delete %d", status), nil)
		require.NoError(t, err)
		assert.True(t, ok, "status %d should be accepted", status)
	}

	del := func(id string) (Response, error) {
		return Response{StatusCode: 500}, nil
	}
	ok, err := TestDelete(nil, del, "abc", "delete", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNotFoundPattern(t *testing.T) {
	ok, err := TestNotFound(nil, cannedRead(404, `{"error":"not found"}`), "bad-id", "missing")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TestNotFound(nil, cannedRead(200, `{}`), "bad-id", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaginationStructurePattern(t *testing.T) {
	ok, body, err := TestPaginationStructure(nil,
		cannedList(200, `{"items":[],"total":0,"page":1,"limit":10,"pageCount":0}`),
		ldvalue.OptionalInt{}, ldvalue.OptionalInt{}, "structure")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, body.GetByKey("total").IntValue())
}

func TestPaginationParamsPatternEchoesRequest(t *testing.T) {
	rec := &capturingRecorder{}
	list := func(page, limit ldvalue.OptionalInt) (Response, error) {
		body := fmt.Sprintf(`{"items":[{},{}],"total":6,"page":%d,"limit":%d,"pageCount":3}`,
			page.IntValue(), limit.IntValue())
		return jsonResponse(200, body), nil
	}
	ok, body, err := TestPaginationParams(rec, list, 1, 2, "params")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, body.GetByKey("items").Count())

	// status, structure, limit, page
	require.Len(t, rec.results, 4)
	for _, r := range rec.results {
		assert.True(t, r.OK(), r.String())
	}
}

func TestPaginationParamsPatternFailsWhenItemsExceedLimit(t *testing.T) {
	rec := &capturingRecorder{}
	list := cannedList(200, `{"items":[{},{},{}],"total":3,"page":1,"limit":2,"pageCount":2}`)
	ok, _, err := TestPaginationParams(rec, list, 1, 2, "params")
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, rec.results, 4)
	limitResult := rec.results[2]
	assert.False(t, limitResult.OK())
	assert.Contains(t, limitResult.Info(), "greater than limit")
}

func TestPaginationParamsPatternWrongEcho(t *testing.T) {
	list := cannedList(200, `{"items":[],"total":0,"page":7,"limit":9,"pageCount":0}`)
	ok, _, err := TestPaginationParams(nil, list, 1, 2, "params")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaginationPageCountPattern(t *testing.T) {
	ok, err := TestPaginationPageCount(nil,
		cannedList(200, `{"items":[],"total":25,"page":1,"limit":10,"pageCount":3}`), "count")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TestPaginationPageCount(nil,
		cannedList(200, `{"items":[],"total":25,"page":1,"limit":10,"pageCount":2}`), "count")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaginationPageCountPatternZeroLimit(t *testing.T) {
	// A non-positive limit in the response makes the expected page count 0.
	ok, err := TestPaginationPageCount(nil,
		cannedList(200, `{"items":[],"total":25,"page":1,"limit":0,"pageCount":0}`), "count")
	require.NoError(t, err)
	assert.True(t, ok)
}
