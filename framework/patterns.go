package framework

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Test patterns compose the assertion functions into reusable checks for the
// operations every CRUD-style API has. They are parameterized over
// caller-supplied request functions so the same pattern works for any
// resource type.
//
// Each pattern records the Results it produces through the given
// ResultRecorder; a nil recorder discards them, leaving only the returned
// outcome. A non-nil error always means a transport fault, which callers are
// expected to treat as fatal to the run.

// CreateFunc issues a create request with the given payload.
type CreateFunc func(payload ldvalue.Value) (Response, error)

// ReadFunc fetches a resource by id.
type ReadFunc func(id string) (Response, error)

// UpdateFunc applies a (possibly partial) update to a resource.
type UpdateFunc func(id string, payload ldvalue.Value) (Response, error)

// DeleteFunc deletes a resource by id.
type DeleteFunc func(id string) (Response, error)

// ListFunc issues a list request with optional paging parameters. An
// undefined OptionalInt means the parameter is omitted from the request.
type ListFunc func(page, limit ldvalue.OptionalInt) (Response, error)

func record(rec ResultRecorder, r Result) {
	if rec != nil {
		rec.Record(r)
	}
}

// TestCreate runs a create request and asserts the status code and response
// shape. expectedStatus defaults to [200, 201] and requiredFields to ["id"]
// when nil. It short-circuits, returning (false, Null) as soon as either
// assertion fails.
func TestCreate(
	rec ResultRecorder,
	create CreateFunc,
	payload ldvalue.Value,
	name string,
	expectedStatus []int,
	requiredFields []string,
) (bool, ldvalue.Value, error) {
	if expectedStatus == nil {
		expectedStatus = []int{200, 201}
	}
	if requiredFields == nil {
		requiredFields = []string{"id"}
	}

	resp, err := create(payload)
	if err != nil {
		return false, ldvalue.Null(), err
	}

	statusResult := AssertStatusCode(resp, expectedStatus, name)
	record(rec, statusResult)
	if !statusResult.OK() {
		return false, ldvalue.Null(), nil
	}

	success, jsonResult, body := AssertJSONStructure(resp, name+" - valid JSON", requiredFields, ldvalue.ObjectType)
	record(rec, jsonResult)
	if !success {
		return false, ldvalue.Null(), nil
	}

	return true, body, nil
}

// TestRead fetches a resource and asserts the status code and response shape.
// expectedStatus defaults to [200] when nil; requiredFields may be nil.
func TestRead(
	rec ResultRecorder,
	read ReadFunc,
	id string,
	name string,
	expectedStatus []int,
	requiredFields []string,
) (bool, ldvalue.Value, error) {
	if expectedStatus == nil {
		expectedStatus = []int{200}
	}

	resp, err := read(id)
	if err != nil {
		return false, ldvalue.Null(), err
	}

	statusResult := AssertStatusCode(resp, expectedStatus, name)
	record(rec, statusResult)
	if !statusResult.OK() {
		return false, ldvalue.Null(), nil
	}

	success, jsonResult, body := AssertJSONStructure(resp, name+" - valid JSON", requiredFields, ldvalue.ObjectType)
	record(rec, jsonResult)
	if !success {
		return false, ldvalue.Null(), nil
	}

	return true, body, nil
}

// TestUpdate applies an update and asserts the status code and that the
// response is a JSON object (no specific fields enforced). expectedStatus
// defaults to [200] when nil.
func TestUpdate(
	rec ResultRecorder,
	update UpdateFunc,
	id string,
	payload ldvalue.Value,
	name string,
	expectedStatus []int,
) (bool, ldvalue.Value, error) {
	if expectedStatus == nil {
		expectedStatus = []int{200}
	}

	resp, err := update(id, payload)
	if err != nil {
		return false, ldvalue.Null(), err
	}

	statusResult := AssertStatusCode(resp, expectedStatus, name)
	record(rec, statusResult)
	if !statusResult.OK() {
		return false, ldvalue.Null(), nil
	}

	success, jsonResult, body := AssertJSONStructure(resp, name+" - valid JSON", nil, ldvalue.ObjectType)
	record(rec, jsonResult)
	if !success {
		return false, ldvalue.Null(), nil
	}

	return true, body, nil
}

// TestDelete deletes a resource and asserts the status code. expectedStatus
// defaults to [200, 204] when nil.
func TestDelete(
	rec ResultRecorder,
	del DeleteFunc,
	id string,
	name string,
	expectedStatus []int,
) (bool, error) {
	if expectedStatus == nil {
		expectedStatus = []int{200, 204}
	}

	resp, err := del(id)
	if err != nil {
		return false, err
	}

	result := AssertStatusCode(resp, expectedStatus, name)
	record(rec, result)
	return result.OK(), nil
}

// TestNotFound asserts that fetching the given id returns exactly 404.
func TestNotFound(rec ResultRecorder, read ReadFunc, invalidID string, name string) (bool, error) {
	resp, err := read(invalidID)
	if err != nil {
		return false, err
	}

	result := AssertStatusCode(resp, []int{404}, name)
	record(rec, result)
	return result.OK(), nil
}

// TestPaginationStructure issues a list request and asserts the pagination
// envelope.
func TestPaginationStructure(
	rec ResultRecorder,
	list ListFunc,
	page, limit ldvalue.OptionalInt,
	name string,
) (bool, ldvalue.Value, error) {
	resp, err := list(page, limit)
	if err != nil {
		return false, ldvalue.Null(), err
	}

	success, result, body := AssertPaginationStructure(resp, name)
	record(rec, result)
	return success, body, nil
}

// TestPaginationParams issues a list request with explicit page and limit,
// asserts the envelope, and verifies that the response echoes the requested
// page and limit. If the server returned more items than the limit, the limit
// check fails but the run is not aborted.
func TestPaginationParams(
	rec ResultRecorder,
	list ListFunc,
	page, limit int,
	name string,
) (bool, ldvalue.Value, error) {
	resp, err := list(ldvalue.NewOptionalInt(page), ldvalue.NewOptionalInt(limit))
	if err != nil {
		return false, ldvalue.Null(), err
	}

	statusResult := AssertStatusCode(resp, []int{200}, name)
	record(rec, statusResult)
	if !statusResult.OK() {
		return false, ldvalue.Null(), nil
	}

	success, envResult, body := AssertPaginationStructure(resp, name+" - structure")
	record(rec, envResult)
	if !success {
		return false, ldvalue.Null(), nil
	}

	limitResult := AssertFieldValue(body, "limit", ldvalue.Int(limit), name+" - limit")
	pageResult := AssertFieldValue(body, "page", ldvalue.Int(page), name+" - page")

	if itemCount := body.GetByKey("items").Count(); itemCount > limit {
		limitResult.Fail(fmt.Sprintf("Returned items (%d) greater than limit (%d)", itemCount, limit))
	}

	record(rec, limitResult)
	record(rec, pageResult)

	return limitResult.OK() && pageResult.OK(), body, nil
}

// TestPaginationPageCount fetches the first page with limit 10 and verifies
// the server's pageCount against ceil(total/limit). A non-positive limit in
// the response makes the expected page count 0.
func TestPaginationPageCount(rec ResultRecorder, list ListFunc, name string) (bool, error) {
	resp, err := list(ldvalue.NewOptionalInt(1), ldvalue.NewOptionalInt(10))
	if err != nil {
		return false, err
	}

	success, envResult, body := AssertPaginationStructure(resp, name)
	record(rec, envResult)
	if !success {
		return false, nil
	}

	total := body.GetByKey("total").IntValue()
	limit := body.GetByKey("limit").IntValue()
	expectedPageCount := 0
	if limit > 0 {
		expectedPageCount = (total + limit - 1) / limit
	}

	result := AssertFieldValue(body, "pageCount", ldvalue.Int(expectedPageCount), name+" - calculation")
	record(rec, result)
	return result.OK(), nil
}
