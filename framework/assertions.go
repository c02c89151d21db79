package framework

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// This file contains the assertion functions that every test pattern and
// scenario is built from. They are pure: they inspect an already-received
// Response (or a parsed ldvalue.Value) and produce a Result. A malformed
// response always becomes a failed Result, never a panic or an error.

// AssertStatusCode checks that the response status is one of expectedCodes.
// On failure the message includes the actual status and a bounded preview of
// the body.
func AssertStatusCode(resp Response, expectedCodes []int, name string) Result {
	result := NewResult(name)
	for _, code := range expectedCodes {
		if resp.StatusCode == code {
			return result
		}
	}
	result.Fail(fmt.Sprintf("HTTP %d, body=%s", resp.StatusCode, resp.BodyPreview(defaultBodyPreviewLength)))
	return result
}

// AssertJSONStructure checks that the response body parses as JSON, that the
// parsed value has the expected structural type, and (when the value is an
// object) that every requiredFields member is present.
//
// The parsed body is returned even when required fields are missing, so the
// caller can inspect it; on a parse or type failure the returned value is
// ldvalue.Null().
func AssertJSONStructure(
	resp Response,
	name string,
	requiredFields []string,
	expectedType ldvalue.ValueType,
) (bool, Result, ldvalue.Value) {
	result := NewResult(name)

	var body ldvalue.Value
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		result.Fail("Response is not valid JSON")
		return false, result, ldvalue.Null()
	}

	if body.Type() != expectedType {
		result.Fail(fmt.Sprintf("Response is not of type %s", expectedType))
		return false, result, ldvalue.Null()
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := body.TryGetByKey(field); !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		result.Fail(fmt.Sprintf("Missing required fields: [%s]", strings.Join(missing, ", ")))
		return false, result, body
	}

	return true, result, body
}

// AssertPaginationStructure checks that the response is a JSON object with
// the pagination envelope fields (items, total, page, limit) and that items
// is an array.
func AssertPaginationStructure(resp Response, name string) (bool, Result, ldvalue.Value) {
	success, result, body := AssertJSONStructure(
		resp,
		name,
		[]string{"items", "total", "page", "limit"},
		ldvalue.ObjectType,
	)
	if !success {
		return false, result, ldvalue.Null()
	}

	if body.GetByKey("items").Type() != ldvalue.ArrayType {
		result.Fail("Field 'items' is not an array")
		return false, result, body
	}

	return true, result, body
}

// AssertFieldValue checks that the named field is present in data and exactly
// equals the expected value.
func AssertFieldValue(data ldvalue.Value, field string, expected ldvalue.Value, name string) Result {
	result := NewResult(name)

	actual, ok := data.TryGetByKey(field)
	if !ok {
		result.Fail(fmt.Sprintf("Field '%s' not found in response", field))
		return result
	}
	if !actual.Equal(expected) {
		result.Fail(fmt.Sprintf("Expected %s=%s, obtained %s", field, expected.JSONString(), actual.JSONString()))
	}
	return result
}

// AssertFieldType checks that the named field is present in data and that its
// value has the expected JSON type.
func AssertFieldType(data ldvalue.Value, field string, expectedType ldvalue.ValueType, name string) Result {
	result := NewResult(name)

	actual, ok := data.TryGetByKey(field)
	if !ok {
		result.Fail(fmt.Sprintf("Field '%s' not found in response", field))
		return result
	}
	if actual.Type() != expectedType {
		result.Fail(fmt.Sprintf("Field '%s' is not of type %s. Type: %s, Value: %s",
			field, expectedType, actual.Type(), actual.JSONString()))
	}
	return result
}
