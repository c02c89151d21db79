package framework

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Suite owns the Results recorded during a run, plus a scratch list of data
// produced by earlier scenarios (created resources) that later scenarios
// depend on. Both are only ever touched from the single goroutine driving the
// run.
//
// The assertion wrappers record each Result, print it immediately so progress
// is visible as the run executes, and return the outcome for local branching.
type Suite struct {
	results  Results
	testData []ldvalue.Value
	out      io.Writer
}

// NewSuite creates a Suite writing interleaved progress output to out, or to
// stdout if out is nil.
func NewSuite(out io.Writer) *Suite {
	if out == nil {
		out = os.Stdout
	}
	return &Suite{out: out}
}

// Record appends the Result and prints it. Suite implements ResultRecorder so
// it can be handed to the test patterns.
func (s *Suite) Record(result Result) {
	fmt.Fprintln(s.out, result.String())
	s.results.Add(result)
}

// Results returns everything recorded so far.
func (s *Suite) Results() Results {
	return s.results
}

// AddTestData appends a record (usually a created resource) to the scratch
// list for later scenarios to use.
func (s *Suite) AddTestData(record ldvalue.Value) {
	s.testData = append(s.testData, record)
}

// TestData returns the scratch records in creation order.
func (s *Suite) TestData() []ldvalue.Value {
	return s.testData
}

// AssertStatus asserts the status code and records the Result.
func (s *Suite) AssertStatus(resp Response, expectedCodes []int, name string) bool {
	result := AssertStatusCode(resp, expectedCodes, name)
	s.Record(result)
	return result.OK()
}

// AssertJSON asserts that the body is a JSON object containing the required
// fields, records the Result, and returns the parsed body.
func (s *Suite) AssertJSON(resp Response, name string, requiredFields []string) (bool, ldvalue.Value) {
	success, result, body := AssertJSONStructure(resp, name, requiredFields, ldvalue.ObjectType)
	s.Record(result)
	return success, body
}

// AssertPagination asserts the pagination envelope and records the Result.
func (s *Suite) AssertPagination(resp Response, name string) (bool, ldvalue.Value) {
	success, result, body := AssertPaginationStructure(resp, name)
	s.Record(result)
	return success, body
}

// AssertField asserts an exact field value and records the Result.
func (s *Suite) AssertField(data ldvalue.Value, field string, expected ldvalue.Value, name string) bool {
	result := AssertFieldValue(data, field, expected, name)
	s.Record(result)
	return result.OK()
}

// AssertFieldIsType asserts a field's JSON type and records the Result.
func (s *Suite) AssertFieldIsType(data ldvalue.Value, field string, expectedType ldvalue.ValueType, name string) bool {
	result := AssertFieldType(data, field, expectedType, name)
	s.Record(result)
	return result.OK()
}

// RequireTestData guards scenarios that depend on resources created by
// earlier scenarios. When fewer than minCount records exist it records a
// synthetic failure and returns false, and the caller is expected to skip its
// HTTP calls entirely.
func (s *Suite) RequireTestData(name string, minCount int) bool {
	if len(s.testData) < minCount {
		result := NewResult(name)
		result.Fail(fmt.Sprintf("No test data available (need at least %d)", minCount))
		s.Record(result)
		return false
	}
	return true
}

// Summary reprints every Result with the pass/total line and reports whether
// the whole run passed.
func (s *Suite) Summary() bool {
	s.results.Print(s.out)
	return s.results.OK()
}
