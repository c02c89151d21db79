package framework

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Result is the outcome of a single named assertion. A Result starts out
// passing; an assertion that detects a mismatch calls Fail exactly once,
// after which the Result is not modified again.
type Result struct {
	Name string
	ok   bool
	info string
}

// NewResult creates a passing Result with the given assertion name.
func NewResult(name string) Result {
	return Result{Name: name, ok: true}
}

// Fail marks the Result as failed and records the diagnostic message.
func (r *Result) Fail(msg string) {
	r.ok = false
	r.info = msg
}

// Success marks the Result as passed, optionally attaching a message.
func (r *Result) Success(msg string) {
	r.ok = true
	if msg != "" {
		r.info = msg
	}
}

// OK reports whether the assertion passed.
func (r Result) OK() bool {
	return r.ok
}

// Info returns the diagnostic message, if any.
func (r Result) Info() string {
	return r.info
}

func (r Result) String() string {
	mark := color.GreenString("✓")
	if !r.ok {
		mark = color.RedString("✗")
	}
	info := ""
	if r.info != "" {
		info = " - " + r.info
	}
	return fmt.Sprintf("%s %s%s", mark, r.Name, info)
}

// ResultRecorder receives Results as they are produced. The Suite implements
// it; test patterns accept a nil recorder when intermediate Results should be
// discarded.
type ResultRecorder interface {
	Record(result Result)
}

// Results is the ordered collection of every Result recorded during a run.
type Results struct {
	All []Result
}

func (rs *Results) Add(r Result) {
	rs.All = append(rs.All, r)
}

// OK reports whether every recorded Result passed.
func (rs Results) OK() bool {
	return rs.Passed() == len(rs.All)
}

// Passed returns the number of passing Results.
func (rs Results) Passed() int {
	n := 0
	for _, r := range rs.All {
		if r.OK() {
			n++
		}
	}
	return n
}

// Print reprints every Result followed by the pass/total line.
func (rs Results) Print(w io.Writer) {
	fmt.Fprintln(w, "\n==== SUMMARY ====")
	for _, r := range rs.All {
		fmt.Fprintln(w, r.String())
	}
	fmt.Fprintf(w, "\n%d/%d tests passed.\n", rs.Passed(), len(rs.All))
}
