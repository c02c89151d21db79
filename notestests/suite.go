package notestests

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/notesvc/notes-contract-tests/framework"
)

// TestSuite is the Notes-specific suite: the generic Suite machinery plus the
// resource client the scenarios drive.
type TestSuite struct {
	*framework.Suite
	api *NotesAPI
}

type scenario struct {
	name string
	run  func(*TestSuite) error
}

// The fixed scenario order. Later scenarios depend on resources created by
// earlier ones (via the suite's scratch data); the delete scenarios must stay
// last because everything after them sees the deleted note.
func allScenarios() []scenario {
	return []scenario{
		{"health check", testHealthCheck},

		{"create valid note", testCreateValidNote},
		{"create note with tags", testCreateNoteWithTags},
		{"create note without tags", testCreateNoteWithoutTags},

		{"validation empty title", testValidationEmptyTitle},
		{"validation empty body", testValidationEmptyBody},
		{"validation title too long", testValidationTitleTooLong},

		{"get note by id", testGetNoteByID},
		{"get note invalid id", testGetNoteInvalidID},
		{"get note idempotent", testGetNoteIdempotent},

		{"list all notes", testListAllNotes},
		{"pagination", testPagination},
		{"pagination page count", testPaginationPageCount},
		{"sorting", testSorting},

		{"search by keywords", testSearchByKeywords},
		{"filter by tags", testFilterByTags},
		{"search and filter combined", testSearchAndFilterCombined},

		{"update note partial", testUpdateNotePartial},
		{"update note complete", testUpdateNoteComplete},

		{"delete note", testDeleteNote},
		{"deleted note not in listing", testDeletedNoteNotInListing},
		{"get deleted note", testGetDeletedNote},
	}
}

// RunOptions configures a test run.
type RunOptions struct {
	// Filter selects scenarios by name; nil runs everything.
	Filter framework.Filter
	// Out receives interleaved progress output; stdout if nil.
	Out io.Writer
	// DebugOutputOnFailure dumps the captured HTTP traffic of each scenario
	// that recorded a failed Result.
	DebugOutputOnFailure bool
	// DebugOutputOnSuccess dumps the captured HTTP traffic of passing
	// scenarios as well.
	DebugOutputOnSuccess bool
}

// RunTestSuite runs every scenario in order against the given API. A failed
// assertion does not stop the run; a transport fault does, and is returned
// along with whatever Results were recorded before it.
//
// The runner owns the client's request logging for the duration of the run:
// each scenario's HTTP traffic is captured separately and dumped per the
// debug options.
func RunTestSuite(api *NotesAPI, opts RunOptions) (framework.Results, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	s := &TestSuite{
		Suite: framework.NewSuite(out),
		api:   api,
	}

	for _, sc := range allScenarios() {
		if opts.Filter != nil && !opts.Filter(sc.name) {
			fmt.Fprintf(out, "SKIPPED: %s\n", sc.name)
			continue
		}

		var capture framework.CapturingLogger
		api.SetLogger(&capture)
		before := len(s.Results().All)
		err := sc.run(s)

		failed := err != nil || anyFailed(s.Results().All[before:])
		if output := capture.Output(); len(output) > 0 &&
			((failed && opts.DebugOutputOnFailure) || (!failed && opts.DebugOutputOnSuccess)) {
			output.Dump(out, "    DEBUG ")
		}

		if err != nil {
			return s.Results(), fmt.Errorf("scenario %q: %w", sc.name, err)
		}
	}

	return s.Results(), nil
}

func anyFailed(results []framework.Result) bool {
	for _, r := range results {
		if !r.OK() {
			return true
		}
	}
	return false
}

func generateRandomString(length int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(s) {
		length = len(s)
	}
	return s[:length]
}

func tagsValue(tags []string) ldvalue.Value {
	b := ldvalue.ArrayBuild()
	for _, tag := range tags {
		b.Add(ldvalue.String(tag))
	}
	return b.Build()
}
