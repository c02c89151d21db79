package notestests

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/notesvc/notes-contract-tests/framework"
)

const unknownNoteID = "00000000-0000-0000-0000-000000000000"

func (s *TestSuite) listFunc() framework.ListFunc {
	return func(page, limit ldvalue.OptionalInt) (framework.Response, error) {
		return s.api.ListNotes(ListNotesOptions{Page: page, Limit: limit})
	}
}

func testGetNoteByID(s *TestSuite) error {
	if !s.RequireTestData("Get note by ID", 1) {
		return nil
	}
	noteID := s.TestData()[0].GetByKey("id").StringValue()
	_, _, err := framework.TestRead(s, s.api.GetNote, noteID,
		"Get note by ID", nil, []string{"id", "title", "body"})
	return err
}

func testGetNoteInvalidID(s *TestSuite) error {
	_, err := framework.TestNotFound(s, s.api.GetNote, unknownNoteID,
		"Get note with invalid ID → 404")
	return err
}

// Fetching the same unmodified note twice must yield the same title, body,
// and tags.
func testGetNoteIdempotent(s *TestSuite) error {
	if !s.RequireTestData("Get note is idempotent", 1) {
		return nil
	}
	noteID := s.TestData()[0].GetByKey("id").StringValue()

	first, err := s.api.GetNote(noteID)
	if err != nil {
		return err
	}
	second, err := s.api.GetNote(noteID)
	if err != nil {
		return err
	}

	ok1, firstResult, body1 := framework.AssertJSONStructure(first,
		"Get note is idempotent - first read", nil, ldvalue.ObjectType)
	s.Record(firstResult)
	ok2, secondResult, body2 := framework.AssertJSONStructure(second,
		"Get note is idempotent - second read", nil, ldvalue.ObjectType)
	s.Record(secondResult)

	result := framework.NewResult("Get note is idempotent")
	if !ok1 || !ok2 {
		result.Fail("Repeated GET did not return a JSON object")
	} else {
		for _, field := range []string{"title", "body", "tags"} {
			if !body1.GetByKey(field).Equal(body2.GetByKey(field)) {
				result.Fail("Repeated GET returned a different " + field)
				break
			}
		}
	}
	s.Record(result)
	return nil
}

func testListAllNotes(s *TestSuite) error {
	resp, err := s.api.ListNotes(ListNotesOptions{})
	if err != nil {
		return err
	}
	if s.AssertStatus(resp, []int{200}, "List all notes") {
		s.AssertPagination(resp, "List returns correct structure")
	}
	return nil
}

func testPagination(s *TestSuite) error {
	_, _, err := framework.TestPaginationParams(s, s.listFunc(), 1, 2,
		"Pagination works correctly")
	return err
}

func testPaginationPageCount(s *TestSuite) error {
	_, err := framework.TestPaginationPageCount(s, s.listFunc(),
		"Pagination page count is correct")
	return err
}

func testSorting(s *TestSuite) error {
	resp, err := s.api.ListNotes(ListNotesOptions{SortBy: "createdAt", SortOrder: "DESC"})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "Sort by createdAt DESC") {
		return nil
	}
	success, body := s.AssertPagination(resp, "Sorting returns paginated response")
	if !success {
		return nil
	}

	items := body.GetByKey("items")
	if items.Count() < 2 {
		return nil
	}
	result := framework.NewResult("DESC sorting works correctly")
	prev := ""
	for i := 0; i < items.Count(); i++ {
		// RFC 3339 timestamps compare correctly as strings.
		createdAt := items.GetByIndex(i).GetByKey("createdAt").StringValue()
		if createdAt == "" {
			continue
		}
		if prev != "" && createdAt > prev {
			result.Fail("Items are not sorted correctly")
			break
		}
		prev = createdAt
	}
	s.Record(result)
	return nil
}

func testSearchByKeywords(s *TestSuite) error {
	if !s.RequireTestData("Search by keywords in title", 1) {
		return nil
	}
	title := s.TestData()[0].GetByKey("title").StringValue()
	searchTerm := strings.Fields(title)[0]

	resp, err := s.api.ListNotes(ListNotesOptions{Search: searchTerm})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "Search by keywords in title") {
		return nil
	}
	success, body := s.AssertPagination(resp, "Search returns paginated response")
	if !success {
		return nil
	}

	result := framework.NewResult("Search returns relevant results")
	if body.GetByKey("items").Count() == 0 {
		result.Fail("Search did not return results")
	}
	s.Record(result)
	return nil
}

func testFilterByTags(s *TestSuite) error {
	var tag string
	for _, note := range s.TestData() {
		if tags := note.GetByKey("tags"); tags.Count() > 0 {
			tag = tags.GetByIndex(0).StringValue()
			break
		}
	}
	if tag == "" {
		result := framework.NewResult("Tag filter works")
		result.Fail("No note with tags created previously")
		s.Record(result)
		return nil
	}

	resp, err := s.api.ListNotes(ListNotesOptions{Tags: []string{tag}})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "Tag filter works") {
		return nil
	}
	success, body := s.AssertPagination(resp, "Tag filter returns paginated response")
	if !success {
		return nil
	}

	result := framework.NewResult("Filter returns notes with the tag")
	items := body.GetByKey("items")
	if items.Count() == 0 {
		result.Fail("Filter did not return results")
	} else if !anyItemHasTag(items, tag) {
		result.Fail("No returned note contains the filtered tag")
	}
	s.Record(result)
	return nil
}

func anyItemHasTag(items ldvalue.Value, tag string) bool {
	for i := 0; i < items.Count(); i++ {
		itemTags := items.GetByIndex(i).GetByKey("tags")
		for j := 0; j < itemTags.Count(); j++ {
			if itemTags.GetByIndex(j).StringValue() == tag {
				return true
			}
		}
	}
	return false
}

func testSearchAndFilterCombined(s *TestSuite) error {
	if !s.RequireTestData("Combination of search and tag filter", 1) {
		return nil
	}
	resp, err := s.api.ListNotes(ListNotesOptions{Search: "test", Tags: []string{"work"}})
	if err != nil {
		return err
	}
	s.AssertStatus(resp, []int{200}, "Combination of search and tag filter")
	return nil
}
