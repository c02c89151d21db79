package notestests

import (
	"github.com/notesvc/notes-contract-tests/framework"
)

// Deletion is soft: after a successful delete the note must 404 on a direct
// GET and be excluded from listings, even though the server may retain it.

func testDeleteNote(s *TestSuite) error {
	if !s.RequireTestData("Delete note (soft delete)", 1) {
		return nil
	}
	data := s.TestData()
	noteID := data[len(data)-1].GetByKey("id").StringValue()

	_, err := framework.TestDelete(s, s.api.DeleteNote, noteID, "Delete note (soft delete)", nil)
	return err
}

func testDeletedNoteNotInListing(s *TestSuite) error {
	if !s.RequireTestData("Deleted note does not appear in listing", 1) {
		return nil
	}
	data := s.TestData()
	deletedID := data[len(data)-1].GetByKey("id").StringValue()

	resp, err := s.api.ListNotes(ListNotesOptions{})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "List notes after deletion") {
		return nil
	}
	success, body := s.AssertPagination(resp, "List returns paginated response")
	if !success {
		return nil
	}

	result := framework.NewResult("Deleted note does not appear in listing")
	items := body.GetByKey("items")
	for i := 0; i < items.Count(); i++ {
		if items.GetByIndex(i).GetByKey("id").StringValue() == deletedID {
			result.Fail("Deleted note still appears in listing")
			break
		}
	}
	s.Record(result)
	return nil
}

func testGetDeletedNote(s *TestSuite) error {
	if !s.RequireTestData("Get deleted note returns 404", 1) {
		return nil
	}
	data := s.TestData()
	deletedID := data[len(data)-1].GetByKey("id").StringValue()

	_, err := framework.TestNotFound(s, s.api.GetNote, deletedID, "Get deleted note returns 404")
	return err
}
