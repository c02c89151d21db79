package notestests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/notesvc/notes-contract-tests/framework"
)

func testUpdateNotePartial(s *TestSuite) error {
	if !s.RequireTestData("Update note (partial)", 1) {
		return nil
	}
	record := s.TestData()[0]
	noteID := record.GetByKey("id").StringValue()
	newTitle := "Updated Title " + generateRandomString(6)

	resp, err := s.api.UpdateNote(noteID, NoteUpdate{Title: ldvalue.NewOptionalString(newTitle)})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "Update note (partial)") {
		return nil
	}
	success, body := s.AssertJSON(resp, "Update returns valid JSON", nil)
	if !success {
		return nil
	}
	s.AssertField(body, "title", ldvalue.String(newTitle), "Title was updated correctly")

	// Partial-update law: fields absent from the request are unchanged.
	after, err := s.api.GetNote(noteID)
	if err != nil {
		return err
	}
	readOK, afterBody := s.AssertJSON(after, "Updated note can be fetched", nil)
	if readOK {
		s.AssertField(afterBody, "title", ldvalue.String(newTitle), "Fetched note has the new title")
		s.AssertField(afterBody, "body", record.GetByKey("body"), "Fetched note body is unchanged")
	}
	return nil
}

func testUpdateNoteComplete(s *TestSuite) error {
	if !s.RequireTestData("Update note (complete)", 1) {
		return nil
	}
	data := s.TestData()
	noteID := data[len(data)-1].GetByKey("id").StringValue()

	newTitle := "Complete Title " + generateRandomString(6)
	newBody := "Content completely updated."
	newTags := []string{"updated", "complete"}

	resp, err := s.api.UpdateNote(noteID, NoteUpdate{
		Title: ldvalue.NewOptionalString(newTitle),
		Body:  ldvalue.NewOptionalString(newBody),
		Tags:  newTags,
	})
	if err != nil {
		return err
	}
	if !s.AssertStatus(resp, []int{200}, "Update note (complete)") {
		return nil
	}
	success, body := s.AssertJSON(resp, "Update returns valid JSON", nil)
	if !success {
		return nil
	}

	result := framework.NewResult("All fields were updated")
	if !body.GetByKey("title").Equal(ldvalue.String(newTitle)) ||
		!body.GetByKey("body").Equal(ldvalue.String(newBody)) ||
		!body.GetByKey("tags").Equal(tagsValue(newTags)) {
		result.Fail("Some fields were not updated correctly")
	}
	s.Record(result)
	return nil
}
