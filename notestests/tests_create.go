package notestests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func testHealthCheck(s *TestSuite) error {
	resp, err := s.api.HealthCheck("")
	if err != nil {
		return err
	}
	if s.AssertStatus(resp, []int{200}, "Health check responds correctly") {
		s.AssertJSON(resp, "Health check returns valid JSON", []string{"status"})
	}
	return nil
}

// createAndTrack runs one create scenario. On success the created note is
// mirrored into the suite's scratch data (id plus the inputs we sent) so
// later scenarios can read, update, and delete it. Rejected creates track
// nothing.
func (s *TestSuite) createAndTrack(
	title, body string,
	tags []string,
	statusName, jsonName string,
) (ldvalue.Value, bool, error) {
	resp, err := s.api.CreateNote(title, body, tags)
	if err != nil {
		return ldvalue.Null(), false, err
	}
	if !s.AssertStatus(resp, []int{200, 201}, statusName) {
		return ldvalue.Null(), false, nil
	}
	success, respBody := s.AssertJSON(resp, jsonName, []string{"id"})
	if !success {
		return ldvalue.Null(), false, nil
	}

	// A non-string id would poison the scratch data for every later scenario.
	if !s.AssertFieldIsType(respBody, "id", ldvalue.StringType, statusName+" - id is a string") {
		return respBody, false, nil
	}

	id := respBody.GetByKey("id").StringValue()
	record := ldvalue.ObjectBuild().
		Set("id", ldvalue.String(id)).
		Set("title", ldvalue.String(title)).
		Set("body", ldvalue.String(body))
	if len(tags) > 0 {
		record.Set("tags", tagsValue(tags))
	}
	s.AddTestData(record.Build())
	s.api.CreatedNotes = append(s.api.CreatedNotes, id)

	return respBody, true, nil
}

func testCreateValidNote(s *TestSuite) error {
	title := "Test Note " + generateRandomString(8)
	body := "This is the test note content."
	_, _, err := s.createAndTrack(title, body, nil,
		"Create valid note", "Create note returns valid JSON")
	return err
}

func testCreateNoteWithTags(s *TestSuite) error {
	title := "Note with Tags " + generateRandomString(8)
	body := "Note content with tags."
	tags := []string{"work", "important", "urgent"}

	respBody, ok, err := s.createAndTrack(title, body, tags,
		"Create note with tags", "Create note with tags returns valid JSON")
	if err != nil || !ok {
		return err
	}

	if s.AssertFieldIsType(respBody, "tags", ldvalue.ArrayType, "Tags were saved correctly") {
		s.AssertField(respBody, "tags", tagsValue(tags), "Tags match expected values")
	}
	return nil
}

func testCreateNoteWithoutTags(s *TestSuite) error {
	title := "Note without Tags " + generateRandomString(8)
	body := "Note content without tags."
	_, _, err := s.createAndTrack(title, body, nil,
		"Create note without tags", "Create note without tags returns valid JSON")
	return err
}
