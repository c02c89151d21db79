package notestests

import "strings"

// Rejected creates must return 400 or 422 and, per createAndTrack, leave the
// scratch data and CreatedNotes untouched.

func testValidationEmptyTitle(s *TestSuite) error {
	resp, err := s.api.CreateNote("", "Valid content", nil)
	if err != nil {
		return err
	}
	s.AssertStatus(resp, []int{400, 422}, "Validation: empty title → 400")
	return nil
}

func testValidationEmptyBody(s *TestSuite) error {
	resp, err := s.api.CreateNote("Valid title", "", nil)
	if err != nil {
		return err
	}
	s.AssertStatus(resp, []int{400, 422}, "Validation: empty body → 400")
	return nil
}

func testValidationTitleTooLong(s *TestSuite) error {
	// Past the 255-character title limit.
	resp, err := s.api.CreateNote(strings.Repeat("A", 300), "Valid content", nil)
	if err != nil {
		return err
	}
	s.AssertStatus(resp, []int{400, 422}, "Validation: title too long → 400")
	return nil
}
