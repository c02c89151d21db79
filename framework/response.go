package framework

import "net/http"

// Response is an HTTP response that has already been fully read. Assertions
// operate on Responses rather than live *http.Response values so the body can
// be inspected any number of times.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

const defaultBodyPreviewLength = 200

// BodyPreview returns at most n bytes of the body for use in failure
// messages, or "empty" if there was no body.
func (r Response) BodyPreview(n int) string {
	if len(r.Body) == 0 {
		return "empty"
	}
	if len(r.Body) > n {
		return string(r.Body[:n])
	}
	return string(r.Body)
}
