package wpt

import (
	"fmt"
	"net/http"
)

// TestRequest holds the runtest.php parameters. Values are passed through
// as strings; the service is responsible for rejecting bad ones.
type TestRequest struct {
	URL        string
	Label      string
	Runs       string
	FVOnly     string
	Login      string
	Password   string
	AuthType   string
	Video      string
	Lighthouse string
	Private    string
	Pingback   string
}

// SubmitResult is the runtest.php envelope.
type SubmitResult struct {
	StatusCode int    `json:"statusCode"`
	StatusText string `json:"statusText"`
	Data       struct {
		TestID string `json:"testId"`
	} `json:"data"`
}

// TestStatus is the data block of a testStatus.php reply.
type TestStatus struct {
	StatusCode int    `json:"statusCode"`
	StatusText string `json:"statusText"`
	ID         string `json:"id"`
}

// StatusResult is the testStatus.php envelope.
type StatusResult struct {
	Data TestStatus `json:"data"`
}

// HTTPError is returned when the service answers with a status of 300 or
// above. The body is not parsed in that case.
type HTTPError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Reason)
}

func newHTTPError(resp *http.Response) *HTTPError {
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
	}
}
