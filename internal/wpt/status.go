package wpt

import "fmt"

// Band groups a status code by range.
type Band int

const (
	BandOther Band = iota
	BandBusy
	BandFinished
)

func (b Band) String() string {
	switch b {
	case BandBusy:
		return "busy"
	case BandFinished:
		return "finished"
	default:
		return "other"
	}
}

// Classify maps 1xx to busy, 2xx to finished and anything else to other.
func Classify(code int) Band {
	switch {
	case code >= 100 && code < 200:
		return BandBusy
	case code >= 200 && code < 300:
		return BandFinished
	default:
		return BandOther
	}
}

// StatusLine renders the single line printed for a test status.
func StatusLine(s TestStatus) string {
	switch Classify(s.StatusCode) {
	case BandBusy:
		return fmt.Sprintf("%s: Busy.\n", s.ID)
	case BandFinished:
		return fmt.Sprintf("%s: Finished.\n", s.ID)
	default:
		return fmt.Sprintf("%d: %s\n", s.StatusCode, s.StatusText)
	}
}
