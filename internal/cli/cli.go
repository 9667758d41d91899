// Package cli holds the flows behind the wptclient and wptteststatus
// commands. Each flow prints one result line and returns the exit code.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/wptclient/wptclient/internal/wpt"
)

// Process exit codes.
const (
	ExitOK = 0
	// ExitUsage covers a missing argument or bad configuration.
	ExitUsage = 1
	// ExitSubmitFailed means runtest.php could not be reached or answered >= 300.
	ExitSubmitFailed = 1
	// ExitSubmitRejected means runtest.php answered but refused the test.
	ExitSubmitRejected = 2
	// ExitStatusFailed means testStatus.php could not be reached, answered
	// >= 300 or sent an unreadable body.
	ExitStatusFailed = 3
)

// ErrMissingTestID is returned by ParseStatusArgs when no test id is given.
var ErrMissingTestID = errors.New("Missing test id")

// ParseStatusArgs returns the test id from the wptteststatus arguments
// (without the program name). The first argument is the id as given, even
// when it starts with a dash. Extra arguments are ignored.
func ParseStatusArgs(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingTestID
	}

	testID := strings.TrimSpace(args[0])
	if testID == "" {
		return "", ErrMissingTestID
	}
	return testID, nil
}

// Runner drives the client and writes result lines to out.
type Runner struct {
	client wpt.Client
	logger log.Logger
	out    io.Writer
}

func NewRunner(client wpt.Client, logger log.Logger, out io.Writer) Runner {
	return Runner{client: client, logger: logger, out: out}
}

// Submit launches a test and polls its status once.
func (r Runner) Submit(ctx context.Context, req wpt.TestRequest) int {
	submitted, err := r.client.RunTest(ctx, req)
	if err != nil {
		r.printError(err)
		if errors.Is(err, wpt.ErrMalformedResponse) {
			return ExitSubmitRejected
		}
		return ExitSubmitFailed
	}

	if submitted.StatusCode >= 300 {
		r.logger.Debugf("test rejected by server: %d %s", submitted.StatusCode, submitted.StatusText)
		r.printf("%d: %s\n", submitted.StatusCode, submitted.StatusText)
		return ExitSubmitRejected
	}

	r.logger.Debugf("test submitted: %s", submitted.Data.TestID)

	return r.Status(ctx, submitted.Data.TestID)
}

// Status fetches and classifies the status of testID.
func (r Runner) Status(ctx context.Context, testID string) int {
	status, err := r.client.TestStatus(ctx, testID)
	if err != nil {
		r.printError(err)
		return ExitStatusFailed
	}

	r.logger.Debugf("test %s: %d %s (%s)", status.Data.ID, status.Data.StatusCode, status.Data.StatusText, wpt.Classify(status.Data.StatusCode))
	r.printf("%s", wpt.StatusLine(status.Data))
	return ExitOK
}

// printError writes "<code>: <reason>" for HTTP errors and the error text
// otherwise.
func (r Runner) printError(err error) {
	var httpErr *wpt.HTTPError
	if errors.As(err, &httpErr) {
		r.printf("%d: %s\n", httpErr.StatusCode, httpErr.Reason)
		return
	}
	r.logger.Debugf("request error: %s", err)
	r.printf("%s\n", err)
}

func (r Runner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.logger.Warnf("failed to write output: %s", err)
	}
}
