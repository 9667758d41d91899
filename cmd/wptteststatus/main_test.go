package main

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wptclient/wptclient/internal/cli"
	"github.com/wptclient/wptclient/internal/wpt/wpttest"
)

func runCaptured(args []string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	exit := run(args, &stdout, &stderr)
	return exit, stdout.String(), stderr.String()
}

func TestRun_MissingTestID(t *testing.T) {
	srv := wpttest.NewServer(t)
	t.Setenv("WPT_SERVER_URL", srv.URL)

	exit, stdout, _ := runCaptured(nil)

	assert.Equal(t, cli.ExitUsage, exit)
	assert.Equal(t, "Missing test id\n", stdout)
	assert.Empty(t, srv.Requests())
}

func TestRun_MissingServerURL(t *testing.T) {
	t.Setenv("WPT_SERVER_URL", "")
	t.Setenv("WPT_USE_MOCK", "")

	exit, stdout, stderr := runCaptured([]string{"T1"})

	assert.Equal(t, cli.ExitUsage, exit)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "WPT_SERVER_URL")
}

func TestRun_Finished(t *testing.T) {
	srv := wpttest.NewServer(t)
	srv.SetTestStatus(http.StatusOK, `{"data":{"statusCode":200,"statusText":"Test Complete","id":"T1"}}`)
	t.Setenv("WPT_SERVER_URL", srv.URL)
	t.Setenv("WPT_API_USER", "gatekeeper")
	t.Setenv("WPT_API_PASSWORD", "s3cret")

	exit, stdout, _ := runCaptured([]string{"T1"})

	assert.Equal(t, cli.ExitOK, exit)
	assert.Equal(t, "T1: Finished.\n", stdout)

	reqs := srv.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, "T1", reqs[0].Query.Get("test"))
		assert.Equal(t, "gatekeeper", reqs[0].User)
	}
}

func TestRun_DashPrefixedTestID(t *testing.T) {
	srv := wpttest.NewServer(t)
	srv.SetTestStatus(http.StatusOK, `{"data":{"statusCode":101,"statusText":"Test Started","id":"-h"}}`)
	t.Setenv("WPT_SERVER_URL", srv.URL)

	exit, stdout, _ := runCaptured([]string{"-h"})

	assert.Equal(t, cli.ExitOK, exit)
	assert.Equal(t, "-h: Busy.\n", stdout)
	if reqs := srv.Requests(); assert.Len(t, reqs, 1) {
		assert.Equal(t, "-h", reqs[0].Query.Get("test"))
	}
}

func TestRun_TransportFailure(t *testing.T) {
	srv := wpttest.NewServer(t)
	srv.SetTestStatus(http.StatusForbidden, "")
	t.Setenv("WPT_SERVER_URL", srv.URL)

	exit, stdout, _ := runCaptured([]string{"T1"})

	assert.Equal(t, cli.ExitStatusFailed, exit)
	assert.Equal(t, "403: Forbidden\n", stdout)
}

func TestRun_MockClient(t *testing.T) {
	t.Setenv("WPT_SERVER_URL", "")
	t.Setenv("WPT_USE_MOCK", "true")

	exit, stdout, stderr := runCaptured([]string{"mock_1"})

	assert.Equal(t, cli.ExitOK, exit)
	assert.Equal(t, "mock_1: Finished.\n", stdout)
	assert.Contains(t, stderr, "Using MOCK WebPageTest client")
}
