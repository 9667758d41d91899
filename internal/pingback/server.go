// Package pingback serves the URL WebPageTest calls when a test completes.
package pingback

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/go-chi/chi/v5"
	"github.com/wptclient/wptclient/internal/wpt"
)

type Server struct {
	api    wpt.Client
	logger log.Logger
}

func NewServer(api wpt.Client, logger log.Logger) *Server {
	return &Server{api: api, logger: logger}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Get("/pingback", s.handlePingback)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

// handlePingback polls the status of the test named by the "id" parameter
// once and answers with the same line the status tool prints.
func (s *Server) handlePingback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	testID := r.URL.Query().Get("id")
	if testID == "" {
		s.logger.Warnf("pingback without test id from %s", r.RemoteAddr)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "Missing test id\n")
		return
	}

	status, err := s.api.TestStatus(r.Context(), testID)
	if err != nil {
		s.logger.Errorf("pingback %s: status poll failed: %s", testID, err)
		w.WriteHeader(http.StatusBadGateway)

		var httpErr *wpt.HTTPError
		if errors.As(err, &httpErr) {
			fmt.Fprintf(w, "%d: %s\n", httpErr.StatusCode, httpErr.Reason)
			return
		}
		fmt.Fprintf(w, "%s\n", err)
		return
	}

	line := wpt.StatusLine(status.Data)
	logged := strings.TrimSuffix(line, "\n")
	switch wpt.Classify(status.Data.StatusCode) {
	case wpt.BandFinished:
		s.logger.Donef("pingback %s: %s", testID, logged)
	case wpt.BandBusy:
		s.logger.Infof("pingback %s: %s", testID, logged)
	default:
		s.logger.Warnf("pingback %s: %s", testID, logged)
	}

	fmt.Fprint(w, line)
}
