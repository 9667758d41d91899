// Package wpttest provides a fake WebPageTest server for tests.
package wpttest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Reply is a canned response. A zero Status means 200.
type Reply struct {
	Status int
	Body   string
}

// Request is what the server saw for one call.
type Request struct {
	Path      string
	Query     url.Values
	User      string
	Password  string
	HasAuth   bool
	RequestID string
}

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	runTest    Reply
	testStatus Reply
	requests   []Request
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		runTest:    Reply{Status: http.StatusNotFound},
		testStatus: Reply{Status: http.StatusNotFound},
	}

	r := chi.NewRouter()
	r.Get("/runtest.php", s.handle(func() Reply { return s.runTest }))
	r.Get("/testStatus.php", s.handle(func() Reply { return s.testStatus }))

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SetRunTest sets the reply for /runtest.php.
func (s *Server) SetRunTest(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runTest = Reply{Status: status, Body: body}
}

// SetTestStatus sets the reply for /testStatus.php.
func (s *Server) SetTestStatus(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testStatus = Reply{Status: status, Body: body}
}

// Requests returns the calls received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handle(reply func() Reply) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			User:      user,
			Password:  password,
			HasAuth:   ok,
			RequestID: r.Header.Get("X-Request-Id"),
		})
		rep := reply()
		s.mu.Unlock()

		status := rep.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(rep.Body))
	}
}
