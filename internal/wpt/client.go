package wpt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request made by RealClient.
const DefaultTimeout = 2 * time.Second

// RequestIDHeader carries a per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// ErrMalformedResponse is wrapped when a 2xx reply cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response")

// Client submits tests to and queries test status from a WebPageTest server.
type Client interface {
	RunTest(ctx context.Context, req TestRequest) (*SubmitResult, error)
	TestStatus(ctx context.Context, testID string) (*StatusResult, error)
}

// Config describes how to reach the service.
type Config struct {
	BaseURL  string
	User     string
	Password string
	Timeout  time.Duration
}

type RealClient struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
	logger     log.Logger
}

// NewRealClient creates a client for the server at cfg.BaseURL. When
// httpClient is nil one is built with cfg.Timeout, or DefaultTimeout.
func NewRealClient(cfg Config, logger log.Logger, httpClient *http.Client) (*RealClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &RealClient{
		baseURL:    baseURL,
		user:       cfg.User,
		password:   cfg.Password,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// RunTest submits a test run. A transport status of 300 or above is returned
// as *HTTPError; the embedded statusCode is left for the caller to judge.
func (c *RealClient) RunTest(ctx context.Context, req TestRequest) (*SubmitResult, error) {
	var result SubmitResult
	if err := c.get(ctx, runTestPath, req.Query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TestStatus fetches the current status of testID.
func (c *RealClient) TestStatus(ctx context.Context, testID string) (*StatusResult, error) {
	var result StatusResult
	if err := c.get(ctx, testStatusPath, statusQuery(testID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RealClient) get(ctx context.Context, path string, params url.Values, v any) error {
	apiURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	// The query may hold target-site credentials, so only the path is logged.
	c.logger.Debugf("GET %s (request %s)", path, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debugf("GET %s -> %d in %s (request %s)", path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode >= 300 {
		return newHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if isReadAborted(ctx, err) {
			return fmt.Errorf("GET %s failed: %w", path, err)
		}
		return fmt.Errorf("%w from %s: %v", ErrMalformedResponse, path, err)
	}

	return nil
}

// isReadAborted reports whether reading the body stopped because of a timeout
// or cancellation rather than because of its content.
func isReadAborted(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
