package wpt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const mockIDPrefix = "mock_"

// MockClient is an in-memory stand-in for a WebPageTest server. A test
// submitted through this client reports busy on its first status query and
// finished afterwards. Any other mock_<n> id, such as one handed out by a
// previous process, is reported as finished.
type MockClient struct {
	mu     sync.Mutex
	nextID int
	polls  map[string]int
}

func NewMockClient() *MockClient {
	return &MockClient{polls: make(map[string]int)}
}

func (c *MockClient) RunTest(_ context.Context, req TestRequest) (*SubmitResult, error) {
	var result SubmitResult
	if req.URL == "" {
		result.StatusCode = 400
		result.StatusText = "Invalid URL, please try submitting your test request again."
		return &result, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := fmt.Sprintf("%s%d", mockIDPrefix, c.nextID)
	c.polls[id] = 0

	result.StatusCode = 200
	result.StatusText = "Ok"
	result.Data.TestID = id
	return &result, nil
}

func (c *MockClient) TestStatus(_ context.Context, testID string) (*StatusResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	polls, ok := c.polls[testID]
	if !ok {
		if isMockID(testID) {
			return &StatusResult{Data: TestStatus{StatusCode: 200, StatusText: "Test Complete", ID: testID}}, nil
		}
		return &StatusResult{Data: TestStatus{StatusCode: 400, StatusText: "Test not found", ID: testID}}, nil
	}
	c.polls[testID] = polls + 1

	if polls == 0 {
		return &StatusResult{Data: TestStatus{StatusCode: 100, StatusText: "Test Started", ID: testID}}, nil
	}
	return &StatusResult{Data: TestStatus{StatusCode: 200, StatusText: "Test Complete", ID: testID}}, nil
}

func isMockID(testID string) bool {
	n, ok := strings.CutPrefix(testID, mockIDPrefix)
	if !ok {
		return false
	}
	_, err := strconv.ParseUint(n, 10, 64)
	return err == nil
}
