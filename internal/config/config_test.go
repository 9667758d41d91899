package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wptclient/wptclient/internal/wpt"
)

type mapEnv map[string]string

func (m mapEnv) List() []string {
	var out []string
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

func (m mapEnv) Unset(key string) error {
	delete(m, key)
	return nil
}

func (m mapEnv) Get(key string) string {
	return m[key]
}

func (m mapEnv) Set(key, value string) error {
	m[key] = value
	return nil
}

func Test_GivenServerEnv_WhenParsing_ThenBuildsClientConfig(t *testing.T) {
	// Given
	parser := NewParser(mapEnv{
		"WPT_SERVER_URL":   "https://wpt.example.com",
		"WPT_API_USER":     "gatekeeper",
		"WPT_API_PASSWORD": "A Taco extrudes the Pullover",
		"WPT_TIMEOUT":      "5s",
		"WPT_VERBOSE":      "true",
	})

	// When
	cfg, err := parser.Server()

	// Then
	require.NoError(t, err)
	assert.Equal(t, wpt.Config{
		BaseURL:  "https://wpt.example.com",
		User:     "gatekeeper",
		Password: "A Taco extrudes the Pullover",
		Timeout:  5 * time.Second,
	}, cfg.Client)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.UseMock)
}

func Test_GivenNoTimeout_WhenParsing_ThenUsesTwoSeconds(t *testing.T) {
	parser := NewParser(mapEnv{"WPT_SERVER_URL": "https://wpt.example.com"})

	cfg, err := parser.Server()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
}

func Test_GivenMissingServerURL_WhenParsing_ThenFails(t *testing.T) {
	parser := NewParser(mapEnv{})

	_, err := parser.Server()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "WPT_SERVER_URL")
}

func Test_GivenMockModeWithoutServerURL_WhenParsing_ThenSucceeds(t *testing.T) {
	// Given
	parser := NewParser(mapEnv{"WPT_USE_MOCK": "true"})

	// When
	cfg, err := parser.Server()

	// Then
	require.NoError(t, err)
	assert.True(t, cfg.UseMock)
	assert.Empty(t, cfg.Client.BaseURL)
}

func Test_GivenBadTimeout_WhenParsing_ThenFails(t *testing.T) {
	for _, timeout := range []string{"soon", "-1s", "0s"} {
		parser := NewParser(mapEnv{
			"WPT_SERVER_URL": "https://wpt.example.com",
			"WPT_TIMEOUT":    timeout,
		})

		_, err := parser.Server()

		assert.Error(t, err, "timeout %q", timeout)
	}
}

func Test_GivenOnlyTestURL_WhenParsingTestRequest_ThenAppliesDefaults(t *testing.T) {
	parser := NewParser(mapEnv{"WPT_TEST_URL": "https://example.com"})

	req, err := parser.TestRequest()

	require.NoError(t, err)
	assert.Equal(t, wpt.TestRequest{
		URL:        "https://example.com",
		Label:      DefaultLabel,
		Runs:       "3",
		FVOnly:     "0",
		AuthType:   "0",
		Video:      "1",
		Lighthouse: "1",
		Private:    "0",
	}, req)
}

func Test_GivenFullTestEnv_WhenParsingTestRequest_ThenKeepsValues(t *testing.T) {
	parser := NewParser(mapEnv{
		"WPT_TEST_URL":        "https://example.com",
		"WPT_TEST_LABEL":      "nightly",
		"WPT_TEST_RUNS":       "1",
		"WPT_TEST_FVONLY":     "1",
		"WPT_TEST_LOGIN":      "tester",
		"WPT_TEST_PASSWORD":   "hunter2",
		"WPT_TEST_AUTH_TYPE":  "1",
		"WPT_TEST_VIDEO":      "0",
		"WPT_TEST_LIGHTHOUSE": "0",
		"WPT_TEST_PRIVATE":    "1",
		"WPT_TEST_PINGBACK":   "https://hooks.example.com/pingback",
	})

	req, err := parser.TestRequest()

	require.NoError(t, err)
	assert.Equal(t, wpt.TestRequest{
		URL:        "https://example.com",
		Label:      "nightly",
		Runs:       "1",
		FVOnly:     "1",
		Login:      "tester",
		Password:   "hunter2",
		AuthType:   "1",
		Video:      "0",
		Lighthouse: "0",
		Private:    "1",
		Pingback:   "https://hooks.example.com/pingback",
	}, req)
}

func Test_GivenMissingTestURL_WhenParsingTestRequest_ThenFails(t *testing.T) {
	parser := NewParser(mapEnv{"WPT_TEST_LABEL": "nightly"})

	_, err := parser.TestRequest()

	require.Error(t, err)
}

func TestPingbackAddr(t *testing.T) {
	addr, err := NewParser(mapEnv{}).PingbackAddr()
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = NewParser(mapEnv{"WPT_PINGBACK_ADDR": "127.0.0.1:9000"}).PingbackAddr()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", addr)
}
