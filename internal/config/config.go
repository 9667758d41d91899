// Package config reads the tools' settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/wptclient/wptclient/internal/wpt"
)

// Defaults for the submitted test, applied to unset variables.
const (
	DefaultLabel        = "API cli client test"
	DefaultRuns         = "3"
	DefaultFVOnly       = "0"
	DefaultAuthType     = "0"
	DefaultVideo        = "1"
	DefaultLighthouse   = "1"
	DefaultPrivate      = "0"
	DefaultTimeout      = "2s"
	DefaultPingbackAddr = ":8080"
)

// ServerInputs locate and authenticate against the WebPageTest server.
// WPT_SERVER_URL is only needed when WPT_USE_MOCK is off.
type ServerInputs struct {
	ServerURL   string          `env:"WPT_SERVER_URL"`
	APIUser     string          `env:"WPT_API_USER"`
	APIPassword stepconf.Secret `env:"WPT_API_PASSWORD"`
	Timeout     string          `env:"WPT_TIMEOUT"`
	UseMock     bool            `env:"WPT_USE_MOCK"`
	Verbose     bool            `env:"WPT_VERBOSE"`
}

// TestInputs are the runtest.php parameters.
type TestInputs struct {
	URL        string          `env:"WPT_TEST_URL,required"`
	Label      string          `env:"WPT_TEST_LABEL"`
	Runs       string          `env:"WPT_TEST_RUNS"`
	FVOnly     string          `env:"WPT_TEST_FVONLY"`
	Login      string          `env:"WPT_TEST_LOGIN"`
	Password   stepconf.Secret `env:"WPT_TEST_PASSWORD"`
	AuthType   string          `env:"WPT_TEST_AUTH_TYPE"`
	Video      string          `env:"WPT_TEST_VIDEO"`
	Lighthouse string          `env:"WPT_TEST_LIGHTHOUSE"`
	Private    string          `env:"WPT_TEST_PRIVATE"`
	Pingback   string          `env:"WPT_TEST_PINGBACK"`
}

// PingbackInputs configure the pingback receiver.
type PingbackInputs struct {
	Addr string `env:"WPT_PINGBACK_ADDR"`
}

// Server is the parsed connection config.
type Server struct {
	Client  wpt.Config
	UseMock bool
	Verbose bool
}

// Parser reads inputs from an env repository.
type Parser struct {
	inputParser stepconf.InputParser
}

func NewParser(envRepository env.Repository) Parser {
	return Parser{inputParser: stepconf.NewInputParser(envRepository)}
}

// Server parses the connection settings.
func (p Parser) Server() (Server, error) {
	var input ServerInputs
	if err := p.inputParser.Parse(&input); err != nil {
		return Server{}, fmt.Errorf("server config: %w", err)
	}
	if input.ServerURL == "" && !input.UseMock {
		return Server{}, errors.New("server config: WPT_SERVER_URL: required variable is not present")
	}

	raw := input.Timeout
	if raw == "" {
		raw = DefaultTimeout
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return Server{}, fmt.Errorf("server config: WPT_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Server{}, fmt.Errorf("server config: WPT_TIMEOUT must be positive, got %s", raw)
	}

	return Server{
		Client: wpt.Config{
			BaseURL:  input.ServerURL,
			User:     input.APIUser,
			Password: string(input.APIPassword),
			Timeout:  timeout,
		},
		UseMock: input.UseMock,
		Verbose: input.Verbose,
	}, nil
}

// TestRequest parses the test parameters and fills in the defaults.
func (p Parser) TestRequest() (wpt.TestRequest, error) {
	var input TestInputs
	if err := p.inputParser.Parse(&input); err != nil {
		return wpt.TestRequest{}, fmt.Errorf("test config: %w", err)
	}

	return wpt.TestRequest{
		URL:        input.URL,
		Label:      orDefault(input.Label, DefaultLabel),
		Runs:       orDefault(input.Runs, DefaultRuns),
		FVOnly:     orDefault(input.FVOnly, DefaultFVOnly),
		Login:      input.Login,
		Password:   string(input.Password),
		AuthType:   orDefault(input.AuthType, DefaultAuthType),
		Video:      orDefault(input.Video, DefaultVideo),
		Lighthouse: orDefault(input.Lighthouse, DefaultLighthouse),
		Private:    orDefault(input.Private, DefaultPrivate),
		Pingback:   input.Pingback,
	}, nil
}

// PingbackAddr returns the listen address for the pingback receiver.
func (p Parser) PingbackAddr() (string, error) {
	var input PingbackInputs
	if err := p.inputParser.Parse(&input); err != nil {
		return "", fmt.Errorf("pingback config: %w", err)
	}
	return orDefault(input.Addr, DefaultPingbackAddr), nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
