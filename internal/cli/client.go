package cli

import (
	"io"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/wptclient/wptclient/internal/config"
	"github.com/wptclient/wptclient/internal/wpt"
)

// NewLogger returns the tools' logger. It writes to w, which is stderr in the
// commands, so stdout carries only the result line.
func NewLogger(w io.Writer) log.Logger {
	return log.NewLogger(log.WithOutput(w))
}

// NewClient returns the mock client when cfg.UseMock is set and a client
// for the configured server otherwise.
func NewClient(cfg config.Server, logger log.Logger) (wpt.Client, error) {
	if cfg.UseMock {
		logger.Warnf("Using MOCK WebPageTest client (WPT_USE_MOCK=true)")
		return wpt.NewMockClient(), nil
	}

	logger.Debugf("Using WebPageTest server %s (timeout %s)", cfg.Client.BaseURL, cfg.Client.Timeout)
	client, err := wpt.NewRealClient(cfg.Client, logger, nil)
	if err != nil {
		return nil, err
	}
	return client, nil
}
