// Command wptclient submits a WebPageTest run and polls its status once.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/wptclient/wptclient/internal/cli"
	"github.com/wptclient/wptclient/internal/config"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	logger := cli.NewLogger(stderr)
	parser := config.NewParser(env.NewRepository())

	serverCfg, err := parser.Server()
	if err != nil {
		logger.Errorf("%s", err)
		return cli.ExitUsage
	}
	logger.EnableDebugLog(serverCfg.Verbose)

	req, err := parser.TestRequest()
	if err != nil {
		logger.Errorf("%s", err)
		return cli.ExitUsage
	}

	client, err := cli.NewClient(serverCfg, logger)
	if err != nil {
		logger.Errorf("Failed to create WebPageTest client: %s", err)
		return cli.ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.NewRunner(client, logger, stdout).Submit(ctx, req)
}
