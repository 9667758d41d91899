// Command wptteststatus prints the status of a WebPageTest run.
//
//	wptteststatus <testId>
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/wptclient/wptclient/internal/cli"
	"github.com/wptclient/wptclient/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	testID, err := cli.ParseStatusArgs(args)
	if err != nil {
		fmt.Fprintf(stdout, "%s\n", err)
		return cli.ExitUsage
	}

	logger := cli.NewLogger(stderr)
	serverCfg, err := config.NewParser(env.NewRepository()).Server()
	if err != nil {
		logger.Errorf("%s", err)
		return cli.ExitUsage
	}
	logger.EnableDebugLog(serverCfg.Verbose)

	client, err := cli.NewClient(serverCfg, logger)
	if err != nil {
		logger.Errorf("Failed to create WebPageTest client: %s", err)
		return cli.ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.NewRunner(client, logger, stdout).Status(ctx, testID)
}
