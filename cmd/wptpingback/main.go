// Command wptpingback receives WebPageTest completion pingbacks and reports
// the status of the finished test.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/wptclient/wptclient/internal/cli"
	"github.com/wptclient/wptclient/internal/config"
	"github.com/wptclient/wptclient/internal/pingback"
)

func main() {
	logger := cli.NewLogger(os.Stderr)
	parser := config.NewParser(env.NewRepository())

	serverCfg, err := parser.Server()
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(cli.ExitUsage)
	}
	logger.EnableDebugLog(serverCfg.Verbose)

	addr, err := parser.PingbackAddr()
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(cli.ExitUsage)
	}

	api, err := cli.NewClient(serverCfg, logger)
	if err != nil {
		logger.Errorf("Failed to create WebPageTest client: %s", err)
		os.Exit(cli.ExitUsage)
	}

	srv := pingback.NewServer(api, logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Infof("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warnf("Graceful shutdown failed: %s", err)
		}
	}()

	logger.Infof("Listening for pingbacks on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("server failed: %s", err)
		os.Exit(1)
	}
	logger.Donef("Server stopped.")
}
