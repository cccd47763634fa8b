package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/internal/explorer"
	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/internal/ui"
	"github.com/thep200/github-explorer/pkg/cache"
	applog "github.com/thep200/github-explorer/pkg/log"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 0, "Port for the explorer server to listen on (0 uses the configured port)")
	flag.Parse()

	// Setup dependencies
	ctx := context.Background()
	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port == 0 {
		*port = config.Ui.Port
	}
	logger, _ := applog.NewCslLogger()
	fetcher, _ := githubapi.NewFetcher(logger, cache.NewCache())
	api, _ := githubapi.NewCaller(logger, config, fetcher)
	service, _ := explorer.NewService(logger, config, api)

	// Create and run the server
	server, err := ui.NewServer(logger, config, service, *port)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run server in a goroutine
	go func() {
		logger.Info(ctx, "Starting explorer server on port %d", *port)
		if err := server.Start(); err != nil {
			logger.Error(ctx, "Server failed to start: %v", err)
			os.Exit(1)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for termination signal
	<-stop

	// Create a context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Gracefully shutdown the server
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error(ctx, "Error during server shutdown: %v", err)
	}

	logger.Info(ctx, "Server shut down gracefully")
}
