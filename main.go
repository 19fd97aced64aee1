package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mrops-br/storefront/internal/app/service"
	"github.com/mrops-br/storefront/internal/demo"
	"github.com/mrops-br/storefront/internal/infrastructure/config"
	"github.com/mrops-br/storefront/internal/infrastructure/http"
	"github.com/mrops-br/storefront/internal/infrastructure/http/handler"
	"github.com/mrops-br/storefront/internal/infrastructure/repository/memory"
	"github.com/mrops-br/storefront/internal/infrastructure/telemetry"
	"github.com/mrops-br/storefront/internal/suites"
)

const usage = `Usage: storefront [command]

Commands:
  serve                 start the catalog HTTP API (default)
  demo                  print the shopping cart walkthrough
  suites <name>...      run console suites (%s)
`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		serve(cfg)
	case "demo":
		// console commands keep stdout for narration, logs go to stderr
		telem := telemetry.NewNoOpTelemetry(os.Stderr, cfg)
		demo.Run(os.Stdout, telem.Logger)
	case "suites":
		if len(args) == 0 {
			fmt.Printf(usage, suitesList())
			return
		}
		telem := telemetry.NewNoOpTelemetry(os.Stderr, cfg)
		suites.Run(os.Stdout, args, telem.Logger)
	default:
		fmt.Printf(usage, suitesList())
	}
}

func suitesList() string {
	return strings.Join(suites.Names(), ", ")
}

func serve(cfg *config.Config) {
	telem, err := telemetry.NewTelemetry(os.Stdout, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("storefront")
	meter := telem.MeterProvider.Meter("storefront")
	logger := telem.Logger

	logger.Info("Starting Storefront API")

	repo := memory.NewItemRepository(tracer, logger)
	catalogService := service.NewCatalogService(repo, tracer, meter, logger)
	itemHandler := handler.NewItemHandler(catalogService, logger)
	server := http.NewServer(&cfg.Server, itemHandler, logger, telem)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err.Error())
	}

	logger.Info("Server stopped")
}
