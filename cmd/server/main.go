/*
main.go - HTTP server entry point

PURPOSE:
  Starts the payroll/playlist demo service. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment configuration (.env honored)
  2. Parse command-line flags (flags override environment)
  3. Load the registry from the CSV file (fail-safe-empty)
  4. Configure router and start the server

COMMAND-LINE FLAGS:
  -port    HTTP server port (default from PORT, else 8080)
  -file    Registry CSV path (default from STORAGE_FILE, else employees.csv)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM, stop accepting connections and wait up to 30s for
  active requests to finish.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/internal/config"
	"github.com/warp/payroll-engine/internal/logger"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/csvfile"
)

func main() {
	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "HTTP server port")
	file := flag.String("file", cfg.StorageFile, "registry CSV path")
	flag.Parse()

	logger.Init(cfg.LogFilePath)
	ctx := context.Background()

	store := csvfile.New(*file)
	registry, err := store.LoadRegistry()
	if err != nil {
		// Fail-safe-empty: a broken file never stops the process.
		logger.WarnLog(ctx, "could not load %s, starting with empty registry: %v", *file, err)
		registry = payroll.NewRegistry()
	}
	logger.InfoLog(ctx, "registry loaded: %d records from %s", registry.Len(), *file)

	handler := api.NewHandler(registry, store, cfg.RecentLimit)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.InfoLog(ctx, "server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLog(ctx, "server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.InfoLog(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLog(ctx, "server forced to shutdown: %v", err)
		os.Exit(1)
	}

	logger.InfoLog(ctx, "server stopped")
}
