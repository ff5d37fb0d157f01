/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the overtime engine server. Handles
  configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration from the environment
  2. Parse the optional rule-set override
  3. Create the API handler and router
  4. Start the server with graceful shutdown

ENVIRONMENT:
  SERVER_PORT             HTTP server port (default: 8080)
  SERVER_*_TIMEOUT        Read/write/idle/shutdown timeouts in seconds
  WEB_STATIC_DIR          Built form frontend directory (default: ./web/dist)
  WEB_ALLOWED_ORIGINS     CORS origins for the dev frontend
  RULE_SET                Optional JSON rule-set override (see factory/)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (configurable timeout)
  3. Exit

SEE ALSO:
  - api/server.go: router configuration
  - config/config.go: environment schema
*/
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/railtime/overtime-engine/api"
	"github.com/railtime/overtime-engine/config"
	"github.com/railtime/overtime-engine/factory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	rules, schedule, err := factory.ParseRuleSet(cfg.RuleSet)
	if err != nil {
		slog.Error("failed to parse rule set", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(rules, schedule)
	router := api.NewRouter(handler, cfg.Web.StaticDir, cfg.Web.AllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
