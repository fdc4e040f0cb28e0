// Command chat is the Courtside conversational mediator. It classifies a
// user question with the oracle, retrieves data from the stats API, and
// composes a grounded answer.
//
// Usage:
//
//	courtside-chat
//	CHAT_PORT=9090 BACKEND_BASE_URL=http://localhost:8000 courtside-chat
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/courtsideai/courtside/internal/backend"
	"github.com/courtsideai/courtside/internal/chat"
	"github.com/courtsideai/courtside/internal/compose"
	"github.com/courtsideai/courtside/internal/config"
	"github.com/courtsideai/courtside/internal/intent"
	"github.com/courtsideai/courtside/internal/oracle"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Oracle
	o, err := oracle.FromConfig(cfg)
	if err != nil {
		logger.Error("Failed to create oracle", "error", err)
		os.Exit(1)
	}
	logger.Info("Oracle ready", "provider", cfg.OracleProvider)

	// Pipeline: classify -> dispatch -> compose
	h := chat.New(
		intent.NewClassifier(o, logger),
		backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, logger),
		compose.New(o, logger),
		logger,
	)
	router := chat.NewRouter(h, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.ChatHost, cfg.ChatPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Courtside chat mediator",
			"addr", addr,
			"backend", cfg.BackendBaseURL,
			"environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
