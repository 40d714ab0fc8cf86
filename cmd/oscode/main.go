// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Command oscode runs the OSCode platform backend: the public content API,
// the admin surface, and static delivery for the built frontend.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oscode/platform-go/internal/auth"
	"github.com/oscode/platform-go/internal/config"
	"github.com/oscode/platform-go/internal/handler"
	"github.com/oscode/platform-go/internal/logging"
	"github.com/oscode/platform-go/internal/scheduler"
	"github.com/oscode/platform-go/internal/session"
	"github.com/oscode/platform-go/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; environment variables win in deployment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	docs, cleanup, err := store.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	logger := slog.New(logging.NewEventLogHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}),
		docs,
	))
	slog.SetDefault(logger)

	sessions, err := session.New(cfg)
	if err != nil {
		return err
	}
	gate := auth.NewGate(cfg.AdminCredentials(), sessions)

	sched := scheduler.New(sessions, logger)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	h := handler.New(docs, gate, cfg.UploadsDir, cfg.FrontendDir)
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", cfg.ServerAddr(),
			"env", cfg.Env,
			"store", storeKind(cfg),
			"sessions", sessionKind(cfg))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func storeKind(cfg *config.Config) string {
	if cfg.UseMongoStore() {
		return "mongodb"
	}
	return "memory"
}

func sessionKind(cfg *config.Config) string {
	if cfg.UseRedisSessions() {
		return "redis"
	}
	return "memory"
}
