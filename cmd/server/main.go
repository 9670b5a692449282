package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gitea.jw6.us/james/taskdesk/internal/auth"
	"gitea.jw6.us/james/taskdesk/internal/config"
	httpserver "gitea.jw6.us/james/taskdesk/internal/http"
	"gitea.jw6.us/james/taskdesk/internal/logger"
	"gitea.jw6.us/james/taskdesk/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration", err)
	}

	if err := logger.Init(cfg.LogDevelopment); err != nil {
		logger.Fatal("initializing logger", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.DB.Path)
	if err != nil {
		logger.Fatal("opening database", err, zap.String("path", cfg.DB.Path))
	}

	s := store.New(db)
	defer s.Close()

	if err := s.Provision(ctx); err != nil {
		logger.Fatal("provisioning schema", err)
	}

	gate := auth.NewGate(cfg, s)
	// Each process run starts unauthenticated. Failure here is logged but
	// not fatal so a transient read error cannot keep the server down.
	if err := gate.ResetOnStartup(ctx); err != nil {
		logger.Error("resetting authorization state", err)
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      httpserver.NewRouter(cfg, s, gate),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", err)
	}
}
