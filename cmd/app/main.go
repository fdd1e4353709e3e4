package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rethesda/soulsy/internal/bootstrap"
	"github.com/rethesda/soulsy/internal/config"
	"github.com/rethesda/soulsy/internal/handler"
	"github.com/rethesda/soulsy/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile := initLogger(cfg, warnings)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()
	engine, err := bootstrap.BuildEngine(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build engine", "error", err)
		os.Exit(1)
	}

	jobs := bootstrap.StartJobs(ctx, engine.EventLog, cfg.EventRetention, bootstrap.EventCleanupInterval)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Dependencies{
		Catalog:    engine.Catalog,
		Classifier: engine.Classifier,
		Actors:     engine.Actors,
		Controller: engine.Controller,
		Cache:      engine.Cache,
		Events:     engine.EventLog,
		Stream:     engine.Stream,
		Ready:      []handler.HealthChecker{engine.Catalog},
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Stream: engine.Stream,
		Jobs:   jobs,
	})
}
