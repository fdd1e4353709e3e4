package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/rethesda/soulsy/internal/bootstrap"
	"github.com/rethesda/soulsy/internal/config"
)

// initLogger installs the application logger and reports any environment
// warnings through it. The returned file, if any, must be closed on exit.
func initLogger(cfg *config.Config, warnings []string) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	for _, w := range warnings {
		slog.Warn("Environment warning", "detail", w)
	}
	return logFile
}
