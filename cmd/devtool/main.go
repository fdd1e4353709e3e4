package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rethesda/soulsy/internal/logger"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Keep stdout for command output
	logger.InitLoggerWithWriter(logger.NewConfig("warn", "text", logger.DefaultServiceName, "dev", "dev", false), os.Stderr)

	registry := newRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError(os.Stderr, "%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ClassifyCommand{out: os.Stdout})
	r.Register(&ValidateCommand{out: os.Stdout})
	r.Register(&HealthCheckCommand{out: os.Stdout})
	r.Register(&DoctorCommand{out: os.Stdout})
	return r
}
