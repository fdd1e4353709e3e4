package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rethesda/soulsy/internal/config"
)

const (
	healthCheckTimeout = 5 * time.Second
	slowResponse       = time.Second
	headerAPIKey       = "X-API-Key"
)

// HealthCheckCommand probes a running harness
type HealthCheckCommand struct {
	out io.Writer
}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server"
}

func (c *HealthCheckCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(c.out)
	baseURL := fs.String("url", defaultBaseURL(), "Base URL of the server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(c.out, fmt.Sprintf("Health Check (%s)", *baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(*baseURL + path); err != nil {
			PrintError(c.out, "%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > slowResponse {
			PrintWarning(c.out, "%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess(c.out, "%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func defaultBaseURL() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = fmt.Sprint(config.DefaultPort)
	}
	return "http://localhost:" + port
}

func checkEndpoint(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if key := os.Getenv("API_KEY"); key != "" {
		req.Header.Set(headerAPIKey, key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return nil
}
