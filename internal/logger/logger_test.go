package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	expect := map[string]interface{}{
		"service":     "test-service",
		"version":     "1.0.0",
		"environment": "test",
		"msg":         "test message",
		"level":       "INFO",
		"key":         "value",
		"number":      float64(42),
	}
	for k, want := range expect {
		if logEntry[k] != want {
			t.Errorf("Expected %s=%v, got %v", k, want, logEntry[k])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Errorf("Expected warn line, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request_id, got %s", got)
	}
	if FromContext(ctx) == nil {
		t.Error("Expected non-nil logger")
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("Expected unique request ids")
	}
}

func TestConfigLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("level %q: expected %v, got %v", level, want, got)
		}
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}
	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}
	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Format != "text" {
		t.Errorf("Expected text format in dev, got %s", config.Format)
	}
	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
	if DefaultConfig().ServiceName != "soulsy" {
		t.Errorf("Expected soulsy service name, got %s", DefaultConfig().ServiceName)
	}
}
