package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rethesda/soulsy/internal/cache"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Environment  string
	Version      string
	LogLevel     string
	LogFormat    string
	Port         int
	ItemsPath    string
	KeywordsPath string
	CacheSize    int
	CacheTTL     time.Duration

	// LogDir, when set, also writes each session's log to a file there
	LogDir string

	// Power event journal
	EventLogSize   int
	EventRetention time.Duration

	// Security. An empty APIKey leaves the API open, which is only
	// meant for local development.
	APIKey         string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	defaults := cache.DefaultConfig()
	cfg := &Config{
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:      getEnv("VERSION", DefaultVersion),
		LogLevel:     getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", DefaultLogFormat),
		ItemsPath:    getEnv("ITEMS_PATH", ConfigPathItems),
		KeywordsPath: getEnv("KEYWORDS_PATH", ConfigPathKeywords),
		CacheSize:    getEnvAsInt("CACHE_SIZE", defaults.Size),
		CacheTTL:     getEnvAsDuration("CACHE_TTL", defaults.TTL),
		APIKey:       os.Getenv("API_KEY"),
		LogDir:       os.Getenv("LOG_DIR"),

		EventLogSize:   getEnvAsInt("EVENT_LOG_SIZE", eventlog.DefaultCapacity),
		EventRetention: getEnvAsDuration("EVENT_RETENTION", eventlog.DefaultRetention),
	}

	if proxies := os.Getenv("TRUSTED_PROXIES"); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if cfg.ItemsPath == "" {
		return nil, fmt.Errorf("ITEMS_PATH must not be empty")
	}

	return cfg, nil
}

// LoggerConfig derives the logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, logger.DefaultServiceName, c.Version, c.Environment, c.Environment == DefaultEnvironment)
}

// CacheConfig derives the classification cache sizing
func (c *Config) CacheConfig() cache.Config {
	return cache.Config{Size: c.CacheSize, TTL: c.CacheTTL}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on a missing or malformed value
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable such as "5m", falling back on a missing or malformed value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
