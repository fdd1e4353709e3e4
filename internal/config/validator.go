package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"ITEMS_PATH",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that work but are probably unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("KEYWORDS_PATH") == "" {
		warnings = append(warnings, "KEYWORDS_PATH is not set - only the built-in keyword list will be used")
	}

	if os.Getenv("API_KEY") == "" && os.Getenv("ENVIRONMENT") != "" && os.Getenv("ENVIRONMENT") != DefaultEnvironment {
		warnings = append(warnings, "API_KEY is not set outside dev - the API is reachable without authentication")
	}

	if ttl, err := time.ParseDuration(os.Getenv("CACHE_TTL")); err == nil && ttl < time.Second {
		warnings = append(warnings, "CACHE_TTL is under one second - cached classifications will expire almost immediately")
	}

	return warnings, nil
}
