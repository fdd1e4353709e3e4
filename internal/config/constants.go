package config

const (
	// Configuration file paths
	ConfigPathItems    = "configs/items.json"
	ConfigPathKeywords = "configs/keywords.yaml"
)

// Defaults
const (
	DefaultPort        = 8080
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultVersion     = "dev"
)
