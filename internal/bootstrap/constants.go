package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSoulsy      = "Starting soulsy"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog Loading Messages
// =============================================================================

const (
	LogMsgLoadingItems    = "Loading item catalog..."
	LogMsgItemsLoaded     = "Item catalog loaded"
	LogMsgLoadingKeywords = "Loading keyword overrides..."
	LogMsgKeywordsDefault = "No keyword overrides configured, using built-in keywords"
	LogMsgKeywordsLoaded  = "Keyword overrides loaded"
	LogMsgInventorySeeded = "Player inventory seeded from catalog"

	ErrMsgFailedLoadItems    = "failed to load items config"
	ErrMsgInvalidItems       = "invalid items config"
	ErrMsgFailedBuildStore   = "failed to build item store"
	ErrMsgFailedLoadKeywords = "failed to load keyword overrides"
	ErrMsgFailedSeedCount    = "failed to seed inventory count"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingJobs         = "Stopping background jobs..."
	LogMsgJobsStarted          = "Background jobs started"
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
