package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
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

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingVillageForge = "Starting VillageForge"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized       = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir    = "failed to create dead-letter directory"
	LogMsgFailedCreateDeadLetterWriter = "failed to create dead-letter writer"
	LogMsgMetricsCollectorRegistered   = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics        = "failed to register metrics collector"
)

// =============================================================================
// Village Seeding Messages
// =============================================================================

const (
	LogMsgSeedingVillages      = "Seeding villages from JSON config..."
	LogMsgVillageSeeded        = "Village seeded"
	LogMsgVillageAlreadyExists = "Village already exists, seed skipped"
	LogMsgVillagesSeeded       = "Village seeding complete"

	ErrMsgFailedLoadVillageSeeds = "failed to load village seeds"
	ErrMsgFailedSeedVillage      = "failed to seed village"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer       = "Shutting down server..."
	LogMsgShuttingDownWorkers      = "Shutting down workers..."
	LogMsgShuttingDownDeadLetter   = "Closing dead-letter writer..."
	LogMsgServerStopped            = "Server stopped"
	LogMsgServerForcedShutdown     = "Server forced to shutdown"
	LogMsgTradeResetShutdownFailed = "Trade reset worker shutdown failed"
	LogMsgDeadLetterCloseFailed    = "Dead-letter writer close failed"
)
