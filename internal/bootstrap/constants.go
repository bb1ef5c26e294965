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
	LogMsgStartingService     = "Starting service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Database
// =============================================================================

const (
	LogMsgUsingPostgres     = "Using PostgreSQL storage"
	LogMsgUsingMySQL        = "Using MySQL storage"
	LogMsgMigrationsSkipped = "AUTO_MIGRATE disabled, skipping migrations"
	LogMsgDatabaseClosed    = "Database connections closed"
	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedMigrate     = "failed to apply migrations"
	ErrMsgUnsupportedDriver = "unsupported database driver"
)

// =============================================================================
// Idempotency
// =============================================================================

const (
	// MemoryIdempotencyCapacity bounds the in-process key store used without Redis
	MemoryIdempotencyCapacity = 10000

	LogMsgIdempotencyRedis   = "Idempotency keys stored in Redis"
	LogMsgIdempotencyMemory  = "Idempotency keys stored in memory"
	ErrMsgFailedConnectRedis = "failed to connect to redis"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgAuditLoggerRegistered          = "Audit logger registered"
	LogMsgCustomIDEdited                 = "Custom ID edited"
	LogMsgIDFormatChanged                = "Inventory ID format changed"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingInventories   = "Syncing inventories from JSON config..."
	LogMsgInventoriesSynced    = "Inventories synced successfully"
	LogMsgInventoriesUnchanged = "Inventory config unchanged, sync skipped"
	LogMsgSeedFileMissing      = "No inventory seed file found, skipping sync"

	ErrMsgFailedLoadInventories = "failed to load inventories config"
	ErrMsgInvalidInventories    = "invalid inventories config"
	ErrMsgFailedSyncInventories = "failed to sync inventories to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCloseFailed                = "Closing resource failed"
)
