package logger

// Accepted LOG_LEVEL values; anything else logs at info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values; anything else is text
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for tools running without the service config
const (
	DefaultServiceName = "stockpile"
	DefaultVersion     = "dev"
)

// Environments that change logging behaviour
const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
)

// Attribute keys every record may carry
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
