package config

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Configuration file paths
const (
	ConfigPathInventories       = "configs/inventories.json"
	ConfigPathInventoriesSchema = "configs/schemas/inventories.schema.json"
)

// Error messages
const (
	ErrMsgReadEnv         = "failed to read environment"
	ErrMsgAPIKeyMissing   = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort     = "invalid PORT value"
	ErrMsgInvalidDriver   = "DATABASE_DRIVER must be postgres or mysql"
	ErrMsgMySQLDSNMissing = "MYSQL_DSN must be set when DATABASE_DRIVER is mysql"
	ErrMsgInvalidPool     = "DB_MAX_CONNS must be positive"
	ErrMsgInvalidCache    = "TEMPLATE_CACHE_SIZE must be positive"
)

// Warning messages
const (
	WarnMsgExamplePassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey   = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoRedis         = "REDIS_ADDR is not set - idempotency keys are kept in memory and lost on restart"

	ExamplePassword = "change_this_secure_password"
	ExampleAPIKey   = "generate_with_openssl_rand_hex_32"
)
