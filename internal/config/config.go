package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int      `env:"PORT" env-default:"8080"`
	ServiceName    string   `env:"SERVICE_NAME" env-default:"stockpile"`
	Environment    string   `env:"ENVIRONMENT" env-default:"dev"`
	Version        string   `env:"VERSION" env-default:"dev"`
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	LogDir    string `env:"LOG_DIR"` // empty logs to stdout only

	DBDriver   string `env:"DATABASE_DRIVER" env-default:"postgres"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"postgres"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBName     string `env:"DB_NAME" env-default:"stockpile"`
	MySQLDSN   string `env:"MYSQL_DSN"`

	DBMaxConns        int           `env:"DB_MAX_CONNS" env-default:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"30m"`
	AutoMigrate       bool          `env:"AUTO_MIGRATE" env-default:"true"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" env-default:"0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" env-default:"24h"`

	TemplateCacheSize int    `env:"TEMPLATE_CACHE_SIZE" env-default:"256"`
	SeedConfigPath    string `env:"SEED_CONFIG_PATH" env-default:"configs/inventories.json"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" env-default:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" env-default:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" env-default:"logs/event_deadletter.jsonl"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load loads the configuration from the environment.
// A .env file is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// UsesMySQL reports whether the MySQL adapter is selected
func (c *Config) UsesMySQL() bool {
	return c.DBDriver == DriverMySQL
}
