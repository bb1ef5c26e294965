package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyMissing)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port)
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverMySQL {
		return fmt.Errorf("%s (got %q)", ErrMsgInvalidDriver, c.DBDriver)
	}
	if c.UsesMySQL() && c.MySQLDSN == "" {
		return errors.New(ErrMsgMySQLDSNMissing)
	}
	if c.DBMaxConns <= 0 {
		return errors.New(ErrMsgInvalidPool)
	}
	if c.TemplateCacheSize <= 0 {
		return errors.New(ErrMsgInvalidCache)
	}
	return nil
}

// Warnings returns non-fatal problems worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExamplePassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.RedisAddr == "" {
		warnings = append(warnings, WarnMsgNoRedis)
	}
	return warnings
}
