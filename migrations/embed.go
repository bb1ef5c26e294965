// Package migrations holds the goose migrations for every supported database.
package migrations

import "embed"

// Postgres holds the PostgreSQL migrations under the "postgres" directory
//
//go:embed postgres/*.sql
var Postgres embed.FS

// MySQL holds the MySQL migrations under the "mysql" directory
//
//go:embed mysql/*.sql
var MySQL embed.FS

const (
	PostgresDir = "postgres"
	MySQLDir    = "mysql"
)
