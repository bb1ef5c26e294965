package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/osse101/Stockpile_Go/internal/config"
	"github.com/osse101/Stockpile_Go/internal/database"
	"github.com/osse101/Stockpile_Go/internal/database/mysql"
)

const (
	migrateMaxConns = 2
	migrateTimeout  = 5 * time.Minute
)

type migrateOptions struct {
	driver string
	dsn    string
}

func newMigrateCmd() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded database migrations",
	}
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", envOr("DATABASE_DRIVER", config.DriverPostgres), "Database driver: postgres|mysql")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", os.Getenv("DATABASE_URL"), "Connection string (defaults to $DATABASE_URL)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
					for _, s := range statuses {
						state, at := "pending", "-"
						if s.Applied {
							state, at = "applied", s.AppliedAt.Format(time.RFC3339)
						}
						fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Version, state, at, s.Path)
					}
					return w.Flush()
				})
			},
		},
	)
	return cmd
}

// withMigrator opens the configured database, runs fn and closes the connection
func (o *migrateOptions) withMigrator(parent context.Context, fn func(context.Context, *database.Migrator) error) error {
	if o.dsn == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, migrateTimeout)
	defer cancel()

	var (
		db      *sql.DB
		dialect goose.Dialect
	)
	switch o.driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, o.dsn, migrateMaxConns, time.Minute, time.Hour)
		if err != nil {
			return err
		}
		defer pool.Close()
		db, dialect = stdlib.OpenDBFromPool(pool), goose.DialectPostgres
	case config.DriverMySQL:
		conn, err := mysql.Open(ctx, o.dsn, migrateMaxConns, time.Minute, time.Hour)
		if err != nil {
			return err
		}
		db, dialect = conn, goose.DialectMySQL
	default:
		return fmt.Errorf("%s (got %q)", config.ErrMsgInvalidDriver, o.driver)
	}
	defer db.Close()

	return fn(ctx, database.NewMigrator(db, dialect))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
