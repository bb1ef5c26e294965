package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/osse101/Stockpile_Go/internal/config"
	"github.com/osse101/Stockpile_Go/internal/database"
	"github.com/osse101/Stockpile_Go/internal/database/mysql"
	"github.com/osse101/Stockpile_Go/internal/database/postgres"
	"github.com/osse101/Stockpile_Go/internal/repository"
)

// Repositories holds the storage the services run on together with the
// connection behind it. Pool backs the readiness probe and is closed on shutdown.
type Repositories struct {
	Item      repository.Item
	Inventory repository.Inventory
	Pool      database.Pool
}

// InitializeRepositories connects to the configured database, applies the
// embedded migrations unless AUTO_MIGRATE is off, and builds the repositories.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return initPostgres(ctx, cfg)
	case config.DriverMySQL:
		return initMySQL(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDriver, cfg.DBDriver)
	}
}

func initPostgres(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	slog.Info(LogMsgUsingPostgres, "host", cfg.DBHost, "database", cfg.DBName)

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if cfg.AutoMigrate {
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	return &Repositories{
		Item:      postgres.NewItemRepository(pool),
		Inventory: postgres.NewInventoryRepository(pool),
		Pool:      pool,
	}, nil
}

func initMySQL(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	slog.Info(LogMsgUsingMySQL)

	db, err := mysql.Open(ctx, cfg.MySQLDSN, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if cfg.AutoMigrate {
		if _, err := database.NewMigrator(db, goose.DialectMySQL).Up(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	return &Repositories{
		Item:      mysql.NewItemRepository(db),
		Inventory: mysql.NewInventoryRepository(db),
		Pool:      sqlPool{db: db},
	}, nil
}

// sqlPool adapts *sql.DB to database.Pool
type sqlPool struct {
	db *sql.DB
}

func (p sqlPool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p sqlPool) Close() {
	if err := p.db.Close(); err != nil {
		slog.Warn(LogMsgCloseFailed, "resource", "mysql", "error", err)
	}
}
