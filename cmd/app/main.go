package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Stockpile_Go/internal/bootstrap"
	"github.com/osse101/Stockpile_Go/internal/config"
	"github.com/osse101/Stockpile_Go/internal/inventory"
	"github.com/osse101/Stockpile_Go/internal/item"
	"github.com/osse101/Stockpile_Go/internal/server"
)

// @title           Stockpile API
// @version         1.0
// @description     Inventories with custom ID templates and versioned items.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components := bootstrap.ShutdownComponents{}
	if logFile != nil {
		components.LogFile = logFile
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	components.Pool = repos.Pool

	idem, redisClient, err := bootstrap.InitializeIdempotency(ctx, cfg)
	if err != nil {
		repos.Pool.Close()
		return err
	}
	if redisClient != nil {
		components.Redis = redisClient
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), components)
		return err
	}
	components.ResilientPublisher = publisher
	bootstrap.RegisterEventHandlers(bus)

	if err := bootstrap.SyncInventories(ctx, repos.Inventory, cfg.SeedConfigPath); err != nil {
		bootstrap.GracefulShutdown(context.Background(), components)
		return err
	}

	itemService := item.NewService(repos.Item, publisher, idem, cfg.TemplateCacheSize)
	inventoryService := inventory.NewService(repos.Inventory, publisher)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, repos.Pool, itemService, inventoryService)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return err
}
