package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/client_service/internal/core/ports/repositories"
	"github.com/SscSPs/client_service/internal/platform/config"
	"github.com/SscSPs/client_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/client_service/internal/repositories/database/sqlite"
	"github.com/SscSPs/client_service/migrations"
	"github.com/SscSPs/client_service/pkg/database"
)

// store bundles the repositories of the configured driver with its lifecycle hooks.
type store struct {
	Repos portsrepo.RepositoryProvider
	seed  func(ctx context.Context) (bool, error)
	close func()
}

func (s *store) Seed(ctx context.Context) error {
	seeded, err := s.seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed clients: %w", err)
	}
	if seeded {
		logger.Info("Seed clients inserted.")
	} else {
		logger.Info("Client table not empty, seed skipped.")
	}
	return nil
}

func (s *store) Close() {
	if s.close != nil {
		s.close()
	}
}

// migrate brings the schema of the configured store up to date.
func migrate(cfg *config.Config) error {
	if cfg.StoreDriver == config.StoreDriverSQLite {
		// The SQLite schema is applied whenever the database is opened.
		logger.Info("SQLite schema is applied on open; nothing to migrate.")
		return nil
	}
	return database.RunMigrations(cfg.DatabaseURL, logger)
}

// openStore connects to the configured store.
func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		logger.Info("SQLite database opened.", slog.String("path", cfg.SQLitePath))
		return &store{
			Repos: sqlite.NewRepositoryProvider(db),
			seed: func(ctx context.Context) (bool, error) {
				return database.SeedSQLite(ctx, db, migrations.SeedClients)
			},
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
				}
			},
		}, nil

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return &store{
			Repos: pgsql.NewRepositoryProvider(dbPool),
			seed: func(ctx context.Context) (bool, error) {
				return database.SeedPostgres(ctx, dbPool, migrations.SeedClients)
			},
			close: func() { database.ClosePgxPool(dbPool) },
		}, nil
	}
}
