package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GreenMap_Go/internal/config"
	"github.com/osse101/GreenMap_Go/internal/database"
	"github.com/osse101/GreenMap_Go/internal/database/memory"
	"github.com/osse101/GreenMap_Go/internal/database/postgres"
	"github.com/osse101/GreenMap_Go/internal/database/sqlite"
	"github.com/osse101/GreenMap_Go/internal/repository"
)

// Store is the opened tree store plus whatever must be closed with it
type Store struct {
	Trees  repository.TreeRepository
	Driver string
	close  func()
}

// Close releases the underlying connection pool or file
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore opens the store named by STORE_DRIVER and applies its migrations
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateStore, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "host", cfg.DBHost, "name", cfg.DBName)
		return &Store{Trees: postgres.NewTreeRepository(pool), Driver: cfg.StoreDriver, close: pool.Close}, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return &Store{Trees: sqlite.NewTreeRepository(db), Driver: cfg.StoreDriver, close: func() { _ = db.Close() }}, nil

	case config.StoreDriverMemory:
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
		return &Store{Trees: memory.NewTreeRepository(), Driver: cfg.StoreDriver}, nil
	}
	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
}
