// Package sqlite is a single-file tree store for local runs and small
// deployments without Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pressly/goose/v3"

	"github.com/osse101/GreenMap_Go/internal/database"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Open creates the parent directory, opens the database file and applies
// the embedded migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driverName, fmt.Sprintf(dsnFormat, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer at a time keeps SQLite free of busy errors
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	sub, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := database.Migrate(ctx, goose.DialectSQLite3, db, sub); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
