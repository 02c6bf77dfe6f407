package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GreenMap_Go/internal/bootstrap"
	"github.com/osse101/GreenMap_Go/internal/config"
	"github.com/osse101/GreenMap_Go/internal/domain"
)

// demoTrees are planted by -seed, all inside the built-in region
var demoTrees = []domain.TreeDraft{
	{X: 412.5, Y: 298, Name: "Old Oak", Color: domain.DefaultTreeColor, Timestamp: "2024-04-22T09:00:00Z"},
	{X: 380, Y: 350.25, Name: "Riverside Willow", Color: "#0ea5e9", Timestamp: "2024-04-22T09:30:00Z"},
	{X: 450, Y: 260, Name: "School Birch", Color: "#a16207", Timestamp: "2024-04-22T10:00:00Z"},
}

func main() {
	seed := flag.Bool("seed", false, "plant demo trees after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	if cfg.StoreDriver == config.StoreDriverPostgres {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	// OpenStore applies the embedded migrations
	fmt.Printf("Running %s migrations...\n", cfg.StoreDriver)
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	defer store.Close()
	fmt.Println("Migration completed successfully.")

	if !*seed {
		return
	}

	count, err := store.Trees.CountTrees(ctx)
	if err != nil {
		log.Fatalf("Failed to count trees: %v", err)
	}
	if count > 0 {
		fmt.Printf("Store already has %d trees, skipping seed.\n", count)
		return
	}
	for _, draft := range demoTrees {
		t, err := store.Trees.CreateTree(ctx, draft)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", draft.Name, err)
		}
		fmt.Printf("Planted #%d %s\n", t.ID, t.Name)
	}
}

// ensureDatabase creates the configured database when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBSSLMode)
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
