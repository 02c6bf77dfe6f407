package postgres

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GreenMap_Go/internal/database"
)

// testPool is nil when Docker is unavailable or -short is set
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var stop func()
	if !testing.Short() {
		testPool, stop = startTreeStore(context.Background())
	}

	code := m.Run()

	if stop != nil {
		stop()
	}
	os.Exit(code)
}

// startTreeStore boots a throwaway Postgres, connects and migrates it. Any
// failure leaves the pool nil so integration tests skip.
func startTreeStore(ctx context.Context) (pool *pgxpool.Pool, stop func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARNING: testcontainers panicked: %v", r)
			pool, stop = nil, nil
		}
	}()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("greenmap_test"),
		tcpostgres.WithUsername("greenmap"),
		tcpostgres.WithPassword("greenmap"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		log.Printf("WARNING: postgres container unavailable: %v", err)
		return nil, nil
	}
	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("WARNING: terminate postgres container: %v", err)
		}
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err == nil {
		pool, err = database.NewPool(ctx, dsn, 5, 5*time.Minute)
	}
	if err == nil {
		if err = database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
		}
	}
	if err != nil {
		log.Printf("WARNING: tree store not ready: %v", err)
		terminate()
		return nil, nil
	}

	return pool, func() {
		pool.Close()
		terminate()
	}
}

// requireDB skips without a container and empties the trees table
func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("postgres container not available")
	}
	if _, err := testPool.Exec(context.Background(), "TRUNCATE trees RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate trees: %v", err)
	}
}
