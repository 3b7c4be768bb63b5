package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareit/shareit-backend/internal/db"
)

// NewPool connects to TEST_DB_DSN, applies the schema and truncates every table.
// The test is skipped when TEST_DB_DSN is not set.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, db.Options{DSN: dsn})
	if err != nil {
		t.Fatalf("unable to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	const truncate = `TRUNCATE TABLE public.comments, public.bookings, public.items, public.item_requests, public.users RESTART IDENTITY CASCADE`
	if _, err := pool.Exec(ctx, truncate); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}

	return pool
}
