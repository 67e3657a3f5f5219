package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cosmedis/backoffice-go/internal/fixtures"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by repository tests. Tests are
// skipped when TEST_DATABASE_URL is not set.
type TestDatabaseSetup struct {
	DB *database.DB
}

func NewTestDatabase() (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if _, err := db.Pool.Exec(context.Background(), fixtures.Schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, nil
}

func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"driver_settlements",
		"deliveries",
		"stock_movements",
		"payments",
		"commission_entries",
		"production_batches",
		"products",
		"presence_records",
		"employees",
	}

	for _, table := range tables {
		if _, err := t.DB.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
