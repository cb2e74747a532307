package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jrescalona/rainalert/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDatabaseURL returns the database URL for tests.
// DATABASE_URL wins over RAINALERT_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("RAINALERT_TEST_DB_URL")
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDB returns a migrated database connection for testing. It skips the
// test when no database URL is configured and closes the pool on cleanup.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or RAINALERT_TEST_DB_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	SetupTestDatabaseSchema(t, db)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	return db
}

// SetupTestDatabaseSchema applies the embedded migrations. It runs at most
// once per test binary.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(context.Background(), db, "up")
	})
	require.NoError(t, migrateErr, "Failed to run migrations")
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes. This ensures test isolation and prevents side effects.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
