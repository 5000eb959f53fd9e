package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"gepe-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDBType represents the type of database to use for testing
type TestDBType string

const (
	TestDBTypeSQLite   TestDBType = "sqlite"
	TestDBTypePostgres TestDBType = "postgres"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  *Store
	dbType TestDBType
}

// SetupTestDB creates a new test database instance.
// It defaults to in-memory SQLite so the suite runs without external
// services; set TEST_DB_TYPE=postgres to run against a real database.
func SetupTestDB(t *testing.T, dbType TestDBType) *TestDB {
	t.Helper()

	if dbType == "" {
		envDBType := os.Getenv("TEST_DB_TYPE")
		if envDBType == "" {
			dbType = TestDBTypeSQLite
		} else {
			dbType = TestDBType(envDBType)
		}
	}

	logger := observability.NewLogger()

	var store *Store
	var err error

	switch dbType {
	case TestDBTypeSQLite:
		store, err = New("sqlite", "file::memory:?_pragma=foreign_keys(1)", logger)
	case TestDBTypePostgres:
		store, err = New("pgx", postgresTestURL(), logger)
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}

	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}

	db := store.DB()
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping test database: %v", err)
	}

	if err := store.EnsureSchema(context.Background()); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return &TestDB{
		db:     db,
		logger: logger,
		Store:  store,
		dbType: dbType,
	}
}

func postgresTestURL() string {
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "gepe_user"
	}
	if dbPass == "" {
		dbPass = "gepe_password"
	}
	if dbName == "" {
		dbName = "gepe_db"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		// Reverse dependency order.
		tables = []string{
			"order_production_events",
			"order_items",
			"payments",
			"orders",
			"cart_items",
			"products",
			"categories",
			"clubs",
			"addresses",
			"users",
			"newsletter_subscribers",
			"notification_emails",
			"hero_media",
			"promo_banners",
			"promo_banner_settings",
			"product_price_settings",
			"unique_visits",
		}
	}

	for _, table := range tables {
		var err error
		if tdb.dbType == TestDBTypePostgres {
			_, err = tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		} else {
			_, err = tdb.db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		}
		if err != nil {
			// Skip if table doesn't exist
			if !strings.Contains(err.Error(), "does not exist") && !strings.Contains(err.Error(), "no such table") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// ExecSQL executes raw SQL for test setup
func (tdb *TestDB) ExecSQL(t *testing.T, query string, args ...interface{}) sql.Result {
	t.Helper()
	result, err := tdb.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
	return result
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	_, err := tdb.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
