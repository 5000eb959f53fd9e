package store

import (
	"errors"
	"fmt"
	"gepe-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Embedded driver used when no DATABASE_URL is set
)

var ErrNotFound = errors.New("not found")

// Queries use $N placeholders numbered in order of first appearance. sqlite
// treats $N as a named parameter indexed by appearance, so out-of-order
// numbering would bind arguments to the wrong columns there.

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

// New opens a database handle for the given driver ("pgx" or "sqlite").
// The connection is lazy; the first query performs the actual dial.
func New(driver, dsn string, logger *observability.Logger) (*Store, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == "sqlite" {
		// sqlite locks the whole file on write and :memory: databases are
		// per-connection, so everything goes through a single connection.
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}
