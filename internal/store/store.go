package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported store drivers. SQLite is the default and needs no external
// database; postgres and mysql point the console at a shared directory DB.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Store persists admin accounts and the end-user directory behind a single
// sqlx handle. Queries are written with ? placeholders and rebound per driver.
type Store struct {
	db *sqlx.DB
}

// Open connects to the backing database and runs migrations. An empty driver
// selects SQLite; an empty DSN with SQLite opens an in-memory database.
func Open(driver, dsn string) (*Store, error) {
	var driverName string
	switch driver {
	case "", DriverSQLite:
		driverName = "sqlite"
		if dsn == "" {
			dsn = ":memory:?_journal_mode=WAL"
		}
	case DriverPostgres:
		driverName = "pgx"
	case DriverMySQL:
		driverName = "mysql"
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store database: %w", err)
	}

	if driverName == "sqlite" {
		db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate store database: %w", err)
	}
	return s, nil
}

// SQLiteDSN builds the on-disk SQLite DSN for the given data directory,
// creating the directory if needed.
func SQLiteDSN(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dataDir, "admindesk.db") + "?_journal_mode=WAL&_busy_timeout=5000", nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
