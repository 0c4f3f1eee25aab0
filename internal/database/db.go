// Package database provides the SQLite-backed record store for eqrng.
//
// The store holds zones, instances, their notes and flags, curated links and
// visitor ratings. The schema is versioned with golang-migrate using SQL
// files embedded in the binary.
//
// Admin listings are driven by internal/listquery plans: the store executes
// the count and page queries, then attaches child collections (notes,
// flags) for the whole page with one batched query per collection.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Options tune Open.
type Options struct {
	MaxOpenConns int
	// Migrate applies pending migrations before Open returns.
	Migrate bool
}

// DB wraps a SQLite database connection with thread-safe operations.
type DB struct {
	conn *sql.DB
	mu   sync.RWMutex // Serializes writers against readers
}

// Open opens or creates a SQLite database at the given path.
func Open(path string, opts Options) (*DB, error) {
	// WAL for concurrent readers; foreign keys for cascading deletes.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen / 2)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{conn: conn}

	if opts.Migrate {
		if err := db.Migrate(); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) newMigrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db.conn, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// Migrate applies all pending schema migrations.
//
// The migrator is deliberately not closed: closing it closes the shared
// *sql.DB.
func (db *DB) Migrate() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, err := db.newMigrator()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// SchemaVersion reports the applied migration version. ok is false on a
// database that has never been migrated.
func (db *DB) SchemaVersion() (version uint, dirty bool, ok bool, err error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	m, err := db.newMigrator()
	if err != nil {
		return 0, false, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, true, nil
}

// Health checks database connectivity.
func (db *DB) Health(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Stats exposes connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.conn.Stats()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
