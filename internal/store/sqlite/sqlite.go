// Package sqlite implements the store.KV contract using SQLite as the backend.
//
// WHY SQLITE FOR A KEY-VALUE STORE?
// SQLite is an embedded database — it lives inside the Go binary as a single
// file. No separate server to install, configure, or manage. A one-table
// kv(key, value) schema gives us a durable string store with atomic per-key
// overwrites, which is all the snapshot persistence layer needs.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C
// compiler installed and cross-compilation becomes painful. modernc.org/sqlite
// is a pure Go translation of the SQLite C code — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// The sqlite package's init() registers itself with database/sql as a
	// driver named "sqlite". After this import, sql.Open("sqlite", ...) knows
	// how to talk to SQLite. This is Go's plugin pattern — database drivers
	// register themselves at init time.
	_ "modernc.org/sqlite"

	"github.com/sakif/marketplace/internal/store"
)

// compile-time check that *DB implements store.KV
var _ store.KV = (*DB)(nil)

// DB wraps a sql.DB connection pool and provides the key-value methods.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/marketplace.db"  → file-based database (persistent)
//   - ":memory:"             → in-memory database (great for tests, lost on close)
//
// sql.Open does NOT actually open a connection — it just creates a pool
// manager. We call Ping to force an immediate connection so a bad path or
// permissions issue surfaces here instead of on the first query.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows only one writer at a time, and a ":memory:" database
	// exists per connection — a pool of N connections would see N separate
	// empty databases. One connection serves both cases correctly.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. Wherever you call New(),
// immediately defer Close() — this flushes the WAL and releases the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the kv table. CREATE TABLE IF NOT EXISTS is idempotent,
// so this is safe to run on every startup.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
// An absent key returns ("", false, nil) — callers treat it as an empty
// collection, not a failure.
func (db *DB) Get(key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: getting %q: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the entire value stored under key.
// The UPSERT makes the overwrite atomic from the caller's perspective — a
// reader sees either the old snapshot or the new one, never a partial write.
func (db *DB) Set(key, value string) error {
	_, err := db.conn.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite: setting %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (db *DB) Delete(key string) error {
	_, err := db.conn.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("sqlite: deleting %q: %w", key, err)
	}
	return nil
}
