// Package sqlite provides a SQLite-backed zengin.Source.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// NewReadOnlyDB creates a DB that opens an existing database file read-only.
// Open neither creates the file nor writes the schema.
func NewReadOnlyDB(path string) *DB {
	return &DB{path: path, readOnly: true}
}

// dsn returns the data source name passed to the driver.
func (db *DB) dsn() string {
	if !db.readOnly {
		return db.path
	}
	u := url.URL{Scheme: "file", OmitHost: true, Path: db.path, RawQuery: "mode=ro"}
	return u.String()
}

// Open opens the database connection and, unless the DB is read-only,
// creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.dsn())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection, so keep exactly one.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if db.readOnly {
		return nil
	}

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the bank and branch tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS banks (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			kana TEXT NOT NULL DEFAULT '',
			hira TEXT NOT NULL DEFAULT '',
			roma TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS branches (
			bank_code TEXT NOT NULL REFERENCES banks(code) ON DELETE CASCADE,
			code TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			kana TEXT NOT NULL DEFAULT '',
			hira TEXT NOT NULL DEFAULT '',
			roma TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (bank_code, code)
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
