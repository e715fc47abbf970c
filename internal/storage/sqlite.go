// Package storage persists run history and per-page extraction outcomes in a
// local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is the SQLite-backed run ledger.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the ledger database at dbPath and
// applies the schema.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TIMESTAMP NOT NULL,
	completed_at TIMESTAMP,
	sources INTEGER NOT NULL DEFAULT 0,
	pages INTEGER NOT NULL DEFAULT 0,
	companies INTEGER NOT NULL DEFAULT 0,
	pdfs_written INTEGER NOT NULL DEFAULT 0,
	reports_written INTEGER NOT NULL DEFAULT 0,
	reports_skipped INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_pages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id),
	source_id TEXT NOT NULL,
	page_num INTEGER NOT NULL,
	raw_company TEXT,
	company_key TEXT NOT NULL,
	category TEXT NOT NULL,
	amount TEXT
);

CREATE INDEX IF NOT EXISTS idx_run_pages_run ON run_pages(run_id);
CREATE INDEX IF NOT EXISTS idx_run_pages_company ON run_pages(company_key);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
