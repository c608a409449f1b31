// Package history records palette command invocations in a local
// sqlite database. It feeds the "recent commands" hint and the
// `codedeck history` subcommand; it never reorders the palette itself.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS command_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	command_id TEXT NOT NULL,
	invoked_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_command_history_command ON command_history(command_id);
`

// Store is a sqlite-backed command invocation log
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record logs one invocation of a command
func (s *Store) Record(ctx context.Context, commandID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO command_history (command_id, invoked_at) VALUES (?, ?)",
		commandID, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Recent returns up to limit distinct command ids, most recent first
func (s *Store) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT command_id FROM command_history GROUP BY command_id ORDER BY MAX(id) DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded invocations
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM command_history").Scan(&n)
	return n, err
}
