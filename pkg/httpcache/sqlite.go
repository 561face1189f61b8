package httpcache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS response_cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at TIMESTAMP NOT NULL
)`

// SQLite is a Store backed by a SQLite database. Unlike Disk, entries
// expire after a TTL.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLite opens (creating if needed) the database at path and
// prepares the cache table. Entries live for ttl after each write; a
// ttl of zero means they never expire.
func NewSQLite(path string, ttl time.Duration) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &SQLite{db: db, ttl: ttl}, nil
}

// Get retrieves a cached body by key.
// Returns nil, false if not found or expired.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	var expiresAt time.Time

	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM response_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)

	if err != nil || time.Now().After(expiresAt) {
		return nil, false
	}
	return value, true
}

// Set stores a body for key with the configured TTL.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	ttl := s.ttl
	if ttl == 0 {
		// No expiry configured; park the deadline far enough out.
		ttl = 100 * 365 * 24 * time.Hour
	}
	expiresAt := time.Now().Add(ttl)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO response_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Prune removes all expired entries.
// Returns the number of entries removed.
func (s *SQLite) Prune(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM response_cache WHERE expires_at < ?", time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
