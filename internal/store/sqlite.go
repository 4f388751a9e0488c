package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore keeps every key's JSON snapshot in a single state table.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "havenstay.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Load(key string) ([]byte, bool) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (s *SQLiteStore) Save(key string, payload []byte) error {
	_, err := s.db.Exec(`INSERT INTO state (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`, key, payload)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys() []string {
	rows, err := s.db.Query(`SELECT key FROM state ORDER BY key`)
	if err != nil {
		return nil
	}
	defer func() { _ = rows.Close() }()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Path reports the backing database file.
func (s *SQLiteStore) Path() string { return s.path }
