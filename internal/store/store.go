// Package store persists durations and statistics as flat key-value
// pairs in a sqlite settings table. Each key is written independently;
// writes are last-write-wins.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed key-value store. It satisfies session.KV.
type Store struct {
	db     *sql.DB
	dbFile string
}

// Open opens (creating if necessary) the database at path and ensures
// the schema exists. Safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	s := &Store{db: db, dbFile: path}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`)
	if err != nil {
		return fmt.Errorf("create settings table: %w", err)
	}
	return nil
}

// Get returns the stored value for key, or ok=false when absent.
func (s *Store) Get(key string) (string, bool) {
	var value *string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

// Set upserts a key.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return err
}

// Delete removes a key. Absent keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
