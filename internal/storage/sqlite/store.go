// Package sqlite reads and writes alarm snapshots in a local SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotInitialized is returned by Load when the database file does not exist
var ErrNotInitialized = errors.New("snapshot store not initialized, run 'medreminder init' first")

const schema = `
CREATE TABLE IF NOT EXISTS alarms (
	position            INTEGER NOT NULL,
	id                  TEXT PRIMARY KEY,
	medication_name     TEXT NOT NULL,
	dose                TEXT NOT NULL DEFAULT '',
	time                TEXT NOT NULL,
	repeat_pattern      TEXT NOT NULL,
	custom_hours        INTEGER NOT NULL DEFAULT 0,
	active              INTEGER NOT NULL,
	sound_enabled       INTEGER NOT NULL,
	sleep_hours_enabled INTEGER NOT NULL,
	sleep_start_time    TEXT NOT NULL DEFAULT '',
	sleep_end_time      TEXT NOT NULL DEFAULT '',
	next_alarm          TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the database file and schema if needed
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Load opens an existing database
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	ok, err := s.tableExists("alarms")
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !ok {
		return ErrNotInitialized
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
