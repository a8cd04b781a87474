// Package storage picks the snapshot backend for a source string.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/medreminder/internal/seed"
	"github.com/julianstephens/medreminder/internal/storage/postgres"
	"github.com/julianstephens/medreminder/internal/storage/sqlite"
)

// Provider reads and writes whole snapshots. The app reads once at start-up;
// only the init command writes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	LoadSnapshot() (seed.Snapshot, error)
	SaveSnapshot(seed.Snapshot) error

	// GetConfigPath describes where the snapshot lives, with secrets masked
	GetConfigPath() string
}

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
)

// New returns the backend for source: a postgres:// URL selects PostgreSQL,
// anything else is treated as a SQLite file path.
func New(source string) (Provider, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("snapshot source cannot be empty")
	}

	if postgres.IsConnString(source) {
		if _, err := postgres.ValidateConnString(source); err != nil {
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(source), nil
}

// HasEmbeddedCredentials reports whether source is a PostgreSQL URL that
// carries a password
func HasEmbeddedCredentials(source string) bool {
	if !postgres.IsConnString(source) {
		return false
	}
	_, err := postgres.ValidateConnString(source)
	return errors.Is(err, postgres.ErrEmbeddedCredentials)
}

// ReadSnapshot opens source, reads its snapshot and closes it again
func ReadSnapshot(source string) (seed.Snapshot, error) {
	p, err := New(source)
	if err != nil {
		return seed.Snapshot{}, err
	}
	if err := p.Load(); err != nil {
		return seed.Snapshot{}, fmt.Errorf("failed to open snapshot %s: %w", p.GetConfigPath(), err)
	}
	defer p.Close()

	snap, err := p.LoadSnapshot()
	if err != nil {
		return seed.Snapshot{}, fmt.Errorf("failed to read snapshot %s: %w", p.GetConfigPath(), err)
	}
	return snap, nil
}

// WriteSnapshot initializes source if needed and replaces its contents with snap
func WriteSnapshot(source string, snap seed.Snapshot) error {
	p, err := New(source)
	if err != nil {
		return err
	}
	if err := p.Init(); err != nil {
		return fmt.Errorf("failed to initialize snapshot %s: %w", p.GetConfigPath(), err)
	}
	defer p.Close()

	if err := p.SaveSnapshot(snap); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", p.GetConfigPath(), err)
	}
	return nil
}
