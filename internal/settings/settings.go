// Package settings persists the small amount of state that survives a
// session: the selected theme and a short most-recently-opened list. It is
// a SQLite-backed key-value table under the state directory.
package settings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	themeKey   = "theme"
	recentKey  = "recent"
	maxRecent  = 5
	DefaultDir = ".mermed"
	fileName   = "settings.db"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the settings database under dir. An empty
// dir defaults to ~/.mermed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("settings: home dir: %w", err)
		}
		dir = filepath.Join(home, DefaultDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	db, err := sql.Open("sqlite3", filepath.Join(dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("settings: open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.setup(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) setup() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("settings: create table: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) get(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings: get %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("settings: set %s: %w", key, err)
	}
	return nil
}

// Theme returns the persisted theme name, or "" if none was ever saved.
func (s *Store) Theme() (string, error) { return s.get(themeKey) }

// SetTheme persists the theme name; called on every theme change.
func (s *Store) SetTheme(name string) error { return s.set(themeKey, name) }

// Recent returns the most-recently-opened paths, newest first.
func (s *Store) Recent() ([]string, error) {
	v, err := s.get(recentKey)
	if err != nil || v == "" {
		return nil, err
	}
	return strings.Split(v, "\n"), nil
}

// Touch moves path to the front of the recent list, dropping duplicates and
// trimming to the cap.
func (s *Store) Touch(path string) error {
	prev, err := s.Recent()
	if err != nil {
		return err
	}
	paths := []string{path}
	for _, p := range prev {
		if p != path && p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) > maxRecent {
		paths = paths[:maxRecent]
	}
	return s.set(recentKey, strings.Join(paths, "\n"))
}
