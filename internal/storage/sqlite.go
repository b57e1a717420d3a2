// Package storage provides SQLite-based persistence for the scenario
// library. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The store holds scenario documents only; game results are
// never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a named scenario does not exist in the store.
var ErrNotFound = errors.New("storage: scenario not found")

// Store manages the SQLite database connection for the scenario library.
type Store struct {
	db *sql.DB
}

// ScenarioEntry is one stored scenario record. Source holds the original
// YAML document verbatim, so exporting returns exactly what was imported.
type ScenarioEntry struct {
	ID        int64
	Name      string
	Theme     string
	Source    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			theme TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScenario inserts or replaces a named scenario document.
// Returns the ID of the record.
func (s *Store) SaveScenario(name, theme, source string) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scenarios (name, theme, source) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET theme = excluded.theme, source = excluded.source`,
		name, theme, source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save scenario: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get scenario id: %w", err)
	}
	return id, nil
}

// GetScenario fetches a stored scenario by name.
func (s *Store) GetScenario(name string) (ScenarioEntry, error) {
	var entry ScenarioEntry
	err := s.db.QueryRow(
		"SELECT id, name, theme, source, created_at FROM scenarios WHERE name = ?",
		name,
	).Scan(&entry.ID, &entry.Name, &entry.Theme, &entry.Source, &entry.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ScenarioEntry{}, ErrNotFound
	}
	if err != nil {
		return ScenarioEntry{}, fmt.Errorf("storage: cannot load scenario %q: %w", name, err)
	}
	return entry, nil
}

// ListScenarios returns all stored scenarios ordered by name.
func (s *Store) ListScenarios() ([]ScenarioEntry, error) {
	rows, err := s.db.Query(
		"SELECT id, name, theme, source, created_at FROM scenarios ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list scenarios: %w", err)
	}
	defer rows.Close()

	var entries []ScenarioEntry
	for rows.Next() {
		var entry ScenarioEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Theme, &entry.Source, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan scenario row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: scenario row iteration: %w", err)
	}
	return entries, nil
}

// DeleteScenario removes a stored scenario by name.
func (s *Store) DeleteScenario(name string) error {
	result, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scenario %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
