// Package storage provides SQLite-based persistence for menu usage and
// drag-and-drop item order.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Selection is one aggregated usage record of a menu item.
type Selection struct {
	ItemPath string
	Count    int
	LastUsed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			menu_id TEXT NOT NULL,
			item_path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_selections_menu ON selections(menu_id);
		CREATE INDEX IF NOT EXISTS idx_selections_item ON selections(menu_id, item_path);

		CREATE TABLE IF NOT EXISTS item_order (
			menu_id TEXT NOT NULL,
			parent_path TEXT NOT NULL,
			item_label TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (menu_id, parent_path, item_label)
		);
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

// RecordSelection stores that the item at the given path was activated.
func (s *Store) RecordSelection(menuID, itemPath string) error {
	_, err := s.db.Exec(
		"INSERT INTO selections (menu_id, item_path) VALUES (?, ?)",
		menuID, itemPath,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record selection: %w", err)
	}
	return nil
}

// TopSelections retrieves the most used items of the given menu, most used
// first.
func (s *Store) TopSelections(menuID string, limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT item_path, COUNT(*) AS uses, MAX(created_at)
		FROM selections
		WHERE menu_id = ?
		GROUP BY item_path
		ORDER BY uses DESC, item_path ASC
		LIMIT ?`,
		menuID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query selections: %w", err)
	}
	defer rows.Close()

	var result []Selection
	for rows.Next() {
		var sel Selection
		// MAX(created_at) is an expression, so the driver hands back the
		// raw text rather than a time.Time.
		var lastUsed string
		if err := rows.Scan(&sel.ItemPath, &sel.Count, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan selection: %w", err)
		}
		sel.LastUsed, err = parseTimestamp(lastUsed)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot parse timestamp: %w", err)
		}
		result = append(result, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: selection rows: %w", err)
	}
	return result, nil
}

// parseTimestamp reads the formats SQLite produces for CURRENT_TIMESTAMP.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// SelectionCount returns the total number of recorded activations for a menu.
func (s *Store) SelectionCount(menuID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM selections WHERE menu_id = ?", menuID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count selections: %w", err)
	}
	return count, nil
}

// SaveOrder persists the item order of one menu level after a drop,
// replacing any previous order for that level.
func (s *Store) SaveOrder(menuID, parentPath string, labels []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"DELETE FROM item_order WHERE menu_id = ? AND parent_path = ?",
		menuID, parentPath,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear order: %w", err)
	}
	for i, label := range labels {
		_, err = tx.Exec(
			"INSERT INTO item_order (menu_id, parent_path, item_label, position) VALUES (?, ?, ?, ?)",
			menuID, parentPath, label, i,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit order: %w", err)
	}
	return nil
}

// LoadOrder retrieves the persisted item order of one menu level. An empty
// result means nothing was saved for that level.
func (s *Store) LoadOrder(menuID, parentPath string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT item_label FROM item_order
		WHERE menu_id = ? AND parent_path = ?
		ORDER BY position ASC`,
		menuID, parentPath,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query order: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("storage: cannot scan order: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: order rows: %w", err)
	}
	return labels, nil
}
