package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// DB is the local registry database shared by Registry and Preferences
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode lets the catalog read while an import writes
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS packages (
			user_id INTEGER NOT NULL,
			package_name TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			first_install INTEGER NOT NULL,
			last_update INTEGER NOT NULL,
			uninstalled INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, package_name)
		);
		CREATE TABLE IF NOT EXISTS activities (
			user_id INTEGER NOT NULL,
			package_name TEXT NOT NULL,
			activity_name TEXT NOT NULL,
			action TEXT NOT NULL,
			category TEXT NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, package_name, activity_name, action, category)
		);
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_activities_lookup
			ON activities(user_id, package_name, action, category);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &DB{db: db, path: path}, nil
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

// Close closes the database connection
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
