package storage

import (
	"database/sql"
	"fmt"
)

// MigrateDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables exist, WAL mode and foreign keys enabled
func MigrateDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS client (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		address TEXT,
		guardian TEXT,
		status TEXT NOT NULL,
		flag_reason TEXT NOT NULL DEFAULT '',
		admitted_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS check_in (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		mood INTEGER NOT NULL,
		note TEXT,
		recorded_by TEXT NOT NULL,
		checked_in_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES client(id)
	);

	CREATE TABLE IF NOT EXISTS intervention (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		scheduled_for TEXT NOT NULL,
		notes TEXT,
		created_by TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES client(id)
	);

	CREATE TABLE IF NOT EXISTS progress_note (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		author TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES client(id)
	);

	CREATE TABLE IF NOT EXISTS activity_log (
		id TEXT PRIMARY KEY,
		actor TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT,
		target TEXT,
		ip_address TEXT,
		occurred_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedule_override (
		time_label TEXT NOT NULL,
		day_label TEXT NOT NULL,
		text TEXT NOT NULL,
		column_index INTEGER NOT NULL,
		span_width INTEGER NOT NULL,
		PRIMARY KEY (time_label, column_index)
	);

	CREATE INDEX IF NOT EXISTS idx_check_in_client ON check_in(client_id);
	CREATE INDEX IF NOT EXISTS idx_check_in_time ON check_in(checked_in_at);
	CREATE INDEX IF NOT EXISTS idx_intervention_client ON intervention(client_id);
	CREATE INDEX IF NOT EXISTS idx_intervention_scheduled ON intervention(scheduled_for);
	CREATE INDEX IF NOT EXISTS idx_progress_note_client ON progress_note(client_id);
	CREATE INDEX IF NOT EXISTS idx_activity_log_time ON activity_log(occurred_at);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
