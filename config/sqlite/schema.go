package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaName = "notion-gcal-sync"

// migrations are applied in order; index i upgrades schema version i to i+1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		time_zone TEXT,
		last_edited_time TEXT NOT NULL,
		google_event_id TEXT
	);

	CREATE TABLE IF NOT EXISTS google_oauth_tokens (
		user_id TEXT PRIMARY KEY,
		access_token TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		expiry_date INTEGER NOT NULL,
		refresh_token_expiry INTEGER NOT NULL DEFAULT 0,
		scope TEXT NOT NULL DEFAULT '',
		token_type TEXT NOT NULL DEFAULT 'Bearer',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
}

// Migrate brings the schema up to the latest version tracked in db_version.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS db_version (
		name TEXT PRIMARY KEY,
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create db_version table: %w", err)
	}

	var version int
	err := db.QueryRowContext(ctx, `SELECT version FROM db_version WHERE name = ?`, schemaName).Scan(&version)
	if err == sql.ErrNoRows {
		if _, err := db.ExecContext(ctx, `INSERT INTO db_version (name, version) VALUES (?, 0)`, schemaName); err != nil {
			return fmt.Errorf("failed to initialize db_version: %w", err)
		}
		version = 0
	} else if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for ; version < len(migrations); version++ {
		if _, err := db.ExecContext(ctx, migrations[version]); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", version+1, err)
		}
		if _, err := db.ExecContext(ctx, `UPDATE db_version SET version = ? WHERE name = ?`, version+1, schemaName); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", version+1, err)
		}
	}
	return nil
}
