package repositories

import (
	"database/sql"
	"fmt"
)

// InitSqliteSchema creates the snapshot table for local SQLite runs.
func InitSqliteSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS result_snapshots (
		key         TEXT PRIMARY KEY,
		method      TEXT NOT NULL,
		site_area   REAL NOT NULL,
		document    BLOB NOT NULL,
		created_at  TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_result_snapshots_created
		ON result_snapshots (created_at DESC);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init sqlite schema: %w", err)
	}
	return nil
}
