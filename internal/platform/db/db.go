package db

import (
	"database/sql"
	"fmt"
)

// Open a Postgres connection through the pgx stdlib driver and verify it.
// The driver must be registered by the caller (blank import).
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("open db: verify connection: %w", err)
	}

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(10)
	return conn, nil
}
