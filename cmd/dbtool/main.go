package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"setback-area-service/internal/platform/db"
)

// dbtool initializes the Postgres snapshot schema for deployments that
// persist results centrally instead of in the local SQLite store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := initSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

func initSchema(conn *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS result_snapshots (
		key         TEXT PRIMARY KEY,
		method      TEXT NOT NULL,
		site_area   DOUBLE PRECISION NOT NULL,
		document    BYTEA NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_result_snapshots_created
		ON result_snapshots (created_at DESC);
	`

	_, err := conn.Exec(schema)
	return err
}
