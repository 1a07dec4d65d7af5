package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"setback-area-service/internal/domain"
)

// SQLite backed snapshot store for local runs. Snapshots are opaque result
// documents keyed by the request input hash.
type SqliteSnapshotRepository struct {
	DB *sql.DB
}

func NewSqliteSnapshotRepository(db *sql.DB) *SqliteSnapshotRepository {
	return &SqliteSnapshotRepository{DB: db}
}

// Save stores a snapshot, replacing any existing one with the same key.
func (r *SqliteSnapshotRepository) Save(ctx context.Context, snap domain.ResultSnapshot) error {
	if r.DB == nil {
		return errors.New("snapshot repository: db is nil")
	}
	if snap.Key == "" {
		return errors.New("save snapshot: key must not be empty")
	}

	const q = `
	INSERT INTO result_snapshots (key, method, site_area, document, created_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (key) DO UPDATE
	SET method = excluded.method,
		site_area = excluded.site_area,
		document = excluded.document,
		created_at = excluded.created_at;
	`

	if _, err := r.DB.ExecContext(ctx, q, snap.Key, string(snap.Method), snap.SiteAreaM2, snap.Document, snap.CreatedAt); err != nil {
		return fmt.Errorf("save snapshot key=%q: %w", snap.Key, err)
	}
	return nil
}

// ListRecent returns up to limit snapshots, newest first.
func (r *SqliteSnapshotRepository) ListRecent(ctx context.Context, limit int) ([]domain.ResultSnapshot, error) {
	if r.DB == nil {
		return nil, errors.New("snapshot repository: db is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	const q = `
	SELECT key, method, site_area, document, created_at
	FROM result_snapshots
	ORDER BY created_at DESC
	LIMIT ?;
	`

	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: query: %w", err)
	}
	defer rows.Close()

	var out []domain.ResultSnapshot
	for rows.Next() {
		var s domain.ResultSnapshot
		var method string
		if err := rows.Scan(&s.Key, &method, &s.SiteAreaM2, &s.Document, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list snapshots: scan: %w", err)
		}
		s.Method = domain.CalculationMethod(method)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: row iteration: %w", err)
	}
	return out, nil
}
