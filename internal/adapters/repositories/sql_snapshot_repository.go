package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"setback-area-service/internal/domain"
	"setback-area-service/internal/platform/obs"
)

// SQLSnapshotRepository is a Postgres-backed snapshot store for deployments
// that persist results centrally. Schema is managed by cmd/dbtool.
type SQLSnapshotRepository struct {
	DB *sql.DB
}

func NewSQLSnapshotRepository(db *sql.DB) *SQLSnapshotRepository {
	return &SQLSnapshotRepository{DB: db}
}

// Save stores a snapshot, replacing any existing one with the same key.
func (r *SQLSnapshotRepository) Save(ctx context.Context, snap domain.ResultSnapshot) (err error) {
	defer obs.Time(ctx, "snapshot.repo.Save")(&err)

	if r.DB == nil {
		return errors.New("snapshot repository: db is nil")
	}
	if snap.Key == "" {
		return errors.New("save snapshot: key must not be empty")
	}

	const q = `
	INSERT INTO result_snapshots (key, method, site_area, document, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (key) DO UPDATE
	SET method = EXCLUDED.method,
		site_area = EXCLUDED.site_area,
		document = EXCLUDED.document,
		created_at = EXCLUDED.created_at;
	`

	if _, err := r.DB.ExecContext(ctx, q, snap.Key, string(snap.Method), snap.SiteAreaM2, snap.Document, snap.CreatedAt); err != nil {
		return fmt.Errorf("save snapshot key=%q: %w", snap.Key, err)
	}
	return nil
}

// ListRecent returns up to limit snapshots, newest first.
func (r *SQLSnapshotRepository) ListRecent(ctx context.Context, limit int) (_ []domain.ResultSnapshot, err error) {
	defer obs.Time(ctx, "snapshot.repo.ListRecent")(&err)

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
	LIMIT $1;
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
