package ports

import (
	"context"

	"setback-area-service/internal/domain"
)

// Port: a boundary for persisting and reading back opaque result snapshots.
type SnapshotRepository interface {
	// Save stores a snapshot, replacing any existing one with the same key.
	Save(ctx context.Context, snap domain.ResultSnapshot) error
	// ListRecent returns up to limit snapshots, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ResultSnapshot, error)
}
