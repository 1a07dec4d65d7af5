package repositories

import (
	"context"
	"sort"
	"sync"

	"setback-area-service/internal/domain"
)

// In-memory snapshot store for tests and cacheless local runs.
type MemorySnapshotRepository struct {
	mu    sync.Mutex
	snaps map[string]domain.ResultSnapshot
}

func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{snaps: make(map[string]domain.ResultSnapshot)}
}

func (r *MemorySnapshotRepository) Save(_ context.Context, snap domain.ResultSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps[snap.Key] = snap
	return nil
}

func (r *MemorySnapshotRepository) ListRecent(_ context.Context, limit int) ([]domain.ResultSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ResultSnapshot, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
