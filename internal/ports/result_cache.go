package ports

import (
	"context"

	"setback-area-service/internal/domain"
)

// Contract for memoizing computed buildable-area results keyed by a hash of
// the immutable inputs. The engine itself is pure; caching is an external
// layer and every operation is best-effort from the caller's perspective.
type ResultCache interface {
	// Get returns the cached result for a key, reporting whether it was found.
	Get(ctx context.Context, key string) (*domain.BuildableAreaResult, bool, error)
	// Put stores a result under a key.
	Put(ctx context.Context, key string, result *domain.BuildableAreaResult) error
}
