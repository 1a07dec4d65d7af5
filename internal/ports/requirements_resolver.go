package ports

import (
	"context"

	"setback-area-service/internal/domain"
)

// Contract for resolving a jurisdiction/zone code into setback requirements.
// The engine never performs this lookup itself; the resolver is its one
// upstream collaborator.
type RequirementsResolver interface {
	// Resolve returns the requirements for a zone code.
	Resolve(ctx context.Context, zone string) (domain.SetbackRequirements, error)
}
