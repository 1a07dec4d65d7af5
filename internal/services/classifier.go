package services

import (
	"math"

	"setback-area-service/internal/domain"
)

// EdgeBearing returns the bearing of the directed edge vector d in degrees,
// normalized to [0, 360). The convention is atan2(dx, dy): the engine's
// own angular frame shared with Frontage.TargetBearing, not geographic
// compass bearing.
func EdgeBearing(d domain.Point) float64 {
	b := math.Atan2(d.X, d.Y) * 180 / math.Pi
	if b < 0 {
		b += 360
	}
	return b
}

// angularDiff returns the circular distance between two bearings in
// degrees, in [0, 180].
func angularDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// EdgeSetbacks holds the resolved per-edge roles and distances for one
// classification pass. Index i covers the edge from vertex i to i+1.
type EdgeSetbacks struct {
	Roles     []domain.EdgeRole
	Distances []float64
}

// ClassifyManual resolves edge roles from a caller-supplied per-index map.
// Edges without an entry default to side, a fixed documented default.
// An entry's SetbackM, when present, overrides the role's configured
// distance for that edge only. Out-of-range indices are ignored.
func ClassifyManual(n int, req domain.SetbackRequirements, classifications []domain.EdgeClassification) EdgeSetbacks {
	out := EdgeSetbacks{
		Roles:     make([]domain.EdgeRole, n),
		Distances: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.Roles[i] = domain.RoleSide
		out.Distances[i] = req.SideM
	}

	for _, c := range classifications {
		if c.Index < 0 || c.Index >= n {
			continue
		}
		role := c.Role
		switch role {
		case domain.RoleFront, domain.RoleSide, domain.RoleRear:
		default:
			role = domain.RoleSide
		}
		out.Roles[c.Index] = role
		out.Distances[c.Index] = req.ForRole(role)
		if c.SetbackM != nil && *c.SetbackM >= 0 {
			out.Distances[c.Index] = *c.SetbackM
		}
	}
	return out
}

// ClassifyByFrontage assigns roles from a single frontage direction.
//
// The front edge is the one whose bearing is circularly closest to the
// frontage's target bearing (ties break on the lower index, keeping the
// assignment deterministic and idempotent). Rear edges are those whose
// circular bearing difference from the front edge falls in [135, 225];
// at exactly 4 edges the opposite index is taken as the single rear edge,
// the tie-break case of the same rule. Everything else is side.
func ClassifyByFrontage(ring domain.Ring, req domain.SetbackRequirements, frontage domain.Frontage) (EdgeSetbacks, error) {
	target, ok := frontage.TargetBearing()
	if !ok {
		return EdgeSetbacks{}, domain.NewGeometryError(domain.ErrUnclassified,
			"frontage %q does not resolve to a direction", frontage)
	}

	n := len(ring)
	bearings := make([]float64, n)
	for i := 0; i < n; i++ {
		bearings[i] = EdgeBearing(ring[(i+1)%n].Sub(ring[i]))
	}

	front := 0
	best := math.MaxFloat64
	for i, b := range bearings {
		if d := angularDiff(b, target); d < best {
			best = d
			front = i
		}
	}

	out := EdgeSetbacks{
		Roles:     make([]domain.EdgeRole, n),
		Distances: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		role := domain.RoleSide
		switch {
		case i == front:
			role = domain.RoleFront
		case n == 4:
			if i == (front+2)%4 {
				role = domain.RoleRear
			}
		default:
			d := angularDiff(bearings[i], bearings[front])
			// [135,225] circular band folds to [135,180] after angularDiff.
			if d >= 135 {
				role = domain.RoleRear
			}
		}
		out.Roles[i] = role
		out.Distances[i] = req.ForRole(role)
	}
	return out, nil
}
