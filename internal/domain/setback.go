package domain

import "strings"

// EdgeRole is the zoning role of a site boundary edge. The role selects
// which configured setback distance applies to the edge.
type EdgeRole string

const (
	RoleFront EdgeRole = "front"
	RoleSide  EdgeRole = "side"
	RoleRear  EdgeRole = "rear"
)

// SetbackRequirements holds the required setback distance per edge role,
// in meters. Values must be non-negative.
type SetbackRequirements struct {
	FrontM float64
	SideM  float64
	RearM  float64
}

// ForRole returns the configured distance for an edge role. Unknown roles
// fall back to the side distance, the universal default role.
func (r SetbackRequirements) ForRole(role EdgeRole) float64 {
	switch role {
	case RoleFront:
		return r.FrontM
	case RoleRear:
		return r.RearM
	default:
		return r.SideM
	}
}

// Max returns the largest configured setback distance.
func (r SetbackRequirements) Max() float64 {
	m := r.FrontM
	if r.SideM > m {
		m = r.SideM
	}
	if r.RearM > m {
		m = r.RearM
	}
	return m
}

// Valid reports whether every configured distance is non-negative.
func (r SetbackRequirements) Valid() bool {
	return r.FrontM >= 0 && r.SideM >= 0 && r.RearM >= 0
}

// EdgeClassification is a caller-supplied role for one boundary edge.
// SetbackM, when set, overrides the role's configured distance for that
// edge only (e.g. a shared boundary with a zero setback).
type EdgeClassification struct {
	Index    int
	Role     EdgeRole
	SetbackM *float64
}

// Frontage is a compass label naming the direction the site's front edge
// faces. FrontageAuto and the empty string leave the direction unresolved.
type Frontage string

const (
	FrontageNorth     Frontage = "north"
	FrontageNortheast Frontage = "northeast"
	FrontageEast      Frontage = "east"
	FrontageSoutheast Frontage = "southeast"
	FrontageSouth     Frontage = "south"
	FrontageSouthwest Frontage = "southwest"
	FrontageWest      Frontage = "west"
	FrontageNorthwest Frontage = "northwest"
	FrontageAuto      Frontage = "auto"
	FrontageNone      Frontage = ""
)

// TargetBearing maps a frontage label to its target edge bearing in the
// engine's own atan2(dx,dy) convention (see services.EdgeBearing). This is
// a project-specific table, not geographic true bearing.
func (f Frontage) TargetBearing() (float64, bool) {
	switch Frontage(strings.ToLower(string(f))) {
	case FrontageNorth:
		return 90, true
	case FrontageNortheast:
		return 45, true
	case FrontageEast:
		return 0, true
	case FrontageSoutheast:
		return 315, true
	case FrontageSouth:
		return 270, true
	case FrontageSouthwest:
		return 225, true
	case FrontageWest:
		return 180, true
	case FrontageNorthwest:
		return 135, true
	default:
		return 0, false
	}
}

// Resolved reports whether the label names a concrete compass direction.
func (f Frontage) Resolved() bool {
	_, ok := f.TargetBearing()
	return ok
}

// Recognized reports whether the label is meaningful at all: a compass
// direction, "auto", or absent. Anything else is a caller error.
func (f Frontage) Recognized() bool {
	if f.Resolved() {
		return true
	}
	switch Frontage(strings.ToLower(string(f))) {
	case FrontageAuto, FrontageNone:
		return true
	default:
		return false
	}
}
