package domain

import "fmt"

// GeometryErrorKind is a closed enumeration of geometric failure modes.
// Each stage of the engine reports a typed kind so failures are testable
// rather than inferred from log strings.
type GeometryErrorKind string

const (
	// ErrDegeneratePolygon: fewer than 3 vertices, near-zero area, or an
	// anchor outside valid lat/lon ranges.
	ErrDegeneratePolygon GeometryErrorKind = "degenerate_polygon"
	// ErrUnclassified: neither a manual classification nor a frontage
	// direction was supplied, so edge roles cannot be assigned.
	ErrUnclassified GeometryErrorKind = "unclassified"
	// ErrNonSimpleResult: the reconstructed polygon self-intersects or has
	// non-positive area.
	ErrNonSimpleResult GeometryErrorKind = "non_simple_result"
	// ErrOutsideSite: the reconstructed polygon escapes the site boundary.
	ErrOutsideSite GeometryErrorKind = "outside_site"
)

// GeometryError is a typed geometric failure. The offset engine and its
// callers branch on Kind to choose the next fallback tier.
type GeometryError struct {
	Kind GeometryErrorKind
	Msg  string
}

func (e *GeometryError) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func NewGeometryError(kind GeometryErrorKind, format string, args ...any) *GeometryError {
	return &GeometryError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsGeometryError reports whether err is a GeometryError of the given kind.
func IsGeometryError(err error, kind GeometryErrorKind) bool {
	ge, ok := err.(*GeometryError)
	return ok && ge.Kind == kind
}
