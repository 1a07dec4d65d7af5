package services

import (
	"math"

	"setback-area-service/internal/domain"
)

// Determinant threshold below which consecutive offset lines are treated
// as parallel and the offset endpoint substitutes for the intersection.
const parallelEps = 1e-10

// Tolerance for "on the site boundary" during containment checks, meters.
const boundaryTol = 1e-7

// offsetLine is an infinite line carrying an inward-offset edge: a point on
// the line and the original edge direction. Offsets of differing magnitude
// on adjacent edges generally do not meet at the original vertices, so the
// lines are kept unbounded until reconstruction.
type offsetLine struct {
	p domain.Point // offset image of the edge start vertex
	q domain.Point // offset image of the edge end vertex
	d domain.Point // unit edge direction
}

// offsetEdges builds one inward offset line per edge. Distances[i] applies
// to the edge from ring[i] to ring[i+1]; a distance of exactly 0 leaves the
// edge unmoved (exact policy for shared-boundary rules, not an
// approximation).
func offsetEdges(ring domain.Ring, distances []float64) ([]offsetLine, error) {
	n := len(ring)
	if n < 3 || len(distances) != n {
		return nil, domain.NewGeometryError(domain.ErrDegeneratePolygon,
			"offset needs >=3 edges and one distance per edge, got %d/%d", n, len(distances))
	}

	centroid := ring.Centroid()
	lines := make([]offsetLine, n)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]

		d := b.Sub(a)
		length := math.Hypot(d.X, d.Y)
		if length < 1e-12 {
			return nil, domain.NewGeometryError(domain.ErrDegeneratePolygon,
				"zero-length edge at index %d", i)
		}
		d = d.Scale(1 / length)

		// Pick the normal pointing toward the centroid so the offset moves
		// inward regardless of vertex winding order.
		norm := domain.Point{X: -d.Y, Y: d.X}
		mid := a.Add(b).Scale(0.5)
		if norm.Dot(centroid.Sub(mid)) < 0 {
			norm = norm.Scale(-1)
		}

		shift := norm.Scale(distances[i])
		lines[i] = offsetLine{p: a.Add(shift), q: b.Add(shift), d: d}
	}
	return lines, nil
}

// reconstructPolygon rebuilds the buildable ring from consecutive offset
// lines. The vertex between edges i and i+1 is their line intersection via
// the 2x2 determinant; near-parallel pairs fall back to edge i's offset
// endpoint (documented approximation for that one case).
func reconstructPolygon(lines []offsetLine) domain.Ring {
	n := len(lines)
	out := make(domain.Ring, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		det := lines[i].d.Cross(lines[j].d)
		if math.Abs(det) < parallelEps {
			out[j] = lines[i].q
			continue
		}
		t := lines[j].p.Sub(lines[i].p).Cross(lines[j].d) / det
		out[j] = lines[i].p.Add(lines[i].d.Scale(t))
	}
	return out
}

// validateBuildable checks a reconstructed ring against the site ring: it
// must be simple, enclose positive area no larger than the site's, keep the
// site's winding orientation (a flipped sign means the offsets crossed and
// the interior collapsed), and stay inside the site boundary.
func validateBuildable(buildable, site domain.Ring) error {
	if len(buildable) < 3 {
		return domain.NewGeometryError(domain.ErrNonSimpleResult, "fewer than 3 vertices")
	}

	sa := buildable.SignedArea()
	if math.Abs(sa) < 1e-9 {
		return domain.NewGeometryError(domain.ErrNonSimpleResult, "near-zero area")
	}
	if sa*site.SignedArea() < 0 {
		return domain.NewGeometryError(domain.ErrNonSimpleResult, "orientation flipped: offsets collapsed the interior")
	}
	if !buildable.IsSimple() {
		return domain.NewGeometryError(domain.ErrNonSimpleResult, "self-intersecting result")
	}
	if math.Abs(sa) > site.Area()+1e-6 {
		return domain.NewGeometryError(domain.ErrOutsideSite, "result area exceeds site area")
	}
	for i, p := range buildable {
		if !site.Contains(p, boundaryTol) {
			return domain.NewGeometryError(domain.ErrOutsideSite, "vertex %d outside site", i)
		}
	}
	return nil
}

// directionsPreserved reports whether every reconstructed edge still runs
// in its original direction. When opposing offsets cross, the consumed
// edges reverse; the resulting ring can otherwise look valid (orientation
// flips twice for a double inversion), so this is the authoritative
// collapse test.
func directionsPreserved(buildable domain.Ring, lines []offsetLine) bool {
	n := len(buildable)
	if n != len(lines) {
		return false
	}
	for i := 0; i < n; i++ {
		seg := buildable[(i+1)%n].Sub(buildable[i])
		if seg.Dot(lines[i].d) < -1e-9 {
			return false
		}
	}
	return true
}

// ApplySetbacks offsets every edge of the site ring by its distance and
// reconstructs the buildable ring. On validation failure it retries once by
// clipping the reconstruction against the site ring; a still-invalid result
// is returned as a typed error for the fallback ladder. The boolean reports
// whether the clip retry produced the result.
//
// A collapse (offsets crossing, detected by reversed edge directions) skips
// the clip retry: clipping an inverted ring would launder it into a
// plausible but meaningless polygon.
func ApplySetbacks(site domain.Ring, distances []float64) (domain.Ring, bool, error) {
	lines, err := offsetEdges(site, distances)
	if err != nil {
		return nil, false, err
	}

	buildable := reconstructPolygon(lines)
	if !directionsPreserved(buildable, lines) {
		return nil, false, domain.NewGeometryError(domain.ErrNonSimpleResult,
			"offsets crossed: setbacks consume the site")
	}
	if err := validateBuildable(buildable, site); err == nil {
		return buildable, false, nil
	}

	clipped := buildable.ClipTo(site)
	if clipped == nil {
		return nil, false, domain.NewGeometryError(domain.ErrNonSimpleResult,
			"clip retry produced an empty ring")
	}
	if err := validateBuildable(clipped, site); err != nil {
		return nil, false, err
	}
	return clipped, true, nil
}
