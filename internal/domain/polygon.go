package domain

import "math"

// Ring is an ordered sequence of local-plane vertices, implicitly closed
// (the first vertex is not repeated at the end).
type Ring []Point

// SignedArea returns the shoelace area of the ring in square meters.
// Positive for counter-clockwise winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].Cross(r[j])
	}
	return sum / 2
}

// Area returns the absolute shoelace area of the ring in square meters.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Centroid returns the area centroid of the ring. For rings with near-zero
// area it falls back to the vertex mean, which is still a usable anchor for
// orientation tests.
func (r Ring) Centroid() Point {
	n := len(r)
	if n == 0 {
		return Point{}
	}

	a := r.SignedArea()
	if math.Abs(a) < 1e-12 {
		var m Point
		for _, p := range r {
			m = m.Add(p)
		}
		return m.Scale(1 / float64(n))
	}

	var c Point
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := r[i].Cross(r[j])
		c.X += (r[i].X + r[j].X) * w
		c.Y += (r[i].Y + r[j].Y) * w
	}
	return c.Scale(1 / (6 * a))
}

// IsSimple reports whether the ring has no properly crossing pair of
// non-adjacent edges. O(n^2), acceptable for lot-scale vertex counts.
func (r Ring) IsSimple() bool {
	n := len(r)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		a1 := r[i]
		a2 := r[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges (shared vertex is not a crossing).
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := r[j]
			b2 := r[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// segmentsCross reports a proper intersection of segments a1-a2 and b1-b2
// (endpoints touching or collinear overlap do not count).
func segmentsCross(a1, a2, b1, b2 Point) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Contains reports whether p lies inside the ring. Points within tol meters
// of the boundary count as inside, so vertices produced by a zero-setback
// edge (which lie exactly on the boundary) validate as contained.
func (r Ring) Contains(p Point, tol float64) bool {
	n := len(r)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		if distToSegment(p, r[i], r[(i+1)%n]) <= tol {
			return true
		}
	}

	// Ray cast toward +X.
	inside := false
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	q := a.Add(ab.Scale(t))
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ClipTo intersects the ring with the given clip ring using the
// Sutherland-Hodgman algorithm. Exact when the clip ring is convex; for
// concave clip rings the result is an over-approximation of the true
// intersection, which downstream validation re-checks.
func (r Ring) ClipTo(clip Ring) Ring {
	if len(r) == 0 || len(clip) < 3 {
		return nil
	}

	// The algorithm keeps points on the left of each clip edge, so the clip
	// ring must wind counter-clockwise.
	c := clip
	if c.SignedArea() < 0 {
		c = c.Reversed()
	}

	out := r
	n := len(c)
	for i := 0; i < n && len(out) > 0; i++ {
		a := c[i]
		b := c[(i+1)%n]
		out = clipAgainstEdge(out, a, b)
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipAgainstEdge(subject Ring, a, b Point) Ring {
	var out Ring
	edge := b.Sub(a)
	n := len(subject)
	for i := 0; i < n; i++ {
		cur := subject[i]
		prev := subject[(i+n-1)%n]

		curIn := edge.Cross(cur.Sub(a)) >= 0
		prevIn := edge.Cross(prev.Sub(a)) >= 0

		if curIn {
			if !prevIn {
				if p, ok := lineSegmentIntersect(prev, cur, a, b); ok {
					out = append(out, p)
				}
			}
			out = append(out, cur)
		} else if prevIn {
			if p, ok := lineSegmentIntersect(prev, cur, a, b); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// lineSegmentIntersect intersects segment p1-p2 with the infinite line
// through a-b.
func lineSegmentIntersect(p1, p2, a, b Point) (Point, bool) {
	d := p2.Sub(p1)
	e := b.Sub(a)
	den := d.Cross(e)
	if math.Abs(den) < 1e-12 {
		return Point{}, false
	}
	t := a.Sub(p1).Cross(e) / den
	return p1.Add(d.Scale(t)), true
}

// Reversed returns the ring with opposite winding.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}
