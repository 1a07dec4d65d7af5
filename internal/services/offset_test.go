package services

import (
	"math"
	"testing"

	"setback-area-service/internal/domain"
)

func uniformDistances(n int, d float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestApplySetbacksUniformSquare(t *testing.T) {
	site := domain.Ring{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}} // clockwise on purpose

	got, clipped, err := ApplySetbacks(site, uniformDistances(4, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clipped {
		t.Fatal("expected direct reconstruction, not clip retry")
	}

	if a := got.Area(); math.Abs(a-36) > 1e-9 {
		t.Fatalf("area = %v, want 36", a)
	}
	// Every vertex sits on the (2,2)-(8,8) square.
	for i, p := range got {
		if math.Abs(p.X-2) > 1e-9 && math.Abs(p.X-8) > 1e-9 {
			t.Fatalf("vertex %d x = %v, want 2 or 8", i, p.X)
		}
		if math.Abs(p.Y-2) > 1e-9 && math.Abs(p.Y-8) > 1e-9 {
			t.Fatalf("vertex %d y = %v, want 2 or 8", i, p.Y)
		}
	}
}

func TestApplySetbacksDirectionalRectangle(t *testing.T) {
	// Rectangle 20x10 with frontage "south": buildable must be
	// (20 - 1.5*2) x (10 - 4 - 3) = 17 x 3 = 51.
	site := domain.Ring{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10}}
	req := domain.SetbackRequirements{FrontM: 4, SideM: 1.5, RearM: 3}

	setbacks, err := ClassifyByFrontage(site, req, domain.FrontageSouth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, clipped, err := ApplySetbacks(site, setbacks.Distances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clipped {
		t.Fatal("expected direct reconstruction, not clip retry")
	}
	if a := got.Area(); math.Abs(a-51) > 1e-9 {
		t.Fatalf("area = %v, want 51", a)
	}
}

func TestApplySetbacksZeroSetbackSharesEdge(t *testing.T) {
	site := domain.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	// Edge 0 runs along y=0; a zero setback must leave it exactly in place.
	distances := []float64{0, 1.5, 1.5}

	got, _, err := ApplySetbacks(site, distances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	onBoundary := 0
	for _, p := range got {
		if math.Abs(p.Y) < 1e-9 {
			onBoundary++
		}
	}
	if onBoundary != 2 {
		t.Fatalf("vertices on the zero-setback edge = %d, want 2 (ring=%v)", onBoundary, got)
	}
}

func TestApplySetbacksMonotoneShrink(t *testing.T) {
	site := domain.Ring{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 25, Y: 12}, {X: 10, Y: 18}, {X: -2, Y: 10}}

	prev := math.Inf(1)
	for _, s := range []float64{0, 1, 2, 3} {
		got, _, err := ApplySetbacks(site, uniformDistances(len(site), s))
		if err != nil {
			t.Fatalf("setback %v: unexpected error: %v", s, err)
		}
		a := got.Area()
		if a > prev+1e-9 {
			t.Fatalf("area grew from %v to %v at setback %v", prev, a, s)
		}
		if a > site.Area()+1e-9 {
			t.Fatalf("buildable area %v exceeds site area %v", a, site.Area())
		}
		prev = a
	}
}

func TestApplySetbacksZeroEverywhereKeepsSite(t *testing.T) {
	site := domain.Ring{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10}}

	got, clipped, err := ApplySetbacks(site, uniformDistances(4, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clipped {
		t.Fatal("expected direct reconstruction")
	}
	if len(got) != len(site) {
		t.Fatalf("vertex count = %d, want %d", len(got), len(site))
	}
	for i := range site {
		if math.Abs(got[i].X-site[i].X) > 1e-9 || math.Abs(got[i].Y-site[i].Y) > 1e-9 {
			t.Fatalf("vertex %d moved: %+v -> %+v", i, site[i], got[i])
		}
	}
}

func TestApplySetbacksDetectsCollapse(t *testing.T) {
	site := domain.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	// 6 m from each side of a 10 m square: offsets cross and the naive
	// reconstruction is an inverted square that must not be accepted.
	_, _, err := ApplySetbacks(site, uniformDistances(4, 6))
	if err == nil {
		t.Fatal("expected error for setbacks that consume the site")
	}
	if !domain.IsGeometryError(err, domain.ErrNonSimpleResult) {
		t.Fatalf("error kind = %v, want non_simple_result", err)
	}
}

func TestReconstructParallelFallback(t *testing.T) {
	// Degenerate "ring" with two collinear consecutive edges: their offset
	// lines are parallel, so reconstruction must substitute the offset
	// endpoint instead of intersecting.
	site := domain.Ring{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	got, _, err := ApplySetbacks(site, uniformDistances(5, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a := got.Area(); math.Abs(a-64) > 1e-6 {
		t.Fatalf("area = %v, want 64", a)
	}
}
