package domain

import (
	"math"
	"testing"
)

func TestRingAreaAndCentroid(t *testing.T) {
	// 10x10 square, counter-clockwise.
	ccw := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if a := ccw.SignedArea(); math.Abs(a-100) > 1e-9 {
		t.Fatalf("ccw signed area = %v, want 100", a)
	}

	cw := ccw.Reversed()
	if a := cw.SignedArea(); math.Abs(a+100) > 1e-9 {
		t.Fatalf("cw signed area = %v, want -100", a)
	}
	if a := cw.Area(); math.Abs(a-100) > 1e-9 {
		t.Fatalf("cw area = %v, want 100", a)
	}

	c := ccw.Centroid()
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Fatalf("centroid = %+v, want (5,5)", c)
	}
}

func TestRingIsSimple(t *testing.T) {
	square := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !square.IsSimple() {
		t.Fatal("square should be simple")
	}

	bowtie := Ring{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
	if bowtie.IsSimple() {
		t.Fatal("bowtie should not be simple")
	}
}

func TestRingContains(t *testing.T) {
	square := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if !square.Contains(Point{5, 5}, 1e-7) {
		t.Fatal("interior point should be contained")
	}
	if square.Contains(Point{15, 5}, 1e-7) {
		t.Fatal("exterior point should not be contained")
	}
	// Boundary points count as inside within tolerance: a zero-setback edge
	// puts buildable vertices exactly on the site boundary.
	if !square.Contains(Point{5, 0}, 1e-7) {
		t.Fatal("boundary point should be contained")
	}
	if !square.Contains(Point{10, 10}, 1e-7) {
		t.Fatal("corner point should be contained")
	}
}

func TestRingClipTo(t *testing.T) {
	site := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	// Subject sticks out 5 m to the right of the site.
	subject := Ring{{5, 2}, {15, 2}, {15, 8}, {5, 8}}

	clipped := subject.ClipTo(site)
	if clipped == nil {
		t.Fatal("clip returned empty ring")
	}
	if a := clipped.Area(); math.Abs(a-30) > 1e-9 {
		t.Fatalf("clipped area = %v, want 30", a)
	}
	for i, p := range clipped {
		if !site.Contains(p, 1e-7) {
			t.Fatalf("clipped vertex %d (%+v) outside site", i, p)
		}
	}

	// Fully disjoint subject clips away to nothing.
	outside := Ring{{20, 20}, {30, 20}, {30, 30}, {20, 30}}
	if got := outside.ClipTo(site); got != nil {
		t.Fatalf("disjoint clip = %v, want nil", got)
	}
}
