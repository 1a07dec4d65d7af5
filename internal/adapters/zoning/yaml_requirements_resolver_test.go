package zoning

import (
	"context"
	"testing"
)

const rules = `
zones:
  r1: {front_m: 6.0, side_m: 1.5, rear_m: 3.0}
  c2: {front_m: 4.0, side_m: 0.0, rear_m: 3.0}
`

func TestResolveZone(t *testing.T) {
	r, err := ParseRequirements([]byte(rules))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Resolve(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FrontM != 6 || got.SideM != 1.5 || got.RearM != 3 {
		t.Fatalf("r1 = %+v, want {6 1.5 3}", got)
	}

	// Zone codes resolve case-insensitively.
	if _, err := r.Resolve(context.Background(), "  C2 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.Resolve(context.Background(), "r9"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestParseRejectsBadRules(t *testing.T) {
	if _, err := ParseRequirements([]byte("zones: {}")); err == nil {
		t.Fatal("expected error for empty zone table")
	}

	bad := `
zones:
  r1: {front_m: -1.0, side_m: 1.0, rear_m: 1.0}
`
	if _, err := ParseRequirements([]byte(bad)); err == nil {
		t.Fatal("expected error for negative setback")
	}
}
