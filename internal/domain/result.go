package domain

import "time"

// CalculationMethod labels how a buildable-area result was produced, so
// consumers and audits can tell exact computations from degraded ones.
// The set of values is closed: the constants below plus the directional
// family produced by DirectionalMethod.
type CalculationMethod string

const (
	MethodManualEdges     CalculationMethod = "manual_edge_classification"
	MethodUniformFallback CalculationMethod = "fallback_uniform_setback"
	MethodNoBuildableArea CalculationMethod = "fallback_no_buildable_area"
	MethodApproximation   CalculationMethod = "fallback_approximation"
	MethodErrNoFrontage   CalculationMethod = "error_no_frontage"
)

// DirectionalMethod returns the method tag for an automatic classification
// driven by the given frontage direction, e.g. "directional_frontage_south".
func DirectionalMethod(f Frontage) CalculationMethod {
	return CalculationMethod("directional_frontage_" + string(f))
}

// Exact reports whether the method represents a precise edge-by-edge
// reconstruction rather than a fallback tier.
func (m CalculationMethod) Exact() bool {
	if m == MethodManualEdges {
		return true
	}
	const p = "directional_frontage_"
	return len(m) > len(p) && string(m[:len(p)]) == p
}

// SetbackDetails echoes the setback inputs that produced a result.
type SetbackDetails struct {
	Requirements    SetbackRequirements
	Frontage        Frontage
	Classifications []EdgeClassification
}

// BuildableAreaResult is the complete outcome of one setback computation.
// BuildablePolygon is empty when no land remains after setbacks.
type BuildableAreaResult struct {
	BuildablePolygon []Coordinates
	BuildableAreaM2  float64
	SiteAreaM2       float64
	CoverageRatio    float64
	Method           CalculationMethod
	Details          SetbackDetails
}

// ResultSnapshot is an opaque persisted record of a computed result, keyed
// by the hash of its inputs. Downstream consumers read it back verbatim.
type ResultSnapshot struct {
	Key        string
	Method     CalculationMethod
	SiteAreaM2 float64
	Document   []byte
	CreatedAt  time.Time
}
