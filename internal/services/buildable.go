package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"setback-area-service/internal/domain"
	"setback-area-service/internal/platform/obs"
)

// Input-validation failures, reported before any geometry runs.
var (
	ErrTooFewVertices      = errors.New("site polygon needs at least 3 vertices")
	ErrInvalidRequirements = errors.New("setback requirements must be present and non-negative")
)

// BuildableAreaRequest is the single request contract of the engine.
type BuildableAreaRequest struct {
	SiteCoordinates []domain.Coordinates
	Requirements    domain.SetbackRequirements
	Frontage        domain.Frontage
	Classifications []domain.EdgeClassification
}

// ComputeBuildableArea runs the full setback pipeline: project the site into
// a local planar frame, classify edges, offset and reconstruct, degrade
// through the fallback ladder when reconstruction fails, and assemble the
// geographic result.
//
// The computation is pure and stateless per invocation; it is safe to call
// concurrently. Errors are returned only for invalid input or a degenerate
// site; every geometric failure past that point degrades to a labeled
// fallback tier instead.
func ComputeBuildableArea(ctx context.Context, req BuildableAreaRequest) (_ *domain.BuildableAreaResult, err error) {
	defer obs.Time(ctx, "buildable.Compute")(&err)

	if len(req.SiteCoordinates) < 3 {
		return nil, fmt.Errorf("compute buildable area: %w", ErrTooFewVertices)
	}
	if !req.Requirements.Valid() {
		return nil, fmt.Errorf("compute buildable area: %w", ErrInvalidRequirements)
	}

	proj, err := NewAzimuthalProjector(anchorFor(req.SiteCoordinates))
	if err != nil {
		return nil, fmt.Errorf("compute buildable area: %w", err)
	}

	site := make(domain.Ring, len(req.SiteCoordinates))
	for i, c := range req.SiteCoordinates {
		site[i] = proj.Forward(c)
	}

	siteArea := site.Area()
	if siteArea < 1e-6 {
		return nil, fmt.Errorf("compute buildable area: %w",
			domain.NewGeometryError(domain.ErrDegeneratePolygon, "site area is zero"))
	}

	details := domain.SetbackDetails{
		Requirements:    req.Requirements,
		Frontage:        req.Frontage,
		Classifications: req.Classifications,
	}

	// A frontage label that is neither a compass point nor auto/absent is a
	// caller error, reported as a labeled empty result rather than a guess.
	if !req.Frontage.Recognized() {
		log.Printf("buildable: unrecognized frontage %q, method=%s", req.Frontage, domain.MethodErrNoFrontage)
		return assemble(proj, nil, site, domain.MethodErrNoFrontage, details), nil
	}

	buildable, method := runLadder(site, req)
	return assemble(proj, buildable, site, method, details), nil
}

// runLadder walks the fallback ladder: precise edge-by-edge reconstruction,
// then a uniform inward buffer at the maximum configured setback, then the
// empty result. Each tier's outcome is logged with its method tag for audit.
func runLadder(site domain.Ring, req BuildableAreaRequest) (domain.Ring, domain.CalculationMethod) {
	setbacks, exactMethod, err := classify(site, req)
	if err == nil {
		ring, clipped, offErr := ApplySetbacks(site, setbacks.Distances)
		if offErr == nil {
			if clipped {
				log.Printf("buildable: clip retry succeeded, method=%s", domain.MethodApproximation)
				return ring, domain.MethodApproximation
			}
			return ring, exactMethod
		}
		log.Printf("buildable: edge reconstruction failed (%v), trying uniform buffer", offErr)
	} else {
		log.Printf("buildable: classification unavailable (%v), trying uniform buffer", err)
	}

	// Conservative tier: every edge offset by the largest configured
	// setback, so buildable area is never overestimated.
	uniform := make([]float64, len(site))
	for i := range uniform {
		uniform[i] = req.Requirements.Max()
	}
	ring, _, offErr := ApplySetbacks(site, uniform)
	if offErr == nil {
		log.Printf("buildable: served uniform buffer, method=%s", domain.MethodUniformFallback)
		return ring, domain.MethodUniformFallback
	}

	log.Printf("buildable: uniform buffer consumed the site (%v), method=%s", offErr, domain.MethodNoBuildableArea)
	return nil, domain.MethodNoBuildableArea
}

// classify resolves per-edge setback distances, preferring a manual map
// over a frontage direction. With neither, classification fails explicitly:
// no default direction is ever guessed.
func classify(site domain.Ring, req BuildableAreaRequest) (EdgeSetbacks, domain.CalculationMethod, error) {
	if len(req.Classifications) > 0 {
		return ClassifyManual(len(site), req.Requirements, req.Classifications), domain.MethodManualEdges, nil
	}
	if req.Frontage.Resolved() {
		s, err := ClassifyByFrontage(site, req.Requirements, req.Frontage)
		return s, domain.DirectionalMethod(req.Frontage), err
	}
	return EdgeSetbacks{}, "", domain.NewGeometryError(domain.ErrUnclassified,
		"no edge classification and no frontage direction")
}

// assemble inverts the buildable ring back to geographic coordinates and
// computes areas and coverage on the local-plane rings.
func assemble(proj Projector, buildable, site domain.Ring, method domain.CalculationMethod, details domain.SetbackDetails) *domain.BuildableAreaResult {
	siteArea := site.Area()

	buildableArea := buildable.Area()
	// Numerical guard: the buildable region is a subset of the site by
	// construction, clamp away float residue.
	buildableArea = math.Min(buildableArea, siteArea)

	ratio := 0.0
	if siteArea > 0 {
		ratio = math.Min(buildableArea/siteArea, 1)
	}

	coords := make([]domain.Coordinates, len(buildable))
	for i, p := range buildable {
		coords[i] = proj.Inverse(p)
	}

	return &domain.BuildableAreaResult{
		BuildablePolygon: coords,
		BuildableAreaM2:  buildableArea,
		SiteAreaM2:       siteArea,
		CoverageRatio:    ratio,
		Method:           method,
		Details:          details,
	}
}
