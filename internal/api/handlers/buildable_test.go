package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"setback-area-service/internal/adapters/repositories"
	"setback-area-service/internal/api/dto"
	"setback-area-service/internal/domain"
)

// A 20x10 m lot near Phoenix, counter-clockwise (lon/lat, ~1.1e-5 deg per
// meter at this latitude).
const rectangleBody = `{
	"site_coordinates": [
		{"lon": -112.070000, "lat": 33.450000},
		{"lon": -112.069785, "lat": 33.450000},
		{"lon": -112.069785, "lat": 33.450090},
		{"lon": -112.070000, "lat": 33.450090}
	],
	"requirements": {"front_setback_m": 4, "side_setback_m": 1.5, "rear_setback_m": 3},
	"frontage": "south"
}`

func TestBuildableComputeDirectional(t *testing.T) {
	repo := repositories.NewMemorySnapshotRepository()
	h := &BuildableHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/buildable-area", strings.NewReader(rectangleBody))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}

	var res dto.BuildableAreaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.CalculationMethod != "directional_frontage_south" {
		t.Fatalf("calculation_method = %q, want directional_frontage_south", res.CalculationMethod)
	}
	if res.BuildableAreaM2 <= 0 || res.BuildableAreaM2 > res.SiteAreaM2 {
		t.Fatalf("buildable area %v outside (0, site=%v]", res.BuildableAreaM2, res.SiteAreaM2)
	}
	if res.CoverageRatio < 0 || res.CoverageRatio > 1 {
		t.Fatalf("coverage ratio %v outside [0,1]", res.CoverageRatio)
	}
	if math.Abs(res.SetbackDetails.FrontSetbackM-4) > 1e-9 {
		t.Fatalf("echoed front setback = %v, want 4", res.SetbackDetails.FrontSetbackM)
	}

	// The computation is persisted as a snapshot.
	snaps, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("snapshot count = %d, want 1", len(snaps))
	}
	if snaps[0].Method != domain.DirectionalMethod(domain.FrontageSouth) {
		t.Fatalf("snapshot method = %q", snaps[0].Method)
	}
}

func TestBuildableComputeTooFewVertices(t *testing.T) {
	h := &BuildableHandler{}

	body := `{
		"site_coordinates": [
			{"lon": -112.07, "lat": 33.45},
			{"lon": -112.069, "lat": 33.45}
		],
		"requirements": {"front_setback_m": 1, "side_setback_m": 1, "rear_setback_m": 1}
	}`

	req := httptest.NewRequest(http.MethodPost, "/buildable-area", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var res struct {
		Error                string `json:"error"`
		BuildableCoordinates []any  `json:"buildable_coordinates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Error == "" {
		t.Fatal("expected an error message")
	}
	if res.BuildableCoordinates == nil || len(res.BuildableCoordinates) != 0 {
		t.Fatalf("buildable_coordinates = %v, want []", res.BuildableCoordinates)
	}
}

func TestBuildableComputeMissingRequirements(t *testing.T) {
	h := &BuildableHandler{}

	body := `{
		"site_coordinates": [
			{"lon": -112.07, "lat": 33.45},
			{"lon": -112.069, "lat": 33.45},
			{"lon": -112.069, "lat": 33.451}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/buildable-area", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBuildableComputeRejectsUnknownFields(t *testing.T) {
	h := &BuildableHandler{}

	req := httptest.NewRequest(http.MethodPost, "/buildable-area", strings.NewReader(`{"bogus": 1}`))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBuildableComputeMethodNotAllowed(t *testing.T) {
	h := &BuildableHandler{}

	req := httptest.NewRequest(http.MethodGet, "/buildable-area", nil)
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
