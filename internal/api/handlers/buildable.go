package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"setback-area-service/internal/api/dto"
	"setback-area-service/internal/domain"
	"setback-area-service/internal/platform/metrics"
	"setback-area-service/internal/ports"
	"setback-area-service/internal/services"
)

type BuildableHandler struct {
	Cache    ports.ResultCache          // optional memoization layer
	Repo     ports.SnapshotRepository   // optional snapshot persistence
	Resolver ports.RequirementsResolver // optional zone lookup
}

// Compute handles POST /buildable-area: validate the request, consult the
// memoization cache, run the setback engine, persist a snapshot, respond.
func (h *BuildableHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	metrics.RequestsTotal.Inc()
	defer func() {
		metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}()

	var req dto.BuildableAreaRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		metrics.ValidationErrorsTotal.Inc()
		writeValidationError(w, r, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		metrics.ValidationErrorsTotal.Inc()
		writeValidationError(w, r, "body must contain only one JSON object")
		return
	}

	if len(req.SiteCoordinates) < 3 {
		metrics.ValidationErrorsTotal.Inc()
		writeValidationError(w, r, "site_coordinates must contain at least 3 points")
		return
	}

	requirements, err := h.resolveRequirements(r, req)
	if err != nil {
		metrics.ValidationErrorsTotal.Inc()
		writeValidationError(w, r, err.Error())
		return
	}

	svcReq := services.BuildableAreaRequest{
		SiteCoordinates: make([]domain.Coordinates, 0, len(req.SiteCoordinates)),
		Requirements:    requirements,
		Frontage:        domain.Frontage(strings.ToLower(strings.TrimSpace(req.Frontage))),
	}
	for _, c := range req.SiteCoordinates {
		svcReq.SiteCoordinates = append(svcReq.SiteCoordinates, domain.Coordinates{Lon: c.Lon, Lat: c.Lat})
	}
	for _, c := range req.EdgeClassifications {
		svcReq.Classifications = append(svcReq.Classifications, domain.EdgeClassification{
			Index:    c.Index,
			Role:     domain.EdgeRole(strings.ToLower(strings.TrimSpace(c.Role))),
			SetbackM: c.SetbackM,
		})
	}

	key := services.CacheKey(svcReq)
	if h.Cache != nil {
		if cached, ok, cacheErr := h.Cache.Get(r.Context(), key); cacheErr == nil && ok {
			metrics.CacheHitsTotal.Inc()
			metrics.CalculationMethodTotal.WithLabelValues(string(cached.Method)).Inc()
			writeJSON(w, r, http.StatusOK, toResponse(cached))
			return
		} else if cacheErr != nil {
			log.Printf("result cache get failed: %v", cacheErr)
		}
		metrics.CacheMissesTotal.Inc()
	}

	result, err := services.ComputeBuildableArea(r.Context(), svcReq)
	if err != nil {
		if errors.Is(err, services.ErrTooFewVertices) || errors.Is(err, services.ErrInvalidRequirements) {
			metrics.ValidationErrorsTotal.Inc()
			writeValidationError(w, r, err.Error())
			return
		}
		var ge *domain.GeometryError
		if errors.As(err, &ge) {
			metrics.ValidationErrorsTotal.Inc()
			writeValidationError(w, r, ge.Error())
			return
		}
		log.Printf("compute buildable area failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.CalculationMethodTotal.WithLabelValues(string(result.Method)).Inc()

	if h.Cache != nil {
		if cacheErr := h.Cache.Put(r.Context(), key, result); cacheErr != nil {
			log.Printf("result cache put failed: %v", cacheErr)
		}
	}

	res := toResponse(result)

	if h.Repo != nil {
		doc, marshalErr := json.Marshal(res)
		if marshalErr == nil {
			snap := domain.ResultSnapshot{
				Key:        key,
				Method:     result.Method,
				SiteAreaM2: result.SiteAreaM2,
				Document:   doc,
				CreatedAt:  time.Now().UTC(),
			}
			if saveErr := h.Repo.Save(r.Context(), snap); saveErr != nil {
				log.Printf("snapshot save failed: %v", saveErr)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveRequirements picks explicit requirements when present, otherwise
// asks the zone resolver. Explicit requirements need all three fields.
func (h *BuildableHandler) resolveRequirements(r *http.Request, req dto.BuildableAreaRequest) (domain.SetbackRequirements, error) {
	if req.Requirements != nil {
		q := req.Requirements
		if q.FrontSetbackM == nil || q.SideSetbackM == nil || q.RearSetbackM == nil {
			return domain.SetbackRequirements{}, errors.New("requirements must include front_setback_m, side_setback_m and rear_setback_m")
		}
		out := domain.SetbackRequirements{FrontM: *q.FrontSetbackM, SideM: *q.SideSetbackM, RearM: *q.RearSetbackM}
		if !out.Valid() {
			return domain.SetbackRequirements{}, errors.New("setback distances must be non-negative")
		}
		return out, nil
	}

	zone := strings.TrimSpace(req.Zone)
	if zone == "" {
		return domain.SetbackRequirements{}, errors.New("requirements or zone is required")
	}
	if h.Resolver == nil {
		return domain.SetbackRequirements{}, errors.New("zone lookup is not configured")
	}
	out, err := h.Resolver.Resolve(r.Context(), zone)
	if err != nil {
		return domain.SetbackRequirements{}, err
	}
	return out, nil
}

func toResponse(res *domain.BuildableAreaResult) dto.BuildableAreaResponse {
	coords := make([]dto.Coordinate, 0, len(res.BuildablePolygon))
	for _, c := range res.BuildablePolygon {
		coords = append(coords, dto.Coordinate{Lon: c.Lon, Lat: c.Lat})
	}

	classifications := make([]dto.EdgeClassification, 0, len(res.Details.Classifications))
	for _, c := range res.Details.Classifications {
		classifications = append(classifications, dto.EdgeClassification{
			Index:    c.Index,
			Role:     string(c.Role),
			SetbackM: c.SetbackM,
		})
	}

	return dto.BuildableAreaResponse{
		BuildableCoordinates: coords,
		BuildableAreaM2:      res.BuildableAreaM2,
		SiteAreaM2:           res.SiteAreaM2,
		CoverageRatio:        res.CoverageRatio,
		CalculationMethod:    string(res.Method),
		SetbackDetails: dto.SetbackDetails{
			FrontSetbackM:       res.Details.Requirements.FrontM,
			SideSetbackM:        res.Details.Requirements.SideM,
			RearSetbackM:        res.Details.Requirements.RearM,
			Frontage:            string(res.Details.Frontage),
			EdgeClassifications: classifications,
		},
	}
}
