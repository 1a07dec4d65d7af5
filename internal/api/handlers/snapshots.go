package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"setback-area-service/internal/api/dto"
	"setback-area-service/internal/ports"
)

type SnapshotHandler struct {
	Repo ports.SnapshotRepository
}

// List handles GET /snapshots: recent persisted results, newest first.
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusNotFound, "snapshot persistence is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	snaps, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list snapshots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSnapshotResponse{Snapshots: make([]dto.SnapshotResponse, 0, len(snaps))}
	for _, s := range snaps {
		res.Snapshots = append(res.Snapshots, dto.SnapshotResponse{
			Key:               s.Key,
			CalculationMethod: string(s.Method),
			SiteAreaM2:        s.SiteAreaM2,
			Result:            json.RawMessage(s.Document),
			CreatedAt:         s.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
