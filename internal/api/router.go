package api

import (
	"net/http"

	"setback-area-service/internal/api/handlers"
	"setback-area-service/internal/platform/metrics"
	"setback-area-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Cache, repo and resolver may be nil; the handlers degrade accordingly.
func NewRouter(cache ports.ResultCache, repo ports.SnapshotRepository, resolver ports.RequirementsResolver) http.Handler {
	mux := http.NewServeMux()

	buildableHandler := &handlers.BuildableHandler{
		Cache:    cache,
		Repo:     repo,
		Resolver: resolver,
	}
	snapshotHandler := &handlers.SnapshotHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/buildable-area", buildableHandler.Compute)
	mux.HandleFunc("/snapshots", snapshotHandler.List)
	mux.Handle("/metrics", metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
