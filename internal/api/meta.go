package api

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/courtsideai/courtside/internal/api/respond"
)

//go:embed openapi.json
var openAPISpec []byte

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"name":    "Courtside Stats API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs/",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// OpenAPISpec serves the embedded OpenAPI document consumed by the swagger
// UI at /docs/.
func (h *Handler) OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPISpec)
}
