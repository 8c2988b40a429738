package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/placemint/placemint/internal/scoring"
	"github.com/placemint/placemint/internal/store"
	"github.com/placemint/placemint/internal/zones"
)

// Handler handles HTTP requests for the API
type Handler struct {
	engine    *scoring.Engine
	zones     zones.Provider
	store     store.Store
	version   string
	buildTime string
	gitCommit string
	startTime time.Time
}

// NewHandler creates a new API handler
func NewHandler(engine *scoring.Engine, provider zones.Provider, st store.Store, version, buildTime, gitCommit string) *Handler {
	return &Handler{
		engine:    engine,
		zones:     provider,
		store:     st,
		version:   version,
		buildTime: buildTime,
		gitCommit: gitCommit,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {
		// Health check endpoints
		r.Get("/health", h.healthHandler)
		r.Get("/health/ready", h.readinessHandler)
		r.Get("/health/live", h.livenessHandler)

		// Recommendation endpoints
		r.Post("/recommendations/score", h.scoreZonesHandler)
		r.Post("/recommendations/top", h.topRecommendationsHandler)

		// Zone inventory endpoints
		r.Get("/zones", h.getZonesHandler)
		r.Get("/zones/geojson", h.getZonesGeoJSONHandler)
		r.Get("/zones/{id}", h.getZoneHandler)

		// Saved recommendation endpoints
		r.Post("/saved", h.createSavedHandler)
		r.Get("/saved", h.listSavedHandler)
		r.Get("/saved/{id}", h.getSavedHandler)
		r.Patch("/saved/{id}", h.updateSavedNotesHandler)
		r.Delete("/saved/{id}", h.deleteSavedHandler)

		// System info
		r.Get("/version", h.versionHandler)
	})

	// Root health check
	r.Get("/health", h.healthHandler)
}

// healthHandler provides basic health check
func (h *Handler) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   h.version,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// readinessHandler checks if the application is ready to serve traffic
func (h *Handler) readinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]string{
		"zones": "ok",
		"store": "ok",
	}

	statusCode := http.StatusOK

	if err := h.zones.Health(ctx); err != nil {
		checks["zones"] = "error: " + err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	if err := h.store.Health(ctx); err != nil {
		checks["store"] = "error: " + err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	status := "ready"
	if statusCode != http.StatusOK {
		status = "not_ready"
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	}
	if count, err := h.zones.Count(ctx); err == nil {
		response["zones_loaded"] = count
	}

	h.writeJSONResponse(w, statusCode, response)
}

// livenessHandler checks if the application is alive
func (h *Handler) livenessHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startTime).String(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// versionHandler returns version information
func (h *Handler) versionHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"version":    h.version,
		"build_time": h.buildTime,
		"git_commit": h.gitCommit,
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// writeJSONResponse writes a JSON response
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes a standardized error response
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	response := ErrorResponse{
		Error:     http.StatusText(statusCode),
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: r.Header.Get("X-Request-ID"),
	}

	h.writeJSONResponse(w, statusCode, response)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}
