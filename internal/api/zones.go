package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/logger"
)

// getZonesHandler handles GET /zones
func (h *Handler) getZonesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := h.zones.GetAllZones(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load zones", "error", err)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to load zones")
		return
	}

	response := map[string]interface{}{
		"data":      all,
		"count":     len(all),
		"timestamp": time.Now().UTC(),
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	h.writeJSONResponse(w, http.StatusOK, response)
}

// getZoneHandler handles GET /zones/{id}
func (h *Handler) getZoneHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	zoneID := chi.URLParam(r, "id")

	if zoneID == "" {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "zone ID is required")
		return
	}

	zone, err := h.zones.GetZone(ctx, zoneID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeErrorResponse(w, r, http.StatusNotFound, "Zone not found")
			return
		}
		logger.WithContext(ctx).Error("Failed to get zone", "error", err, "zone_id", zoneID)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	h.writeJSONResponse(w, http.StatusOK, zone)
}

// getZonesGeoJSONHandler handles GET /zones/geojson
func (h *Handler) getZonesGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := h.zones.GeoJSON(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load zone geojson", "error", err)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to load zones")
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
