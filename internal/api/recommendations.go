package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/models"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 30
)

// scoreZonesHandler handles POST /recommendations/score
func (h *Handler) scoreZonesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	scored, err := h.engine.ScoreZones(ctx, event)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to score zones", "error", err, "event", event.Name)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to score zones")
		return
	}

	logger.WithContext(ctx).Info("Scored zones",
		"event", event.Name,
		"zones", len(scored),
	)

	response := map[string]interface{}{
		"data":      toRecommendationResponses(scored),
		"count":     len(scored),
		"timestamp": time.Now().UTC(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// topRecommendationsHandler handles POST /recommendations/top
func (h *Handler) topRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultTopLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxTopLimit {
			h.writeErrorResponse(w, r, http.StatusBadRequest,
				"limit must be an integer between 1 and "+strconv.Itoa(maxTopLimit))
			return
		}
		limit = parsed
	}

	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	scored, err := h.engine.ScoreZones(ctx, event)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to score zones", "error", err, "event", event.Name)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to score zones")
		return
	}

	if limit < len(scored) {
		scored = scored[:limit]
	}

	response := map[string]interface{}{
		"data":      toRecommendationResponses(scored),
		"count":     len(scored),
		"timestamp": time.Now().UTC(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// decodeEvent parses and validates the request body. On failure it
// writes the error response and returns ok=false.
func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (models.EventData, bool) {
	var event models.EventData
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return event, false
	}

	event.Normalize()

	if err := event.Validate(); err != nil {
		var valErr apperrors.ValidationError
		if errors.As(err, &valErr) {
			h.writeErrorResponse(w, r, http.StatusBadRequest, valErr.Error())
		} else {
			h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid event data")
		}
		return event, false
	}
	return event, true
}
