package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/store"
)

// createSavedHandler handles POST /saved
func (h *Handler) createSavedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input store.SavedInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if input.ZoneID == "" {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "zone_id is required")
		return
	}

	// Pin the authoritative zone name when the caller omits it
	if input.ZoneName == "" {
		if zone, err := h.zones.GetZone(ctx, input.ZoneID); err == nil {
			input.ZoneName = zone.Name
		}
	}

	rec, err := h.store.Create(ctx, input)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to save recommendation", "error", err, "zone_id", input.ZoneID)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to save recommendation")
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, rec)
}

// listSavedHandler handles GET /saved
func (h *Handler) listSavedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := 50, 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 200 {
			h.writeErrorResponse(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = parsed
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			h.writeErrorResponse(w, r, http.StatusBadRequest, "offset must be non-negative")
			return
		}
		offset = parsed
	}

	saved, err := h.store.List(ctx, limit, offset)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to list saved recommendations", "error", err)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to list saved recommendations")
		return
	}

	response := map[string]interface{}{
		"data":      saved,
		"count":     len(saved),
		"timestamp": time.Now().UTC(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// getSavedHandler handles GET /saved/{id}
func (h *Handler) getSavedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rec, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeErrorResponse(w, r, http.StatusNotFound, "Saved recommendation not found")
			return
		}
		logger.WithContext(ctx).Error("Failed to get saved recommendation", "error", err, "id", id)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, rec)
}

// updateSavedNotesHandler handles PATCH /saved/{id}
func (h *Handler) updateSavedNotesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rec, err := h.store.UpdateNotes(ctx, id, body.Notes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeErrorResponse(w, r, http.StatusNotFound, "Saved recommendation not found")
			return
		}
		logger.WithContext(ctx).Error("Failed to update notes", "error", err, "id", id)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to update notes")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, rec)
}

// deleteSavedHandler handles DELETE /saved/{id}
func (h *Handler) deleteSavedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeErrorResponse(w, r, http.StatusNotFound, "Saved recommendation not found")
			return
		}
		logger.WithContext(ctx).Error("Failed to delete saved recommendation", "error", err, "id", id)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete saved recommendation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
