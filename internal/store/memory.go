package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/models"
)

// MemoryStore is an in-memory Store used when no database is configured
type MemoryStore struct {
	mu    sync.RWMutex
	saved map[string]models.SavedRecommendation
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{saved: make(map[string]models.SavedRecommendation)}
}

// Create pins a recommendation
func (s *MemoryStore) Create(ctx context.Context, input SavedInput) (*models.SavedRecommendation, error) {
	now := time.Now().UTC()
	rec := models.SavedRecommendation{
		ID:         uuid.New().String(),
		ZoneID:     input.ZoneID,
		ZoneName:   input.ZoneName,
		EventName:  input.EventName,
		TotalScore: input.TotalScore,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mu.Lock()
	s.saved[rec.ID] = rec
	s.mu.Unlock()

	return &rec, nil
}

// Get returns a saved recommendation by ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*models.SavedRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.saved[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rec, nil
}

// List returns saved recommendations, newest first
func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]models.SavedRecommendation, error) {
	s.mu.RLock()
	all := make([]models.SavedRecommendation, 0, len(s.saved))
	for _, rec := range s.saved {
		all = append(all, rec)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if offset > 0 {
		if offset >= len(all) {
			return []models.SavedRecommendation{}, nil
		}
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// UpdateNotes replaces the notes on a saved recommendation
func (s *MemoryStore) UpdateNotes(ctx context.Context, id, notes string) (*models.SavedRecommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.saved[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	rec.Notes = notes
	rec.UpdatedAt = time.Now().UTC()
	s.saved[id] = rec
	return &rec, nil
}

// Delete removes a saved recommendation
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saved[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.saved, id)
	return nil
}

// Health always reports healthy for the in-memory store
func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}
