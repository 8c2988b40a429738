package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/models"
)

// SavedInput carries the fields a caller supplies when pinning a
// recommendation
type SavedInput struct {
	ZoneID     string  `json:"zone_id"`
	ZoneName   string  `json:"zone_name"`
	EventName  string  `json:"event_name"`
	TotalScore float64 `json:"total_score"`
	Notes      string  `json:"notes"`
}

// Store persists saved recommendations
type Store interface {
	// Create pins a recommendation and returns it with ID and timestamps
	Create(ctx context.Context, input SavedInput) (*models.SavedRecommendation, error)

	// Get returns a saved recommendation by ID, or ErrNotFound
	Get(ctx context.Context, id string) (*models.SavedRecommendation, error)

	// List returns saved recommendations, newest first
	List(ctx context.Context, limit, offset int) ([]models.SavedRecommendation, error)

	// UpdateNotes replaces the notes on a saved recommendation
	UpdateNotes(ctx context.Context, id, notes string) (*models.SavedRecommendation, error)

	// Delete removes a saved recommendation, or ErrNotFound
	Delete(ctx context.Context, id string) error

	// Health checks store availability
	Health(ctx context.Context) error
}

// Database is the subset of database operations the store needs
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Health(ctx context.Context) error
	IsConfigured() bool
}

// New creates a store backed by PostgreSQL when a database is
// configured, falling back to an in-memory store otherwise.
func New(db Database) Store {
	if db != nil && db.IsConfigured() {
		logger.Info("Using PostgreSQL saved-recommendation store")
		return NewPostgresStore(db)
	}

	logger.Info("Using in-memory saved-recommendation store")
	return NewMemoryStore()
}
