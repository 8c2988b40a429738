package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/models"
)

const savedColumns = `id, zone_id, zone_name, event_name, total_score, notes, created_at, updated_at`

// PostgresStore persists saved recommendations in PostgreSQL
type PostgresStore struct {
	db Database
}

// NewPostgresStore creates a PostgreSQL-backed store
func NewPostgresStore(db Database) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the saved_recommendations table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS saved_recommendations (
			id UUID PRIMARY KEY,
			zone_id TEXT NOT NULL,
			zone_name TEXT NOT NULL,
			event_name TEXT NOT NULL,
			total_score DOUBLE PRECISION NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_saved_recommendations_created_at
			ON saved_recommendations(created_at DESC);
	`
	if err := s.db.Exec(ctx, schema); err != nil {
		return &apperrors.DatabaseError{Operation: "ensure_saved_schema", Err: err}
	}
	return nil
}

// Create pins a recommendation
func (s *PostgresStore) Create(ctx context.Context, input SavedInput) (*models.SavedRecommendation, error) {
	query := `
		INSERT INTO saved_recommendations (id, zone_id, zone_name, event_name, total_score, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + savedColumns

	row := s.db.QueryRow(ctx, query,
		uuid.New().String(), input.ZoneID, input.ZoneName,
		input.EventName, input.TotalScore, input.Notes,
	)
	if row == nil {
		return nil, &apperrors.DatabaseError{Operation: "create_saved", Err: errors.New("database not configured")}
	}

	rec, err := scanSaved(row)
	if err != nil {
		return nil, &apperrors.DatabaseError{Operation: "create_saved", Err: err}
	}
	return rec, nil
}

// Get returns a saved recommendation by ID
func (s *PostgresStore) Get(ctx context.Context, id string) (*models.SavedRecommendation, error) {
	query := `SELECT ` + savedColumns + ` FROM saved_recommendations WHERE id = $1`

	row := s.db.QueryRow(ctx, query, id)
	if row == nil {
		return nil, &apperrors.DatabaseError{Operation: "get_saved", Err: errors.New("database not configured")}
	}

	rec, err := scanSaved(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.DatabaseError{Operation: "get_saved", Err: err}
	}
	return rec, nil
}

// List returns saved recommendations, newest first
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]models.SavedRecommendation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + savedColumns + `
		FROM saved_recommendations
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, &apperrors.DatabaseError{Operation: "list_saved", Err: err}
	}
	defer rows.Close()

	out := []models.SavedRecommendation{}
	for rows.Next() {
		rec, err := scanSaved(rows)
		if err != nil {
			return nil, &apperrors.DatabaseError{Operation: "list_saved", Err: err}
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.DatabaseError{Operation: "list_saved", Err: err}
	}
	return out, nil
}

// UpdateNotes replaces the notes on a saved recommendation
func (s *PostgresStore) UpdateNotes(ctx context.Context, id, notes string) (*models.SavedRecommendation, error) {
	query := `
		UPDATE saved_recommendations
		SET notes = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + savedColumns

	row := s.db.QueryRow(ctx, query, id, notes)
	if row == nil {
		return nil, &apperrors.DatabaseError{Operation: "update_saved", Err: errors.New("database not configured")}
	}

	rec, err := scanSaved(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.DatabaseError{Operation: "update_saved", Err: err}
	}
	return rec, nil
}

// Delete removes a saved recommendation
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM saved_recommendations WHERE id = $1 RETURNING id`

	row := s.db.QueryRow(ctx, query, id)
	if row == nil {
		return &apperrors.DatabaseError{Operation: "delete_saved", Err: errors.New("database not configured")}
	}

	var deleted string
	if err := row.Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return &apperrors.DatabaseError{Operation: "delete_saved", Err: err}
	}
	return nil
}

// Health checks database connectivity
func (s *PostgresStore) Health(ctx context.Context) error {
	return s.db.Health(ctx)
}

func scanSaved(row pgx.Row) (*models.SavedRecommendation, error) {
	var rec models.SavedRecommendation
	err := row.Scan(
		&rec.ID, &rec.ZoneID, &rec.ZoneName, &rec.EventName,
		&rec.TotalScore, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
