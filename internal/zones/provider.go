package zones

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/placemint/placemint/config"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/models"
)

// Provider serves the zone inventory
type Provider interface {
	// GetAllZones returns every zone in the inventory
	GetAllZones(ctx context.Context) ([]models.Zone, error)

	// GetZone returns a single zone by ID, or ErrNotFound
	GetZone(ctx context.Context, id string) (*models.Zone, error)

	// QueryZones returns zones matching the filter
	QueryZones(ctx context.Context, query models.ZoneQuery) ([]models.Zone, error)

	// Count returns the number of zones in the inventory
	Count(ctx context.Context) (int, error)

	// GeoJSON returns the inventory as a GeoJSON FeatureCollection,
	// suitable for map rendering
	GeoJSON(ctx context.Context) ([]byte, error)

	// Health checks provider availability
	Health(ctx context.Context) error
}

// Database is the subset of database operations providers need
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Health(ctx context.Context) error
	IsConfigured() bool
}

// New creates a zone provider backed by PostgreSQL when a database is
// configured, falling back to the GeoJSON file inventory otherwise.
func New(db Database, cfg config.ZonesConfig) (Provider, error) {
	if db != nil && db.IsConfigured() {
		logger.Info("Using PostgreSQL zone provider")
		return NewPostgresProvider(db), nil
	}

	logger.Info("Using file-backed zone provider", "file", cfg.DataFile)
	return NewFileProvider(cfg.DataFile)
}
