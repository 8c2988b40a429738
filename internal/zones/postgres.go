package zones

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/models"
)

const zoneColumns = `id, name, lat, lon, audience_signals, timing_windows,
	dwell_time_seconds, cost_tier, foot_traffic_daily, visual_distractions, advertising_density`

// PostgresProvider serves zones from the zones table. Audience signals
// and timing windows live in JSONB columns.
type PostgresProvider struct {
	db Database
}

// NewPostgresProvider creates a PostgreSQL-backed zone provider
func NewPostgresProvider(db Database) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// GetAllZones returns every zone in the inventory
func (p *PostgresProvider) GetAllZones(ctx context.Context) ([]models.Zone, error) {
	query := fmt.Sprintf("SELECT %s FROM zones ORDER BY id", zoneColumns)

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, &apperrors.DatabaseError{Operation: "get_all_zones", Err: err}
	}
	defer rows.Close()

	return scanZones(rows)
}

// GetZone returns a single zone by ID
func (p *PostgresProvider) GetZone(ctx context.Context, id string) (*models.Zone, error) {
	query := fmt.Sprintf("SELECT %s FROM zones WHERE id = $1", zoneColumns)

	row := p.db.QueryRow(ctx, query, id)
	if row == nil {
		return nil, &apperrors.DatabaseError{Operation: "get_zone", Err: errors.New("database not configured")}
	}

	zone, err := scanZone(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.DatabaseError{Operation: "get_zone", Err: err}
	}
	return zone, nil
}

// QueryZones returns zones matching the filter
func (p *PostgresProvider) QueryZones(ctx context.Context, q models.ZoneQuery) ([]models.Zone, error) {
	var conditions []string
	var args []any
	argNum := 1

	if len(q.IDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d)", argNum))
		args = append(args, q.IDs)
		argNum++
	}
	if len(q.CostTiers) > 0 {
		conditions = append(conditions, fmt.Sprintf("cost_tier = ANY($%d)", argNum))
		args = append(args, q.CostTiers)
		argNum++
	}
	if q.MinDwellSeconds > 0 {
		conditions = append(conditions, fmt.Sprintf("dwell_time_seconds >= $%d", argNum))
		args = append(args, q.MinDwellSeconds)
		argNum++
	}
	if q.MinFootTraffic > 0 {
		conditions = append(conditions, fmt.Sprintf("COALESCE(foot_traffic_daily, 0) >= $%d", argNum))
		args = append(args, q.MinFootTraffic)
		argNum++
	}

	query := fmt.Sprintf("SELECT %s FROM zones", zoneColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, q.Limit)
		argNum++
	}
	if q.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, q.Offset)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &apperrors.DatabaseError{Operation: "query_zones", Err: err}
	}
	defer rows.Close()

	return scanZones(rows)
}

// Count returns the number of zones in the inventory
func (p *PostgresProvider) Count(ctx context.Context) (int, error) {
	row := p.db.QueryRow(ctx, "SELECT COUNT(*) FROM zones")
	if row == nil {
		return 0, &apperrors.DatabaseError{Operation: "count_zones", Err: errors.New("database not configured")}
	}

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, &apperrors.DatabaseError{Operation: "count_zones", Err: err}
	}
	return count, nil
}

// GeoJSON builds a FeatureCollection from the inventory
func (p *PostgresProvider) GeoJSON(ctx context.Context) ([]byte, error) {
	all, err := p.GetAllZones(ctx)
	if err != nil {
		return nil, err
	}

	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(all))}
	for _, z := range all {
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			ID:   z.ID,
			Geometry: geometry{
				Type:        "Point",
				Coordinates: []float64{z.Coordinates.Lon, z.Coordinates.Lat},
			},
			Properties: zoneProperties{
				Name:               z.Name,
				AudienceSignals:    z.AudienceSignals,
				TimingWindows:      z.TimingWindows,
				DwellTimeSeconds:   z.DwellTimeSeconds,
				CostTier:           z.CostTier,
				FootTrafficDaily:   z.FootTrafficDaily,
				VisualDistractions: z.VisualDistractions,
				AdvertisingDensity: z.AdvertisingDensity,
			},
		})
	}
	return json.Marshal(fc)
}

// Health checks database connectivity
func (p *PostgresProvider) Health(ctx context.Context) error {
	return p.db.Health(ctx)
}

// EnsureSchema creates the zones table if it does not exist
func (p *PostgresProvider) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS zones (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			audience_signals JSONB NOT NULL DEFAULT '{}',
			timing_windows JSONB NOT NULL DEFAULT '{}',
			dwell_time_seconds INTEGER NOT NULL DEFAULT 0,
			cost_tier TEXT NOT NULL DEFAULT 'free',
			foot_traffic_daily INTEGER,
			visual_distractions TEXT NOT NULL DEFAULT '',
			advertising_density INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_zones_cost_tier ON zones(cost_tier);
	`
	if err := p.db.Exec(ctx, schema); err != nil {
		return &apperrors.DatabaseError{Operation: "ensure_zones_schema", Err: err}
	}
	return nil
}

// Seed upserts zones into the table, typically from the file inventory
func (p *PostgresProvider) Seed(ctx context.Context, inventory []models.Zone) error {
	query := `
		INSERT INTO zones (` + zoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			audience_signals = EXCLUDED.audience_signals,
			timing_windows = EXCLUDED.timing_windows,
			dwell_time_seconds = EXCLUDED.dwell_time_seconds,
			cost_tier = EXCLUDED.cost_tier,
			foot_traffic_daily = EXCLUDED.foot_traffic_daily,
			visual_distractions = EXCLUDED.visual_distractions,
			advertising_density = EXCLUDED.advertising_density,
			updated_at = NOW()
	`

	for _, z := range inventory {
		signals, err := json.Marshal(z.AudienceSignals)
		if err != nil {
			return fmt.Errorf("marshal audience signals for %s: %w", z.ID, err)
		}
		windows, err := json.Marshal(z.TimingWindows)
		if err != nil {
			return fmt.Errorf("marshal timing windows for %s: %w", z.ID, err)
		}

		err = p.db.Exec(ctx, query,
			z.ID, z.Name, z.Coordinates.Lat, z.Coordinates.Lon,
			signals, windows, z.DwellTimeSeconds, z.CostTier,
			z.FootTrafficDaily, z.VisualDistractions, z.AdvertisingDensity,
		)
		if err != nil {
			return &apperrors.DatabaseError{Operation: "seed_zones", Err: err}
		}
	}
	return nil
}

func scanZones(rows pgx.Rows) ([]models.Zone, error) {
	var out []models.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Zone{}
	}
	return out, nil
}

func scanZone(row pgx.Row) (*models.Zone, error) {
	var (
		zone       models.Zone
		signalsRaw []byte
		windowsRaw []byte
	)

	err := row.Scan(
		&zone.ID, &zone.Name, &zone.Coordinates.Lat, &zone.Coordinates.Lon,
		&signalsRaw, &windowsRaw, &zone.DwellTimeSeconds, &zone.CostTier,
		&zone.FootTrafficDaily, &zone.VisualDistractions, &zone.AdvertisingDensity,
	)
	if err != nil {
		return nil, err
	}

	if len(signalsRaw) > 0 {
		if err := json.Unmarshal(signalsRaw, &zone.AudienceSignals); err != nil {
			return nil, fmt.Errorf("zone %s: parse audience signals: %w", zone.ID, err)
		}
	}
	if len(windowsRaw) > 0 {
		if err := json.Unmarshal(windowsRaw, &zone.TimingWindows); err != nil {
			return nil, fmt.Errorf("zone %s: parse timing windows: %w", zone.ID, err)
		}
	}
	return &zone, nil
}
