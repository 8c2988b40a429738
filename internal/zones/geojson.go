package zones

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	apperrors "github.com/placemint/placemint/internal/errors"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/metrics"
	"github.com/placemint/placemint/internal/models"
)

// GeoJSON wire types. Geometry coordinates are [lon, lat] per RFC 7946.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Geometry   geometry       `json:"geometry"`
	Properties zoneProperties `json:"properties"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type zoneProperties struct {
	Name               string                 `json:"name"`
	AudienceSignals    models.AudienceSignals `json:"audience_signals"`
	TimingWindows      models.TimingWindows   `json:"timing_windows"`
	DwellTimeSeconds   int                    `json:"dwell_time_seconds"`
	CostTier           string                 `json:"cost_tier"`
	FootTrafficDaily   *int                   `json:"foot_traffic_daily,omitempty"`
	VisualDistractions string                 `json:"visual_distractions,omitempty"`
	AdvertisingDensity int                    `json:"advertising_density,omitempty"`
}

// FileProvider serves zones from a GeoJSON file loaded at startup.
// Reload swaps the inventory atomically; readers never see a partial load.
type FileProvider struct {
	path string

	mu    sync.RWMutex
	zones []models.Zone
	byID  map[string]int
	raw   []byte
}

// NewFileProvider loads the inventory from path
func NewFileProvider(path string) (*FileProvider, error) {
	p := &FileProvider{path: path}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the GeoJSON file and replaces the inventory
func (p *FileProvider) Reload() error {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return &apperrors.ZoneDataError{Source: p.path, Err: err}
	}

	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return &apperrors.ZoneDataError{Source: p.path, Err: fmt.Errorf("parse geojson: %w", err)}
	}
	if fc.Type != "FeatureCollection" {
		return &apperrors.ZoneDataError{Source: p.path, Err: fmt.Errorf("expected FeatureCollection, got %q", fc.Type)}
	}

	parsed := make([]models.Zone, 0, len(fc.Features))
	byID := make(map[string]int, len(fc.Features))
	for i, f := range fc.Features {
		zone, err := zoneFromFeature(f)
		if err != nil {
			return &apperrors.ZoneDataError{Source: p.path, Err: fmt.Errorf("feature %d: %w", i, err)}
		}
		if _, dup := byID[zone.ID]; dup {
			return &apperrors.ZoneDataError{Source: p.path, Err: fmt.Errorf("duplicate zone id %q", zone.ID)}
		}
		byID[zone.ID] = len(parsed)
		parsed = append(parsed, zone)
	}

	p.mu.Lock()
	p.zones = parsed
	p.byID = byID
	p.raw = raw
	p.mu.Unlock()

	metrics.SetZonesLoaded(float64(len(parsed)))
	logger.Info("Zone inventory loaded", "file", p.path, "zones", len(parsed))
	return nil
}

func zoneFromFeature(f feature) (models.Zone, error) {
	if f.ID == "" {
		return models.Zone{}, fmt.Errorf("missing feature id")
	}
	if f.Properties.Name == "" {
		return models.Zone{}, fmt.Errorf("zone %s: missing name", f.ID)
	}
	if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
		return models.Zone{}, fmt.Errorf("zone %s: geometry must be a Point with [lon, lat]", f.ID)
	}

	return models.Zone{
		ID:   f.ID,
		Name: f.Properties.Name,
		Coordinates: models.Coordinates{
			Lon: f.Geometry.Coordinates[0],
			Lat: f.Geometry.Coordinates[1],
		},
		AudienceSignals:    f.Properties.AudienceSignals,
		TimingWindows:      f.Properties.TimingWindows,
		DwellTimeSeconds:   f.Properties.DwellTimeSeconds,
		CostTier:           f.Properties.CostTier,
		FootTrafficDaily:   f.Properties.FootTrafficDaily,
		VisualDistractions: f.Properties.VisualDistractions,
		AdvertisingDensity: f.Properties.AdvertisingDensity,
	}, nil
}

// GetAllZones returns every zone in the inventory
func (p *FileProvider) GetAllZones(ctx context.Context) ([]models.Zone, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Zone, len(p.zones))
	copy(out, p.zones)
	return out, nil
}

// GetZone returns a single zone by ID
func (p *FileProvider) GetZone(ctx context.Context, id string) (*models.Zone, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	idx, ok := p.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	zone := p.zones[idx]
	return &zone, nil
}

// QueryZones returns zones matching the filter
func (p *FileProvider) QueryZones(ctx context.Context, query models.ZoneQuery) ([]models.Zone, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	matched := make([]models.Zone, 0, len(p.zones))
	for _, zone := range p.zones {
		if query.Matches(zone) {
			matched = append(matched, zone)
		}
	}

	if query.Offset > 0 {
		if query.Offset >= len(matched) {
			return []models.Zone{}, nil
		}
		matched = matched[query.Offset:]
	}
	if query.Limit > 0 && query.Limit < len(matched) {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// Count returns the number of zones in the inventory
func (p *FileProvider) Count(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.zones), nil
}

// GeoJSON returns the raw FeatureCollection bytes as loaded from disk
func (p *FileProvider) GeoJSON(ctx context.Context) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]byte, len(p.raw))
	copy(out, p.raw)
	return out, nil
}

// Health reports whether the inventory is loaded
func (p *FileProvider) Health(ctx context.Context) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.zones) == 0 {
		return apperrors.ErrZoneDataMissing
	}
	return nil
}
