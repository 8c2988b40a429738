package scoring

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/placemint/placemint/internal/geo"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/metrics"
	"github.com/placemint/placemint/internal/models"
)

// ZoneSource supplies the zones to score. Implementations live outside
// the engine; the engine itself performs no I/O beyond this call.
type ZoneSource interface {
	GetAllZones(ctx context.Context) ([]models.Zone, error)
}

// Engine scores and ranks placement zones for an event
type Engine struct {
	zones   ZoneSource
	workers int64

	// MaxZones caps how many zones a single run scores; 0 means no cap.
	MaxZones int
	// MaxAlternatives bounds the suggestion list attached to flagged zones.
	MaxAlternatives int
}

// NewEngine creates an engine backed by the given zone source. workers
// bounds per-zone scoring parallelism; values below 1 mean sequential.
func NewEngine(zones ZoneSource, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{zones: zones, workers: int64(workers), MaxAlternatives: maxAlternatives}
}

// ScoreZones fetches the current zone list and ranks it for the event.
// The returned list is sorted by total score descending.
func (e *Engine) ScoreZones(ctx context.Context, event models.EventData) ([]models.ZoneScore, error) {
	zones, err := e.zones.GetAllZones(ctx)
	if err != nil {
		return nil, err
	}
	if e.MaxZones > 0 && len(zones) > e.MaxZones {
		logger.Warn("Zone inventory exceeds per-run cap, truncating",
			"zones", len(zones),
			"cap", e.MaxZones,
		)
		zones = zones[:e.MaxZones]
	}
	return e.ScoreAll(ctx, event, zones), nil
}

// ScoreAll scores the given zones against the event and returns them
// sorted by total score descending. Per-zone scoring is independent and
// runs in parallel up to the worker bound; ties keep input order.
func (e *Engine) ScoreAll(ctx context.Context, event models.EventData, zones []models.Zone) []models.ZoneScore {
	start := time.Now()
	event.Normalize()

	if len(zones) == 0 {
		return []models.ZoneScore{}
	}

	scored := make([]models.ZoneScore, len(zones))
	sem := semaphore.NewWeighted(e.workers)
	var wg sync.WaitGroup

	for i, zone := range zones {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled mid-fan-out: score the rest inline so the
			// result is still complete and deterministic.
			scored[i] = e.scoreZone(event, zone)
			continue
		}
		wg.Add(1)
		go func(i int, zone models.Zone) {
			defer wg.Done()
			defer sem.Release(1)
			scored[i] = e.scoreZone(event, zone)
		}(i, zone)
	}
	wg.Wait()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	// Second pass over the sorted list: flagged zones get pointed at the
	// best unflagged alternatives.
	for i := range scored {
		if scored[i].Flagged() {
			scored[i].RiskWarning.AlternativeZones = SelectAlternatives(scored[i], scored, e.MaxAlternatives)
		}
	}

	metrics.RecordScoringRun(len(zones), time.Since(start))
	logger.Debug("Scored zones",
		"event", event.Name,
		"zones", len(zones),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return scored
}

// scoreZone computes one zone's full score breakdown
func (e *Engine) scoreZone(event models.EventData, zone models.Zone) models.ZoneScore {
	audienceMatch := AudienceMatch(event.TargetAudience, zone.AudienceSignals)
	temporalAlignment := TemporalAlignment(event.Date, event.Time, event.EventType, zone.TimingWindows)
	distanceMiles := geo.Miles(event.VenueLat, event.VenueLon, zone.Coordinates.Lat, zone.Coordinates.Lon)
	distanceScore := DistanceScore(distanceMiles)
	dwellScore := DwellTimeScore(zone.DwellTimeSeconds)

	total := audienceMatch + temporalAlignment + distanceScore + dwellScore

	return models.ZoneScore{
		Zone:                   zone,
		TotalScore:             round1(total),
		AudienceMatchScore:     round1(audienceMatch),
		TemporalAlignmentScore: round1(temporalAlignment),
		DistanceScore:          round1(distanceScore),
		DwellTimeScore:         round1(dwellScore),
		DistanceMiles:          round2(distanceMiles),
		Reasoning:              Reasoning(zone, audienceMatch, temporalAlignment, distanceMiles, zone.DwellTimeSeconds, event),
		MatchedSignals:         MatchedSignals(event.TargetAudience, zone.AudienceSignals),
		DataSources:            DataSources(zone),
		RiskWarning:            DetectRisk(zone, audienceMatch, zone.DwellTimeSeconds, temporalAlignment),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
