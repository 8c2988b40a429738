package scoring

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/placemint/placemint/internal/models"
)

type staticZoneSource struct {
	zones []models.Zone
}

func (s *staticZoneSource) GetAllZones(ctx context.Context) ([]models.Zone, error) {
	return s.zones, nil
}

func workshopEvent() models.EventData {
	return models.EventData{
		Name:           "Tech Workshop",
		Date:           "2026-02-20", // a Friday
		Time:           "18:00",
		VenueLat:       38.8816,
		VenueLon:       -77.0910,
		TargetAudience: []string{"young-professionals", "tech-enthusiasts"},
		EventType:      "workshop",
		TimePeriod:     models.TimePeriodEvening,
	}
}

func testZones() []models.Zone {
	traffic := 5000
	return []models.Zone{
		{
			ID:   "perfect",
			Name: "Clarendon Metro Plaza",
			// about one mile north of the venue
			Coordinates: models.Coordinates{Lat: 38.8960, Lon: -77.0910},
			AudienceSignals: models.AudienceSignals{
				Demographics: []string{"young-professionals"},
				Interests:    []string{"tech-enthusiasts"},
			},
			TimingWindows: models.TimingWindows{
				Optimal: []models.TimingWindow{
					{Days: []string{"Friday"}, Times: []string{"17:00-19:00"}, Reasoning: "evening commuters"},
				},
			},
			DwellTimeSeconds: 75,
			CostTier:         models.CostTierMedium,
			FootTrafficDaily: &traffic,
		},
		{
			ID:          "hotspot",
			Name:        "Interchange Billboard",
			Coordinates: models.Coordinates{Lat: 38.95, Lon: -77.20},
			AudienceSignals: models.AudienceSignals{
				Demographics: []string{"drivers"},
			},
			TimingWindows: models.TimingWindows{
				Optimal: []models.TimingWindow{
					{Days: []string{"Monday"}, Times: []string{"07:00-09:00"}},
				},
			},
			DwellTimeSeconds: 8,
			CostTier:         models.CostTierPremium,
			FootTrafficDaily: &traffic,
		},
		{
			ID:          "middling",
			Name:        "Quarter Market Shops",
			Coordinates: models.Coordinates{Lat: 38.8600, Lon: -77.0600},
			AudienceSignals: models.AudienceSignals{
				Demographics: []string{"young-professionals", "families"},
			},
			TimingWindows:    models.TimingWindows{},
			DwellTimeSeconds: 40,
			CostTier:         models.CostTierLow,
		},
	}
}

func TestScoreAllRangeAndSortInvariants(t *testing.T) {
	engine := NewEngine(&staticZoneSource{}, 4)
	scored := engine.ScoreAll(context.Background(), workshopEvent(), testZones())

	if len(scored) != 3 {
		t.Fatalf("Expected 3 scored zones, got %d", len(scored))
	}

	for _, sz := range scored {
		if sz.AudienceMatchScore < 0 || sz.AudienceMatchScore > MaxAudienceScore {
			t.Errorf("%s: audience score %.1f out of range", sz.Zone.ID, sz.AudienceMatchScore)
		}
		if sz.TemporalAlignmentScore < 0 || sz.TemporalAlignmentScore > MaxTemporalScore {
			t.Errorf("%s: temporal score %.1f out of range", sz.Zone.ID, sz.TemporalAlignmentScore)
		}
		if sz.DistanceScore < 0 || sz.DistanceScore > MaxDistanceScore {
			t.Errorf("%s: distance score %.1f out of range", sz.Zone.ID, sz.DistanceScore)
		}
		if sz.DwellTimeScore < 0 || sz.DwellTimeScore > MaxDwellScore {
			t.Errorf("%s: dwell score %.1f out of range", sz.Zone.ID, sz.DwellTimeScore)
		}
		if sz.TotalScore < 0 || sz.TotalScore > 100 {
			t.Errorf("%s: total score %.1f out of range", sz.Zone.ID, sz.TotalScore)
		}
		sum := sz.AudienceMatchScore + sz.TemporalAlignmentScore + sz.DistanceScore + sz.DwellTimeScore
		if math.Abs(sum-sz.TotalScore) > 0.1 {
			t.Errorf("%s: total %.1f does not equal component sum %.1f", sz.Zone.ID, sz.TotalScore, sum)
		}
	}

	for i := 1; i < len(scored); i++ {
		if scored[i].TotalScore > scored[i-1].TotalScore {
			t.Errorf("Result not sorted descending at index %d: %.1f > %.1f",
				i, scored[i].TotalScore, scored[i-1].TotalScore)
		}
	}
}

func TestScoreAllEndToEnd(t *testing.T) {
	engine := NewEngine(&staticZoneSource{}, 4)
	scored := engine.ScoreAll(context.Background(), workshopEvent(), testZones())

	top := scored[0]
	if top.Zone.ID != "perfect" {
		t.Fatalf("Expected the aligned zone on top, got %s", top.Zone.ID)
	}
	// Full audience overlap + matching Friday-evening window + ~1 mile +
	// 75s dwell: 40 + 30 + 20 + 10
	if top.TotalScore < 95 || top.TotalScore > 100 {
		t.Errorf("Expected a total in the high 90s, got %.1f", top.TotalScore)
	}
	if top.AudienceMatchScore != 40.0 {
		t.Errorf("Expected full audience match, got %.1f", top.AudienceMatchScore)
	}
	if top.TemporalAlignmentScore != 30.0 {
		t.Errorf("Expected perfect temporal alignment, got %.1f", top.TemporalAlignmentScore)
	}
	if top.RiskWarning != nil {
		t.Errorf("Top zone should not be flagged: %+v", top.RiskWarning)
	}
	if len(top.MatchedSignals) != 2 {
		t.Errorf("Expected both target tags matched, got %v", top.MatchedSignals)
	}
}

func TestScoreAllFlagsHotspotWithAlternatives(t *testing.T) {
	engine := NewEngine(&staticZoneSource{}, 4)
	scored := engine.ScoreAll(context.Background(), workshopEvent(), testZones())

	var hotspot *models.ZoneScore
	for i := range scored {
		if scored[i].Zone.ID == "hotspot" {
			hotspot = &scored[i]
		}
	}
	if hotspot == nil {
		t.Fatal("Hotspot zone missing from results")
	}
	if !hotspot.Flagged() {
		t.Fatal("Expected the billboard zone to be flagged")
	}
	if len(hotspot.RiskWarning.AlternativeZones) == 0 {
		t.Fatal("Expected alternatives attached after the sort pass")
	}
	for _, alt := range hotspot.RiskWarning.AlternativeZones {
		if alt.ZoneID == "hotspot" {
			t.Error("A zone must not suggest itself as an alternative")
		}
		if alt.TotalScore <= hotspot.TotalScore {
			t.Errorf("Alternative %s does not outscore the flagged zone", alt.ZoneID)
		}
		if alt.Rank < 1 || alt.Rank > len(scored) {
			t.Errorf("Alternative rank %d out of range", alt.Rank)
		}
	}
}

func TestScoreAllDeterminism(t *testing.T) {
	engine := NewEngine(&staticZoneSource{}, 8)
	event := workshopEvent()
	zones := testZones()

	first := engine.ScoreAll(context.Background(), event, zones)
	second := engine.ScoreAll(context.Background(), event, zones)

	if !reflect.DeepEqual(first, second) {
		t.Error("Two runs over identical inputs must produce identical outputs")
	}
}

func TestScoreAllEmptyZones(t *testing.T) {
	engine := NewEngine(&staticZoneSource{}, 4)
	scored := engine.ScoreAll(context.Background(), workshopEvent(), nil)
	if len(scored) != 0 {
		t.Errorf("Expected empty result for no zones, got %d", len(scored))
	}
}

func TestScoreZonesUsesSource(t *testing.T) {
	engine := NewEngine(&staticZoneSource{zones: testZones()}, 4)
	scored, err := engine.ScoreZones(context.Background(), workshopEvent())
	if err != nil {
		t.Fatalf("ScoreZones returned error: %v", err)
	}
	if len(scored) != 3 {
		t.Errorf("Expected 3 scored zones, got %d", len(scored))
	}
}

func TestScoreAllStableTieOrder(t *testing.T) {
	zones := []models.Zone{
		{ID: "first", Name: "First", Coordinates: models.Coordinates{Lat: 38.8816, Lon: -77.0910}, DwellTimeSeconds: 60},
		{ID: "second", Name: "Second", Coordinates: models.Coordinates{Lat: 38.8816, Lon: -77.0910}, DwellTimeSeconds: 60},
	}
	engine := NewEngine(&staticZoneSource{}, 4)

	scored := engine.ScoreAll(context.Background(), workshopEvent(), zones)
	if scored[0].Zone.ID != "first" || scored[1].Zone.ID != "second" {
		t.Errorf("Tied zones must keep input order, got [%s %s]", scored[0].Zone.ID, scored[1].Zone.ID)
	}
}

func TestScoreAllCompletesQuickly(t *testing.T) {
	zones := make([]models.Zone, 0, 50)
	for i := 0; i < 50; i++ {
		z := testZones()[i%3]
		z.ID = z.ID + "-" + time.Now().Format("150405") + string(rune('a'+i%26))
		zones = append(zones, z)
	}

	engine := NewEngine(&staticZoneSource{}, 4)
	start := time.Now()
	scored := engine.ScoreAll(context.Background(), workshopEvent(), zones)
	elapsed := time.Since(start)

	if len(scored) != 50 {
		t.Fatalf("Expected 50 scored zones, got %d", len(scored))
	}
	if elapsed > 5*time.Second {
		t.Errorf("Scoring 50 zones took %s, expected well under 5s", elapsed)
	}
}
