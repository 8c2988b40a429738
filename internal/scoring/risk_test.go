package scoring

import (
	"strings"
	"testing"

	"github.com/placemint/placemint/internal/models"
)

func intPtr(v int) *int { return &v }

func TestDetectRiskDeceptiveHotspot(t *testing.T) {
	zone := models.Zone{
		ID:               "zone-busy-corner",
		Name:             "Busy Corner",
		FootTrafficDaily: intPtr(5000),
		DwellTimeSeconds: 10,
	}

	warning := DetectRisk(zone, 10.0, 10, 20.0)
	if warning == nil {
		t.Fatal("Expected a risk warning")
	}
	if !warning.IsFlagged {
		t.Error("Expected is_flagged true")
	}
	if warning.WarningType != models.WarningTypeDeceptiveHotspot {
		t.Errorf("Expected warning type deceptive_hotspot, got %s", warning.WarningType)
	}
	if warning.Severity != models.SeverityHigh {
		t.Errorf("Expected severity high for 2 categories, got %s", warning.Severity)
	}

	categories := make([]string, len(warning.WarningCategories))
	for i, cat := range warning.WarningCategories {
		categories[i] = cat.CategoryType
	}
	if len(categories) != 2 || categories[0] != models.CategoryLowDwellTime || categories[1] != models.CategoryPoorAudienceMatch {
		t.Errorf("Expected [low_dwell_time poor_audience_match], got %v", categories)
	}

	if !strings.Contains(warning.Reason, "High traffic (5000/day)") {
		t.Errorf("Reason should mention high traffic: %s", warning.Reason)
	}
	if !strings.Contains(warning.Reason, "rush through (10s)") {
		t.Errorf("Reason should mention dwell time: %s", warning.Reason)
	}
	if warning.Details.FootTrafficDaily != 5000 || warning.Details.ThresholdDwellTime != 20 {
		t.Errorf("Unexpected details snapshot: %+v", warning.Details)
	}
}

func TestDetectRiskNoFalsePositive(t *testing.T) {
	zone := models.Zone{
		ID:               "zone-good",
		Name:             "Good Zone",
		DwellTimeSeconds: 60,
	}

	if warning := DetectRisk(zone, 35.0, 60, 25.0); warning != nil {
		t.Errorf("Expected no warning for a healthy zone, got %+v", warning)
	}
}

func TestDetectRiskSingleCategoryIsMedium(t *testing.T) {
	zone := models.Zone{ID: "z", Name: "Z", DwellTimeSeconds: 45}

	warning := DetectRisk(zone, 30.0, 45, 5.0)
	if warning == nil {
		t.Fatal("Expected a warning for timing misalignment")
	}
	if warning.Severity != models.SeverityMedium {
		t.Errorf("Expected severity medium for 1 category, got %s", warning.Severity)
	}
	if len(warning.WarningCategories) != 1 || warning.WarningCategories[0].CategoryType != models.CategoryTimingMisalignment {
		t.Errorf("Expected only timing_misalignment, got %+v", warning.WarningCategories)
	}
}

func TestDetectRiskBoundaries(t *testing.T) {
	zone := models.Zone{ID: "z", Name: "Z", DwellTimeSeconds: 20}

	// All values exactly at threshold: nothing triggers
	if warning := DetectRisk(zone, 24.0, 20, 15.0); warning != nil {
		t.Errorf("Thresholds are strict; expected no warning at boundaries, got %+v", warning)
	}
}

func TestDetectRiskVisualNoise(t *testing.T) {
	tests := []struct {
		name    string
		zone    models.Zone
		flagged bool
	}{
		{
			name:    "High visual distractions",
			zone:    models.Zone{ID: "a", Name: "A", DwellTimeSeconds: 60, VisualDistractions: "high"},
			flagged: true,
		},
		{
			name:    "Crowded ad space",
			zone:    models.Zone{ID: "b", Name: "B", DwellTimeSeconds: 60, AdvertisingDensity: 14},
			flagged: true,
		},
		{
			name:    "Density at threshold does not trigger",
			zone:    models.Zone{ID: "c", Name: "C", DwellTimeSeconds: 60, AdvertisingDensity: 10},
			flagged: false,
		},
		{
			name:    "Medium distractions do not trigger",
			zone:    models.Zone{ID: "d", Name: "D", DwellTimeSeconds: 60, VisualDistractions: "medium"},
			flagged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := DetectRisk(tt.zone, 30.0, 60, 25.0)
			if tt.flagged && (warning == nil || warning.WarningCategories[0].CategoryType != models.CategoryVisualNoise) {
				t.Errorf("Expected visual_noise warning, got %+v", warning)
			}
			if !tt.flagged && warning != nil {
				t.Errorf("Expected no warning, got %+v", warning)
			}
		})
	}
}

func TestDetectRiskVisualNoiseMetricValue(t *testing.T) {
	zone := models.Zone{ID: "a", Name: "A", DwellTimeSeconds: 60, VisualDistractions: "high"}
	warning := DetectRisk(zone, 30.0, 60, 25.0)
	if warning == nil {
		t.Fatal("Expected a warning")
	}
	// Density unknown: metric stays unset rather than reporting zero
	if warning.WarningCategories[0].MetricValue != nil {
		t.Errorf("Expected nil metric value, got %v", *warning.WarningCategories[0].MetricValue)
	}
}
