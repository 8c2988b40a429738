package scoring

import (
	"strings"
	"testing"
	"unicode"

	"github.com/placemint/placemint/internal/models"
)

func TestReasoningDeterministic(t *testing.T) {
	zone := models.Zone{Name: "Ballston Metro Plaza"}
	event := models.EventData{TimePeriod: models.TimePeriodEvening}

	a := Reasoning(zone, 36, 30, 0.8, 65, event)
	b := Reasoning(zone, 36, 30, 0.8, 65, event)
	if a != b {
		t.Errorf("Reasoning is not deterministic:\n%s\n%s", a, b)
	}
}

func TestReasoningContent(t *testing.T) {
	tests := []struct {
		name          string
		zone          models.Zone
		audience      float64
		distanceMiles float64
		dwellSeconds  int
		timePeriod    string
		wantContains  []string
		wantAbsent    []string
	}{
		{
			name:          "Strong zone gets all clauses",
			zone:          models.Zone{Name: "Ballston Metro Plaza"},
			audience:      36,
			distanceMiles: 0.8,
			dwellSeconds:  65,
			timePeriod:    models.TimePeriodEvening,
			wantContains: []string{
				"Ballston Metro Plaza:",
				"commuters heading home",
				"excellent audience match",
				"very close to venue (0.8 mi)",
				"high dwell time (65s)",
			},
		},
		{
			name:          "Good alignment and walkable",
			zone:          models.Zone{Name: "Quarter Market Shops"},
			audience:      26,
			distanceMiles: 2.4,
			dwellSeconds:  35,
			timePeriod:    models.TimePeriodLunch,
			wantContains: []string{
				"good audience alignment",
				"walkable distance (2.4 mi)",
				"moderate dwell time (35s)",
				"lunch shoppers",
			},
			wantAbsent: []string{"excellent audience match"},
		},
		{
			name:          "Weak zone only keeps the behavioral clause",
			zone:          models.Zone{Name: "Highway Overpass"},
			audience:      8,
			distanceMiles: 7.5,
			dwellSeconds:  12,
			timePeriod:    models.TimePeriodMorning,
			wantContains:  []string{"morning foot traffic"},
			wantAbsent:    []string{"audience", "dwell time ("},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := models.EventData{TimePeriod: tt.timePeriod}
			got := Reasoning(tt.zone, tt.audience, 20, tt.distanceMiles, tt.dwellSeconds, event)

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Reasoning missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Reasoning should not contain %q:\n%s", absent, got)
				}
			}
			if !strings.HasSuffix(got, ".") {
				t.Errorf("Reasoning should end with a period: %s", got)
			}
		})
	}
}

func TestReasoningCapitalizesFirstClause(t *testing.T) {
	zone := models.Zone{Name: "Central Cafe Row"}
	got := Reasoning(zone, 10, 20, 8.0, 10, models.EventData{TimePeriod: models.TimePeriodEvening})

	rest := strings.TrimPrefix(got, "Central Cafe Row: ")
	if rest == got || rest == "" {
		t.Fatalf("Unexpected reasoning shape: %s", got)
	}
	if !unicode.IsUpper(rune(rest[0])) {
		t.Errorf("First clause should be capitalized: %s", got)
	}
}

func TestZoneKindOf(t *testing.T) {
	tests := []struct {
		zoneName string
		expected zoneKind
	}{
		{"Ballston Metro Station", kindTransit},
		{"Rosslyn Gateway", kindTransit},
		{"Corner Coffee House", kindRestaurant},
		{"Market Common Shopping", kindRetail},
		{"Civic Lawn", kindOther},
	}

	for _, tt := range tests {
		if got := zoneKindOf(tt.zoneName); got != tt.expected {
			t.Errorf("zoneKindOf(%q) = %d, want %d", tt.zoneName, got, tt.expected)
		}
	}
}

func TestBehavioralClauseFallback(t *testing.T) {
	got := behavioralClause("midnight", "Ballston Metro Station")
	if got != "strategic timing for target audience behavior patterns" {
		t.Errorf("Unexpected fallback clause: %s", got)
	}
}
