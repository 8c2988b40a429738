package scoring

import (
	"testing"

	"github.com/placemint/placemint/internal/models"
)

func thursdayEveningWindow() models.TimingWindows {
	return models.TimingWindows{
		Optimal: []models.TimingWindow{
			{
				Days:      []string{"Wednesday", "Thursday"},
				Times:     []string{"17:00-19:00"},
				Reasoning: "evening commuters",
			},
		},
	}
}

func TestTemporalAlignment(t *testing.T) {
	// 2026-02-19 is a Thursday, 2026-02-20 a Friday
	tests := []struct {
		name     string
		date     string
		time     string
		windows  models.TimingWindows
		expected float64
	}{
		{
			name:     "Day and time match",
			date:     "2026-02-19",
			time:     "18:00",
			windows:  thursdayEveningWindow(),
			expected: 30.0,
		},
		{
			name:     "Day matches, time outside window",
			date:     "2026-02-19",
			time:     "12:00",
			windows:  thursdayEveningWindow(),
			expected: 20.0,
		},
		{
			name:     "Time matches, wrong day",
			date:     "2026-02-20",
			time:     "18:00",
			windows:  thursdayEveningWindow(),
			expected: 15.0,
		},
		{
			name:     "Neither matches",
			date:     "2026-02-20",
			time:     "09:00",
			windows:  thursdayEveningWindow(),
			expected: 5.0,
		},
		{
			name:     "No optimal windows is neutral",
			date:     "2026-02-19",
			time:     "18:00",
			windows:  models.TimingWindows{},
			expected: NeutralTemporalScore,
		},
		{
			name:     "Unparseable date is neutral",
			date:     "next thursday",
			time:     "18:00",
			windows:  thursdayEveningWindow(),
			expected: NeutralTemporalScore,
		},
		{
			name:     "Unparseable time is neutral",
			date:     "2026-02-19",
			time:     "evening",
			windows:  thursdayEveningWindow(),
			expected: NeutralTemporalScore,
		},
		{
			name: "End hour is exclusive",
			date: "2026-02-19",
			time: "19:00",
			windows: models.TimingWindows{
				Optimal: []models.TimingWindow{
					{Days: []string{"Thursday"}, Times: []string{"17:00-19:00"}},
				},
			},
			expected: 20.0, // day matches, 19:00 is outside [17,19)
		},
		{
			name: "Malformed time range is skipped, not fatal",
			date: "2026-02-19",
			time: "18:00",
			windows: models.TimingWindows{
				Optimal: []models.TimingWindow{
					{Days: []string{"Thursday"}, Times: []string{"5pm to 7pm", "17:00-19:00"}},
				},
			},
			expected: 30.0,
		},
		{
			name: "Best window wins",
			date: "2026-02-19",
			time: "18:00",
			windows: models.TimingWindows{
				Optimal: []models.TimingWindow{
					{Days: []string{"Monday"}, Times: []string{"08:00-10:00"}},
					{Days: []string{"Thursday"}, Times: []string{"17:00-19:00"}},
					{Days: []string{"Saturday"}, Times: []string{"10:00-14:00"}},
				},
			},
			expected: 30.0,
		},
		{
			name:     "RFC3339 datetime accepted",
			date:     "2026-02-19T00:00:00Z",
			time:     "18:00",
			windows:  thursdayEveningWindow(),
			expected: 30.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TemporalAlignment(tt.date, tt.time, "workshop", tt.windows)
			if got != tt.expected {
				t.Errorf("TemporalAlignment() = %.1f, want %.1f", got, tt.expected)
			}
			if got < 0 || got > MaxTemporalScore {
				t.Errorf("TemporalAlignment() = %.1f out of [0, %.0f]", got, MaxTemporalScore)
			}
		})
	}
}

func TestTemporalAlignmentIgnoresEventType(t *testing.T) {
	windows := thursdayEveningWindow()
	a := TemporalAlignment("2026-02-19", "18:00", "workshop", windows)
	b := TemporalAlignment("2026-02-19", "18:00", "concert", windows)
	if a != b {
		t.Errorf("event_type must not affect the score: %.1f vs %.1f", a, b)
	}
}
