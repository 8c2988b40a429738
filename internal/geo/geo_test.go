package geo

import (
	"math"
	"testing"
)

func TestMiles(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		expected         float64
		toleranceMiles   float64
	}{
		{
			name: "Same point",
			lat1: 38.8816, lon1: -77.0910,
			lat2: 38.8816, lon2: -77.0910,
			expected:       0.0,
			toleranceMiles: 0.001,
		},
		{
			name: "Courthouse to Ballston",
			lat1: 38.8910, lon1: -77.0860,
			lat2: 38.8821, lon2: -77.1118,
			expected:       1.53,
			toleranceMiles: 0.05,
		},
		{
			name: "Arlington to downtown DC",
			lat1: 38.8816, lon1: -77.0910,
			lat2: 38.8977, lon2: -77.0365,
			expected:       3.13,
			toleranceMiles: 0.1,
		},
		{
			name: "One degree of latitude",
			lat1: 38.0, lon1: -77.0,
			lat2: 39.0, lon2: -77.0,
			expected:       69.09,
			toleranceMiles: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Miles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.expected) > tt.toleranceMiles {
				t.Errorf("Miles() = %.4f, want %.4f ± %.3f", got, tt.expected, tt.toleranceMiles)
			}
		})
	}
}

func TestMilesSymmetry(t *testing.T) {
	ab := Miles(38.8910, -77.0860, 38.8821, -77.1118)
	ba := Miles(38.8821, -77.1118, 38.8910, -77.0860)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("Distance not symmetric: %.9f vs %.9f", ab, ba)
	}
}
