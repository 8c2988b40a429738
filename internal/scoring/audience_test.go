package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/placemint/placemint/internal/models"
)

func TestAudienceMatch(t *testing.T) {
	tests := []struct {
		name     string
		target   []string
		signals  models.AudienceSignals
		expected float64
	}{
		{
			name:   "Two of three tags match",
			target: []string{"a", "b", "c"},
			signals: models.AudienceSignals{
				Demographics: []string{"a", "b"},
			},
			expected: 40.0 * 2 / 3,
		},
		{
			name:   "Full overlap",
			target: []string{"young-professionals", "tech-enthusiasts"},
			signals: models.AudienceSignals{
				Demographics: []string{"young-professionals"},
				Interests:    []string{"tech-enthusiasts"},
			},
			expected: 40.0,
		},
		{
			name:     "Empty target audience",
			target:   nil,
			signals:  models.AudienceSignals{Demographics: []string{"students"}},
			expected: 0.0,
		},
		{
			name:     "Zone has no signals",
			target:   []string{"students"},
			signals:  models.AudienceSignals{},
			expected: 0.0,
		},
		{
			name:   "No overlap",
			target: []string{"retirees"},
			signals: models.AudienceSignals{
				Demographics: []string{"students", "young-adults"},
			},
			expected: 0.0,
		},
		{
			name:   "Tag in two categories counts once",
			target: []string{"coffee-enthusiasts", "students"},
			signals: models.AudienceSignals{
				Demographics: []string{"coffee-enthusiasts"},
				Interests:    []string{"coffee-enthusiasts"},
			},
			expected: 20.0,
		},
		{
			name:   "Duplicate target tags both count against denominator",
			target: []string{"students", "students"},
			signals: models.AudienceSignals{
				Demographics: []string{"students"},
			},
			expected: 40.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AudienceMatch(tt.target, tt.signals)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("AudienceMatch() = %.4f, want %.4f", got, tt.expected)
			}
			if got < 0 || got > MaxAudienceScore {
				t.Errorf("AudienceMatch() = %.4f out of [0, %.0f]", got, MaxAudienceScore)
			}
		})
	}
}

func TestMatchedSignals(t *testing.T) {
	signals := models.AudienceSignals{
		Demographics: []string{"young-professionals"},
		Interests:    []string{"tech-enthusiasts"},
		Behaviors:    []string{"commuters"},
	}

	matched := MatchedSignals([]string{"tech-enthusiasts", "retirees", "young-professionals"}, signals)
	want := []string{"tech-enthusiasts", "young-professionals"}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("MatchedSignals() = %v, want %v", matched, want)
	}

	if got := MatchedSignals(nil, signals); len(got) != 0 {
		t.Errorf("Expected no matches for empty target, got %v", got)
	}
}
