package scoring

import (
	"github.com/placemint/placemint/internal/models"
	"github.com/placemint/placemint/pkg/utils"
)

// MaxAudienceScore is the ceiling of the audience-match component
const MaxAudienceScore = 40.0

// AudienceMatch scores how well a zone's audience signals cover the
// event's target audience, on a 0-40 scale. The fraction of target tags
// found in the zone's signal set is scaled to the max. An event with no
// target audience, or a zone with no signals, earns no credit.
func AudienceMatch(targetAudience []string, signals models.AudienceSignals) float64 {
	if len(targetAudience) == 0 {
		return 0.0
	}

	zoneTags := signals.All()
	if len(zoneTags) == 0 {
		return 0.0
	}

	// Membership is a set test: a tag listed under both demographics
	// and interests counts once.
	tagSet := utils.ToSet(zoneTags)

	matches := 0
	for _, tag := range targetAudience {
		if _, ok := tagSet[tag]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(targetAudience)) * MaxAudienceScore
}

// MatchedSignals returns the target-audience tags actually present in
// the zone's signal set, in target order.
func MatchedSignals(targetAudience []string, signals models.AudienceSignals) []string {
	tagSet := utils.ToSet(signals.All())

	matched := make([]string, 0, len(targetAudience))
	for _, tag := range targetAudience {
		if _, ok := tagSet[tag]; ok {
			matched = append(matched, tag)
		}
	}
	return matched
}
