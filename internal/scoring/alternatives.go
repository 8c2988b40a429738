package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/placemint/placemint/internal/models"
)

// Alternative-selection differentials: a candidate only gets credited
// for a dimension when it beats the flagged zone by this much
const (
	altAudienceMargin = 5.0 // points of 40
	altDwellMargin    = 2.0 // points of 10
)

// maxAlternatives caps the suggestion list attached to a flagged zone
const maxAlternatives = 3

// SelectAlternatives picks up to max better zones for a flagged one.
// Candidates must be unflagged, strictly higher-scoring, and not the
// flagged zone itself. sorted must be the full result list already
// ordered by total score descending; candidate rank is the 1-indexed
// position in that list.
func SelectAlternatives(flagged models.ZoneScore, sorted []models.ZoneScore, max int) []models.AlternativeZone {
	var candidates []models.ZoneScore
	for _, sz := range sorted {
		if sz.Flagged() {
			continue
		}
		if sz.Zone.ID == flagged.Zone.ID {
			continue
		}
		if sz.TotalScore > flagged.TotalScore {
			candidates = append(candidates, sz)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	alternatives := make([]models.AlternativeZone, 0, len(candidates))
	for _, candidate := range candidates {
		rank := 0
		for i, sz := range sorted {
			if sz.Zone.ID == candidate.Zone.ID {
				rank = i + 1
				break
			}
		}

		alternatives = append(alternatives, models.AlternativeZone{
			ZoneID:     candidate.Zone.ID,
			ZoneName:   candidate.Zone.Name,
			Rank:       rank,
			TotalScore: candidate.TotalScore,
			Reason:     alternativeReason(candidate, flagged),
		})
	}

	return alternatives
}

// alternativeReason cites the dimension that most clearly improved over
// the flagged zone, falling back to the overall score.
func alternativeReason(candidate, flagged models.ZoneScore) string {
	var reasons []string

	if candidate.AudienceMatchScore > flagged.AudienceMatchScore+altAudienceMargin {
		percent := int(candidate.AudienceMatchScore / MaxAudienceScore * 100)
		reasons = append(reasons, fmt.Sprintf("%d%% audience match", percent))
	}
	if candidate.DwellTimeScore > flagged.DwellTimeScore+altDwellMargin {
		reasons = append(reasons, "better dwell time")
	}
	if candidate.DistanceMiles < flagged.DistanceMiles {
		reasons = append(reasons, "closer to venue")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "higher overall score")
	}

	return strings.Join(reasons, ", ")
}
