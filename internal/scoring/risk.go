package scoring

import (
	"fmt"
	"strings"

	"github.com/placemint/placemint/internal/metrics"
	"github.com/placemint/placemint/internal/models"
)

// Risk rule thresholds
const (
	riskTrafficThreshold     = 1000 // daily foot traffic considered "high"
	riskDwellThreshold       = 20   // seconds; below this people rush through
	riskAudienceThreshold    = 24.0 // 60% of the audience component
	riskTemporalThreshold    = 15.0 // 50% of the temporal component
	riskAdDensityThreshold   = 10   // competing ads before visual noise triggers
)

// DetectRisk decides whether a zone is a deceptive hotspot: a location
// that looks attractive (high traffic) but performs poorly (wrong
// audience, people rushing through, bad timing, visual clutter). It
// returns nil when no rule triggers, which is the common case. Each
// rule is evaluated independently of other zones' scores.
func DetectRisk(zone models.Zone, audienceMatchScore float64, dwellSeconds int, temporalScore float64) *models.RiskWarning {
	footTraffic := zone.DailyFootTraffic()

	highTraffic := footTraffic > riskTrafficThreshold
	lowDwell := dwellSeconds < riskDwellThreshold
	poorAudience := audienceMatchScore < riskAudienceThreshold
	timingMisaligned := temporalScore < riskTemporalThreshold

	audiencePercent := int(audienceMatchScore / MaxAudienceScore * 100)

	var categories []models.WarningCategory

	if lowDwell {
		categories = append(categories, models.WarningCategory{
			CategoryType: models.CategoryLowDwellTime,
			DisplayName:  "Low Dwell Time",
			Icon:         "⏱️",
			Description:  fmt.Sprintf("People spend only %ds here - not enough time to notice ads", dwellSeconds),
			Severity:     models.SeverityHigh,
			MetricValue:  floatPtr(float64(dwellSeconds)),
		})
	}

	if poorAudience {
		categories = append(categories, models.WarningCategory{
			CategoryType: models.CategoryPoorAudienceMatch,
			DisplayName:  "Poor Audience Match",
			Icon:         "🎯",
			Description:  fmt.Sprintf("Only %d%% audience match - your target audience doesn't frequent this zone", audiencePercent),
			Severity:     models.SeverityHigh,
			MetricValue:  floatPtr(float64(audiencePercent)),
		})
	}

	if timingMisaligned {
		timingPercent := int(temporalScore / MaxTemporalScore * 100)
		categories = append(categories, models.WarningCategory{
			CategoryType: models.CategoryTimingMisalignment,
			DisplayName:  "Timing Misalignment",
			Icon:         "📅",
			Description:  fmt.Sprintf("Only %d%% timing alignment - people aren't there when you need them", timingPercent),
			Severity:     models.SeverityMedium,
			MetricValue:  floatPtr(float64(timingPercent)),
		})
	}

	if zone.VisualDistractions == "high" || zone.AdvertisingDensity > riskAdDensityThreshold {
		var metric *float64
		if zone.AdvertisingDensity > 0 {
			metric = floatPtr(float64(zone.AdvertisingDensity))
		}
		categories = append(categories, models.WarningCategory{
			CategoryType: models.CategoryVisualNoise,
			DisplayName:  "Visual Noise Saturation",
			Icon:         "👁️",
			Description:  fmt.Sprintf("High visual clutter - your ad will compete with %d others", zone.AdvertisingDensity),
			Severity:     models.SeverityMedium,
			MetricValue:  metric,
		})
	}

	if len(categories) == 0 {
		return nil
	}

	for _, cat := range categories {
		metrics.RecordRiskFlagged(cat.CategoryType)
	}

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.DisplayName
	}

	var reason strings.Builder
	fmt.Fprintf(&reason, "Multiple risk factors detected: %s. ", strings.Join(names, ", "))
	if highTraffic {
		fmt.Fprintf(&reason, "High traffic (%d/day) but ", footTraffic)
	}
	if lowDwell {
		fmt.Fprintf(&reason, "people rush through (%ds). ", dwellSeconds)
	}
	if poorAudience {
		fmt.Fprintf(&reason, "Poor audience match (%d%%). ", audiencePercent)
	}
	reason.WriteString("Posters likely to be overlooked.")

	severity := models.SeverityMedium
	if len(categories) >= 2 {
		severity = models.SeverityHigh
	}

	return &models.RiskWarning{
		IsFlagged:   true,
		WarningType: models.WarningTypeDeceptiveHotspot,
		Reason:      strings.TrimSpace(reason.String()),
		Severity:    severity,
		Details: models.RiskDetails{
			FootTrafficDaily:       footTraffic,
			DwellTimeSeconds:       dwellSeconds,
			AudienceMatchScore:     audienceMatchScore,
			AudienceMatchPercent:   audiencePercent,
			TemporalAlignmentScore: temporalScore,
			ThresholdTraffic:       riskTrafficThreshold,
			ThresholdDwellTime:     riskDwellThreshold,
			ThresholdAudienceMatch: riskAudienceThreshold,
			ThresholdTemporal:      riskTemporalThreshold,
		},
		WarningCategories: categories,
	}
}

func floatPtr(v float64) *float64 { return &v }
