package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/placemint/placemint/internal/models"
)

// TimingWindowResponse is a display-friendly timing window, e.g.
// days "Mon-Fri", hours "5-7pm"
type TimingWindowResponse struct {
	Days      string `json:"days"`
	Hours     string `json:"hours"`
	Reasoning string `json:"reasoning"`
}

// ZoneRecommendationResponse is the flattened recommendation shape
// consumed by map and list clients
type ZoneRecommendationResponse struct {
	ZoneID     string  `json:"zone_id"`
	ZoneName   string  `json:"zone_name"`
	TotalScore float64 `json:"total_score"`

	// Scoring breakdown
	AudienceMatchScore float64 `json:"audience_match_score"`
	TemporalScore      float64 `json:"temporal_score"`
	DistanceScore      float64 `json:"distance_score"`
	DwellTimeScore     float64 `json:"dwell_time_score"`

	// Zone details
	DistanceMiles    float64                `json:"distance_miles"`
	TimingWindows    []TimingWindowResponse `json:"timing_windows"`
	DwellTimeSeconds int                    `json:"dwell_time_seconds"`
	CostTier         string                 `json:"cost_tier"`

	// Transparency
	Reasoning      string              `json:"reasoning"`
	MatchedSignals []string            `json:"matched_signals"`
	DataSources    []models.DataSource `json:"data_sources"`

	// Geographic data
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	RiskWarning *models.RiskWarning `json:"risk_warning,omitempty"`
}

// toRecommendationResponse flattens a ZoneScore for the wire
func toRecommendationResponse(sz models.ZoneScore) ZoneRecommendationResponse {
	matched := sz.MatchedSignals
	if matched == nil {
		matched = []string{}
	}

	return ZoneRecommendationResponse{
		ZoneID:             sz.Zone.ID,
		ZoneName:           sz.Zone.Name,
		TotalScore:         sz.TotalScore,
		AudienceMatchScore: sz.AudienceMatchScore,
		TemporalScore:      sz.TemporalAlignmentScore,
		DistanceScore:      sz.DistanceScore,
		DwellTimeScore:     sz.DwellTimeScore,
		DistanceMiles:      sz.DistanceMiles,
		TimingWindows:      formatTimingWindows(sz.Zone.TimingWindows),
		DwellTimeSeconds:   sz.Zone.DwellTimeSeconds,
		CostTier:           sz.Zone.CostTier,
		Reasoning:          sz.Reasoning,
		MatchedSignals:     matched,
		DataSources:        sz.DataSources,
		Latitude:           sz.Zone.Coordinates.Lat,
		Longitude:          sz.Zone.Coordinates.Lon,
		RiskWarning:        sz.RiskWarning,
	}
}

func toRecommendationResponses(scored []models.ZoneScore) []ZoneRecommendationResponse {
	out := make([]ZoneRecommendationResponse, 0, len(scored))
	for _, sz := range scored {
		out = append(out, toRecommendationResponse(sz))
	}
	return out
}

// formatTimingWindows renders windows for display: day lists collapse
// to ranges ("Mon-Fri") and the first time range converts to 12-hour
// form ("17:00-19:00" becomes "5-7pm").
func formatTimingWindows(windows models.TimingWindows) []TimingWindowResponse {
	formatted := make([]TimingWindowResponse, 0, len(windows.Optimal))
	for _, window := range windows.Optimal {
		formatted = append(formatted, TimingWindowResponse{
			Days:      formatDays(window.Days),
			Hours:     formatHours(window.Times),
			Reasoning: window.Reasoning,
		})
	}
	return formatted
}

func formatDays(days []string) string {
	switch {
	case len(days) == 0:
		return "Any day"
	case len(days) == 5 && containsStr(days, "Monday") && containsStr(days, "Friday"):
		return "Mon-Fri"
	case len(days) >= 2:
		return abbreviateDay(days[0]) + "-" + abbreviateDay(days[len(days)-1])
	default:
		return abbreviateDay(days[0])
	}
}

func abbreviateDay(day string) string {
	if len(day) > 3 {
		return day[:3]
	}
	return day
}

func formatHours(times []string) string {
	if len(times) == 0 {
		return "Any time"
	}

	parts := strings.SplitN(times[0], "-", 2)
	if len(parts) != 2 {
		return "Any time"
	}
	startHour, err1 := parseHourPart(parts[0])
	endHour, err2 := parseHourPart(parts[1])
	if err1 != nil || err2 != nil {
		return "Any time"
	}

	period := "am"
	if endHour >= 12 {
		period = "pm"
	}
	return fmt.Sprintf("%d-%d%s", twelveHour(startHour), twelveHour(endHour), period)
}

func parseHourPart(s string) (int, error) {
	hourStr := strings.SplitN(strings.TrimSpace(s), ":", 2)[0]
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	return hour, nil
}

func twelveHour(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

func containsStr(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
