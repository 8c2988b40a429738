package models

// Data source detection statuses
const (
	SourceDetected    = "detected"
	SourceNotDetected = "not_detected"
)

// WarningTypeDeceptiveHotspot is the only warning type currently emitted
const WarningTypeDeceptiveHotspot = "deceptive_hotspot"

// Warning category types
const (
	CategoryLowDwellTime       = "low_dwell_time"
	CategoryPoorAudienceMatch  = "poor_audience_match"
	CategoryTimingMisalignment = "timing_misalignment"
	CategoryVisualNoise        = "visual_noise"
)

// DataSource records which data source was checked for a recommendation,
// for transparency in the UI
type DataSource struct {
	Name        string `json:"name"`
	Status      string `json:"status"` // detected or not_detected
	Details     string `json:"details,omitempty"`
	LastUpdated string `json:"last_updated"`
}

// WarningCategory is one triggered risk rule
type WarningCategory struct {
	CategoryType string   `json:"category_type"`
	DisplayName  string   `json:"display_name"`
	Icon         string   `json:"icon"`
	Description  string   `json:"description"`
	Severity     string   `json:"severity"`
	MetricValue  *float64 `json:"metric_value,omitempty"`
}

// RiskDetails is the numeric snapshot backing a risk warning, including
// the thresholds that were applied
type RiskDetails struct {
	FootTrafficDaily       int     `json:"foot_traffic_daily"`
	DwellTimeSeconds       int     `json:"dwell_time_seconds"`
	AudienceMatchScore     float64 `json:"audience_match_score"`
	AudienceMatchPercent   int     `json:"audience_match_percent"`
	TemporalAlignmentScore float64 `json:"temporal_alignment_score"`
	ThresholdTraffic       int     `json:"threshold_traffic"`
	ThresholdDwellTime     int     `json:"threshold_dwell_time"`
	ThresholdAudienceMatch float64 `json:"threshold_audience_match"`
	ThresholdTemporal      float64 `json:"threshold_temporal"`
}

// AlternativeZone points a flagged zone at a better-scoring unflagged one
type AlternativeZone struct {
	ZoneID     string  `json:"zone_id"`
	ZoneName   string  `json:"zone_name"`
	Rank       int     `json:"rank"` // 1-indexed position in the full sorted list
	TotalScore float64 `json:"total_score"`
	Reason     string  `json:"reason"`
}

// RiskWarning flags a deceptive hotspot: a zone whose apparent
// popularity masks poor suitability
type RiskWarning struct {
	IsFlagged         bool              `json:"is_flagged"`
	WarningType       string            `json:"warning_type"`
	Reason            string            `json:"reason"`
	Severity          string            `json:"severity"`
	Details           RiskDetails       `json:"details"`
	WarningCategories []WarningCategory `json:"warning_categories"`
	AlternativeZones  []AlternativeZone `json:"alternative_zones"`
}

// ZoneScore is one scored zone. Instances are built fresh on every
// scoring call and carry no persisted identity.
type ZoneScore struct {
	Zone                   Zone         `json:"zone"`
	TotalScore             float64      `json:"total_score"`              // 0-100
	AudienceMatchScore     float64      `json:"audience_match_score"`     // 0-40
	TemporalAlignmentScore float64      `json:"temporal_alignment_score"` // 0-30
	DistanceScore          float64      `json:"distance_score"`           // 0-20
	DwellTimeScore         float64      `json:"dwell_time_score"`         // 0-10
	DistanceMiles          float64      `json:"distance_miles"`
	Reasoning              string       `json:"reasoning"`
	MatchedSignals         []string     `json:"matched_signals"`
	DataSources            []DataSource `json:"data_sources"`
	RiskWarning            *RiskWarning `json:"risk_warning,omitempty"`
}

// Flagged reports whether this zone carries an active risk warning
func (s ZoneScore) Flagged() bool {
	return s.RiskWarning != nil && s.RiskWarning.IsFlagged
}
