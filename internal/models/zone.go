package models

// Severity levels used by risk warnings and warning categories
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Cost tiers a zone can advertise at
const (
	CostTierFree     = "free"
	CostTierLow      = "$"
	CostTierMedium   = "$$"
	CostTierPremium  = "$$$"
)

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AudienceSignals describes who frequents a zone
type AudienceSignals struct {
	Demographics []string `json:"demographics"`
	Interests    []string `json:"interests"`
	Behaviors    []string `json:"behaviors"`
}

// All returns the union of the three signal lists.
// The same tag may appear in more than one category; callers doing
// membership tests should treat the result as a set.
func (s AudienceSignals) All() []string {
	all := make([]string, 0, len(s.Demographics)+len(s.Interests)+len(s.Behaviors))
	all = append(all, s.Demographics...)
	all = append(all, s.Interests...)
	all = append(all, s.Behaviors...)
	return all
}

// TimingWindow is a named day/time range during which a zone is
// considered optimal for advertising
type TimingWindow struct {
	Days      []string `json:"days"`  // weekday names, e.g. "Thursday"
	Times     []string `json:"times"` // "HH:MM-HH:MM" ranges
	Reasoning string   `json:"reasoning"`
}

// TimingWindows holds a zone's optimal windows; may be empty
type TimingWindows struct {
	Optimal []TimingWindow `json:"optimal"`
}

// Zone represents a candidate physical location for ad placement
type Zone struct {
	ID                 string          `json:"id" db:"id"`
	Name               string          `json:"name" db:"name"`
	Coordinates        Coordinates     `json:"coordinates"`
	AudienceSignals    AudienceSignals `json:"audience_signals"`
	TimingWindows      TimingWindows   `json:"timing_windows"`
	DwellTimeSeconds   int             `json:"dwell_time_seconds" db:"dwell_time_seconds"`
	CostTier           string          `json:"cost_tier" db:"cost_tier"`
	FootTrafficDaily   *int            `json:"foot_traffic_daily,omitempty" db:"foot_traffic_daily"`
	VisualDistractions string          `json:"visual_distractions,omitempty" db:"visual_distractions"`
	AdvertisingDensity int             `json:"advertising_density,omitempty" db:"advertising_density"`
}

// DailyFootTraffic returns the zone's average daily foot traffic,
// treating absent data as zero.
func (z Zone) DailyFootTraffic() int {
	if z.FootTrafficDaily == nil {
		return 0
	}
	return *z.FootTrafficDaily
}

// ZoneQuery represents query parameters for filtering zones
type ZoneQuery struct {
	IDs              []string `json:"ids"`
	CostTiers        []string `json:"cost_tiers"`
	MinDwellSeconds  int      `json:"min_dwell_seconds"`
	MinFootTraffic   int      `json:"min_foot_traffic"`
	Limit            int      `json:"limit"`
	Offset           int      `json:"offset"`
}

// Matches checks if a zone matches the query criteria
func (q ZoneQuery) Matches(zone Zone) bool {
	if len(q.IDs) > 0 && !contains(q.IDs, zone.ID) {
		return false
	}
	if len(q.CostTiers) > 0 && !contains(q.CostTiers, zone.CostTier) {
		return false
	}
	if q.MinDwellSeconds > 0 && zone.DwellTimeSeconds < q.MinDwellSeconds {
		return false
	}
	if q.MinFootTraffic > 0 && zone.DailyFootTraffic() < q.MinFootTraffic {
		return false
	}
	return true
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
