package scoring

import (
	"strings"

	"github.com/placemint/placemint/internal/models"
	"github.com/placemint/placemint/pkg/utils"
)

// zoneKind is the venue type inferred from a zone's name, used only to
// pick narrative text
type zoneKind int

const (
	kindOther zoneKind = iota
	kindTransit
	kindRestaurant
	kindRetail
)

var (
	transitKeywords    = []string{"metro", "station", "transit", "ballston", "rosslyn", "clarendon"}
	restaurantKeywords = []string{"restaurant", "dining", "cafe", "coffee", "food"}
	retailKeywords     = []string{"retail", "shopping", "store", "shops"}
)

func zoneKindOf(zoneName string) zoneKind {
	name := strings.ToLower(zoneName)
	switch {
	case utils.ContainsAny(name, transitKeywords):
		return kindTransit
	case utils.ContainsAny(name, restaurantKeywords):
		return kindRestaurant
	case utils.ContainsAny(name, retailKeywords):
		return kindRetail
	default:
		return kindOther
	}
}

// behavioralContext is a static phrase bank keyed by time period and
// venue type. It explains WHY a time period works for a kind of zone;
// it is narrative enrichment, not computed from live data.
var behavioralContext = map[string]map[zoneKind]string{
	models.TimePeriodMorning: {
		kindTransit:    "commuters heading to work (7-9am), high attention during morning routine, prime time for weekend event discovery",
		kindRestaurant: "morning coffee crowd, leisurely browsing, receptive to event information",
		kindRetail:     "early shoppers with time to browse, unhurried pace, good attention span",
		kindOther:      "morning foot traffic with routine patterns, consistent daily exposure",
	},
	models.TimePeriodLunch: {
		kindTransit:    "lunch-hour commuters and office workers, mid-day breaks, good browsing time",
		kindRestaurant: "office workers on lunch break (11am-2pm), browsing mindset, looking for nearby activities",
		kindRetail:     "lunch shoppers taking breaks, relaxed pace, receptive to event details",
		kindOther:      "mid-day crowd with flexible schedule, good dwell time, walkable radius matters",
	},
	models.TimePeriodEvening: {
		kindTransit:    "commuters heading home (5-7pm), weekend planning mode, repetition builds awareness",
		kindRestaurant: "dinner crowd with leisure time, social mindset, discussing weekend plans",
		kindRetail:     "evening shoppers unwinding, browsing for entertainment, receptive to event ideas",
		kindOther:      "evening foot traffic with leisure mindset, good attention for event details",
	},
}

// behavioralClause returns the time-period narrative for a zone, or the
// generic fallback for unknown time periods.
func behavioralClause(timePeriod, zoneName string) string {
	if byKind, ok := behavioralContext[timePeriod]; ok {
		return byKind[zoneKindOf(zoneName)]
	}
	return "strategic timing for target audience behavior patterns"
}
