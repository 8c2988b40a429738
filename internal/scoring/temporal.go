package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/placemint/placemint/internal/metrics"
	"github.com/placemint/placemint/internal/models"
)

// Temporal alignment component bounds and per-window scores
const (
	MaxTemporalScore     = 30.0
	temporalDayAndTime   = 30.0
	temporalDayOnly      = 20.0
	temporalTimeOnly     = 15.0
	temporalNoMatch      = 5.0
	// NeutralTemporalScore is returned when a zone has no timing data or
	// the event's date/time cannot be parsed. Missing data is neither
	// penalized nor rewarded, and bad input degrades silently instead of
	// failing the whole recommendation (the fallback is counted in
	// metrics so it doesn't mask bad data unnoticed).
	NeutralTemporalScore = 15.0
)

// TemporalAlignment scores how well the event's date and time line up
// with a zone's optimal windows, on a 0-30 scale. The best-matching
// window wins; a zone only needs one good window.
//
// eventType is accepted for interface stability but does not currently
// influence the score.
func TemporalAlignment(eventDate, eventTime, eventType string, windows models.TimingWindows) float64 {
	_ = eventType

	if len(windows.Optimal) == 0 {
		return NeutralTemporalScore
	}

	weekday, ok := parseWeekday(eventDate)
	if !ok {
		metrics.RecordTemporalFallback("bad_date")
		return NeutralTemporalScore
	}

	hour, ok := parseHour(eventTime)
	if !ok {
		metrics.RecordTemporalFallback("bad_time")
		return NeutralTemporalScore
	}

	best := 0.0
	for _, window := range windows.Optimal {
		dayMatch := containsDay(window.Days, weekday)
		timeMatch := hourInRanges(hour, window.Times)

		var score float64
		switch {
		case dayMatch && timeMatch:
			score = temporalDayAndTime
		case dayMatch:
			score = temporalDayOnly
		case timeMatch:
			score = temporalTimeOnly
		default:
			score = temporalNoMatch
		}

		if score > best {
			best = score
		}
	}

	return best
}

// parseWeekday resolves an ISO-8601 date string to a weekday name
func parseWeekday(date string) (string, bool) {
	layouts := []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Weekday().String(), true
		}
	}
	return "", false
}

// parseHour extracts the leading hour from an "HH:MM" string
func parseHour(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func containsDay(days []string, weekday string) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// hourInRanges reports whether the hour falls inside any half-open
// [start, end) interval parsed from "HH:MM-HH:MM" entries. Malformed
// entries are skipped, not fatal.
func hourInRanges(hour int, ranges []string) bool {
	for _, r := range ranges {
		start, end, ok := parseHourRange(r)
		if !ok {
			continue
		}
		if hour >= start && hour < end {
			return true
		}
	}
	return false
}

func parseHourRange(r string) (start, end int, ok bool) {
	bounds := strings.SplitN(r, "-", 2)
	if len(bounds) != 2 {
		return 0, 0, false
	}
	start, sok := parseHour(bounds[0])
	end, eok := parseHour(bounds[1])
	if !sok || !eok {
		return 0, 0, false
	}
	return start, end, true
}
