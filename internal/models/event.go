package models

import (
	apperrors "github.com/placemint/placemint/internal/errors"
)

// Time periods recognized for behavioral narrative
const (
	TimePeriodMorning = "morning"
	TimePeriodLunch   = "lunch"
	TimePeriodEvening = "evening"
)

// EventData holds the event being advertised. It is immutable for the
// duration of a scoring call.
type EventData struct {
	Name           string   `json:"name"`
	Date           string   `json:"date"` // ISO-8601 date, e.g. "2026-02-20"
	Time           string   `json:"time"` // "HH:MM" local time
	VenueLat       float64  `json:"venue_lat"`
	VenueLon       float64  `json:"venue_lon"`
	TargetAudience []string `json:"target_audience"`
	EventType      string   `json:"event_type"`
	TimePeriod     string   `json:"time_period,omitempty"` // morning, lunch or evening
}

// Normalize fills defaults the wire format leaves optional
func (e *EventData) Normalize() {
	if e.TimePeriod == "" {
		e.TimePeriod = TimePeriodEvening
	}
}

// Validate checks the required fields of an event payload. Malformed
// date and time strings still pass: the temporal scorer degrades them
// to a neutral score rather than failing the request.
func (e EventData) Validate() error {
	if e.Name == "" {
		return apperrors.ValidationError{Field: "name", Message: "event name is required"}
	}
	if e.Date == "" {
		return apperrors.ValidationError{Field: "date", Message: "event date is required"}
	}
	if e.Time == "" {
		return apperrors.ValidationError{Field: "time", Message: "event time is required"}
	}
	if e.VenueLat < -90 || e.VenueLat > 90 {
		return apperrors.ValidationError{Field: "venue_lat", Message: "latitude must be between -90 and 90"}
	}
	if e.VenueLon < -180 || e.VenueLon > 180 {
		return apperrors.ValidationError{Field: "venue_lon", Message: "longitude must be between -180 and 180"}
	}
	switch e.TimePeriod {
	case "", TimePeriodMorning, TimePeriodLunch, TimePeriodEvening:
	default:
		return apperrors.ValidationError{Field: "time_period", Message: "must be one of morning, lunch, evening"}
	}
	return nil
}
