package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "venue_lat", Message: "latitude must be between -90 and 90"}
	want := "validation error on field 'venue_lat': latitude must be between -90 and 90"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestZoneDataError_Unwrap(t *testing.T) {
	inner := errors.New("no such file")
	err := ZoneDataError{Source: "data/zones.geojson", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected errors.Is to find the wrapped error")
	}
	if err.Error() != "zone data error from data/zones.geojson: no such file" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestDatabaseError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := DatabaseError{Operation: "query_zones", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected errors.Is to find the wrapped error")
	}

	wrapped := fmt.Errorf("loading zones: %w", err)
	var dbErr DatabaseError
	if !errors.As(wrapped, &dbErr) {
		t.Error("Expected errors.As to find DatabaseError")
	}
	if dbErr.Operation != "query_zones" {
		t.Errorf("Expected operation query_zones, got %s", dbErr.Operation)
	}
}
