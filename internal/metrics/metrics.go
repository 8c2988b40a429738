package metrics

import (
	"net/http"
	"time"
)

// Metrics interface for dependency injection
type Metrics interface {
	RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration)
	RecordScoringRun(zones int, duration time.Duration)
	RecordRiskFlagged(category string)
	RecordTemporalFallback(reason string)
	RecordDBQuery(operation, status string)
	SetZonesLoaded(count float64)
	SetDBConnectionsActive(count float64)
	Handler() http.Handler
}

// NoOpMetrics provides a no-op implementation
type NoOpMetrics struct{}

func (m *NoOpMetrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
}
func (m *NoOpMetrics) RecordScoringRun(zones int, duration time.Duration) {}
func (m *NoOpMetrics) RecordRiskFlagged(category string)                 {}
func (m *NoOpMetrics) RecordTemporalFallback(reason string)              {}
func (m *NoOpMetrics) RecordDBQuery(operation, status string)            {}
func (m *NoOpMetrics) SetZonesLoaded(count float64)                      {}
func (m *NoOpMetrics) SetDBConnectionsActive(count float64)              {}
func (m *NoOpMetrics) Handler() http.Handler                             { return http.NotFoundHandler() }

// Global metrics instance
var globalMetrics Metrics = &NoOpMetrics{}

// Init initializes metrics (no-op for now, can be extended with Prometheus)
func Init() {
	// For now, keep using no-op metrics
}

// Set replaces the global metrics instance (used in tests)
func Set(m Metrics) {
	if m != nil {
		globalMetrics = m
	}
}

// Handler returns the metrics handler
func Handler() http.Handler {
	return globalMetrics.Handler()
}

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	globalMetrics.RecordHTTPRequest(method, endpoint, statusCode, duration)
}

// RecordScoringRun records one full scoring pass over the zone list
func RecordScoringRun(zones int, duration time.Duration) {
	globalMetrics.RecordScoringRun(zones, duration)
}

// RecordRiskFlagged records a triggered risk warning category
func RecordRiskFlagged(category string) {
	globalMetrics.RecordRiskFlagged(category)
}

// RecordTemporalFallback counts how often malformed event date/time data
// forced the temporal scorer to fall back to the neutral score. The
// fallback itself is silent, so this counter is the only production
// signal that upstream data is bad.
func RecordTemporalFallback(reason string) {
	globalMetrics.RecordTemporalFallback(reason)
}

// RecordDBQuery records database query metrics
func RecordDBQuery(operation, status string) {
	globalMetrics.RecordDBQuery(operation, status)
}

// SetZonesLoaded sets the number of zones currently loaded
func SetZonesLoaded(count float64) {
	globalMetrics.SetZonesLoaded(count)
}

// SetDBConnectionsActive sets the number of active database connections
func SetDBConnectionsActive(count float64) {
	globalMetrics.SetDBConnectionsActive(count)
}
