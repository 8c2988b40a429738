package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestInitFormats(t *testing.T) {
	// Must not panic for either format and must install a usable logger
	Init("debug", "json")
	Info("json logger ready")

	Init("info", "text")
	Info("text logger ready")
}

func TestWithContext(t *testing.T) {
	Init("info", "json")
	ctx := context.WithValue(context.Background(), "request_id", "req-123") //nolint:staticcheck
	l := WithContext(ctx)
	if l == nil {
		t.Fatal("Expected a logger")
	}
	l.Info("request-scoped log")
}
