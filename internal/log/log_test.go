package log

import (
	"log/slog"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := Level(tt.in); got != tt.want {
			t.Fatalf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	logger := NullLogger()
	if logger == nil {
		t.Fatal("nil logger")
	}
	logger.Info("dropped")
}
