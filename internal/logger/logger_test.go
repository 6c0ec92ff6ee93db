package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_WritesLevelMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(&buf, &Options{Level: slog.LevelDebug}))

	log.Info("document built", "members", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "document built")
	assert.Contains(t, out, `members="3"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(&buf, &Options{Level: slog.LevelWarn}))

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestHandler_Colorize(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(&buf, &Options{Level: slog.LevelDebug, Colorize: true}))

	log.Error("bad")

	out := buf.String()
	assert.Contains(t, out, red)
	assert.Contains(t, out, reset)
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(&buf, nil)).With("component", "builder")

	log.Info("ready")

	assert.Contains(t, buf.String(), `component="builder"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"anything else", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), tt.input)
	}
}
