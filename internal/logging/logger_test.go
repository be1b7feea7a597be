// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"WARN", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Output: &buf, Timestamp: true})

	logger.Info().Str("component", "catalog").Msg("loaded")

	out := buf.String()
	if !strings.Contains(out, `"component":"catalog"`) {
		t.Errorf("output missing structured field: %s", out)
	}
	if !strings.Contains(out, `"message":"loaded"`) {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"time":`) {
		t.Errorf("output missing timestamp: %s", out)
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Output: &buf})

	logger.Info().Msg("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %s", buf.String())
	}

	logger.Warn().Msg("emitted")
	if buf.Len() == 0 {
		t.Error("warn suppressed at warn level")
	}
}

func TestNewZeroConfigIsUsable(t *testing.T) {
	logger := New(Config{})
	// Must not panic; output goes to stderr at info level.
	logger.Debug().Msg("dropped at default level")
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Error().Msg("discarded")
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("Nop level = %v, want disabled", logger.GetLevel())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "console", Output: &buf})

	logger.Info().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("console output missing message: %s", buf.String())
	}
}
