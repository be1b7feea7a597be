// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Diversity.MaxPerCategory != 3 {
		t.Errorf("MaxPerCategory = %d, want 3", cfg.Diversity.MaxPerCategory)
	}
	if cfg.Limits.DefaultCount != 5 || cfg.Limits.MaxCount != 20 {
		t.Errorf("limits = %+v, want defaults 5/20", cfg.Limits)
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	// The seven additive weights total 0.97; the unused wind weight holds
	// the remaining 0.03 so the full table sums to one.
	w := DefaultScoringWeights()
	sum := 0.0
	for _, v := range w.ToMap() {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weight table sums to %v, want 1.0", sum)
	}
	additive := sum - w.WindPenalty
	if math.Abs(additive-0.97) > 1e-9 {
		t.Errorf("additive weights sum to %v, want 0.97", additive)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Weights.Season = -0.1 },
			wantErr: "non-negative",
		},
		{
			name:    "zero diversity cap",
			mutate:  func(c *Config) { c.Diversity.MaxPerCategory = 0 },
			wantErr: "max_per_category",
		},
		{
			name:    "zero default count",
			mutate:  func(c *Config) { c.Limits.DefaultCount = 0 },
			wantErr: "default_count",
		},
		{
			name:    "max below default",
			mutate:  func(c *Config) { c.Limits.MaxCount = 2 },
			wantErr: "max_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Weights.Season = 0.99
	clone.Diversity.MaxPerCategory = 1

	if cfg.Weights.Season != 0.25 || cfg.Diversity.MaxPerCategory != 3 {
		t.Error("mutating a clone leaked into the original")
	}
}

func TestToMapCoversAllFactors(t *testing.T) {
	m := DefaultScoringWeights().ToMap()
	for _, f := range []string{
		FactorSeason, FactorSun, FactorMaintainability, FactorTimeToResults,
		FactorSiteFit, FactorPreferences, FactorEcoBonus, FactorWindPenalty,
	} {
		if _, ok := m[f]; !ok {
			t.Errorf("ToMap missing factor %q", f)
		}
	}
}
