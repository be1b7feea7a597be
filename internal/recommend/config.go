// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import "fmt"

// ScoringWeights defines the relative contribution of each scoring factor.
// It is an explicit value threaded into every scoring call rather than
// hidden process-wide state, so multiple weightings can run side by side.
type ScoringWeights struct {
	// Season is the weight for sowing-window alignment.
	Season float64 `koanf:"season" json:"season"`

	// Sun is the weight for sun-scale proximity.
	Sun float64 `koanf:"sun" json:"sun"`

	// Maintainability is the weight for ease-of-care fit.
	Maintainability float64 `koanf:"maintainability" json:"maintainability"`

	// TimeToResults is the weight for maturity-speed fit.
	TimeToResults float64 `koanf:"time_to_results" json:"time_to_results"`

	// SiteFit is the weight for site suitability.
	SiteFit float64 `koanf:"site_fit" json:"site_fit"`

	// Preferences is the weight for stated-preference matches.
	Preferences float64 `koanf:"preferences" json:"preferences"`

	// EcoBonus is the weight for the pollinator/beneficial-insect bonus.
	EcoBonus float64 `koanf:"eco_bonus" json:"eco_bonus"`

	// WindPenalty is defined for completeness but never consulted in the
	// additive sum: wind is applied as a separate multiplicative
	// adjustment to the final score. Known inconsistency, preserved so
	// existing score outputs stay stable. Do not fold it into the sum.
	WindPenalty float64 `koanf:"wind_penalty" json:"wind_penalty"`
}

// DefaultScoringWeights returns the fixed default weight table.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Season:          0.25,
		Sun:             0.20,
		Maintainability: 0.15,
		TimeToResults:   0.10,
		SiteFit:         0.10,
		Preferences:     0.12,
		EcoBonus:        0.05,
		WindPenalty:     0.03,
	}
}

// ToMap returns the weights keyed by factor name.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) ToMap() map[string]float64 {
	return map[string]float64{
		FactorSeason:          w.Season,
		FactorSun:             w.Sun,
		FactorMaintainability: w.Maintainability,
		FactorTimeToResults:   w.TimeToResults,
		FactorSiteFit:         w.SiteFit,
		FactorPreferences:     w.Preferences,
		FactorEcoBonus:        w.EcoBonus,
		FactorWindPenalty:     w.WindPenalty,
	}
}

// DiversityConfig contains parameters for diversity selection.
type DiversityConfig struct {
	// MaxPerCategory caps how many plants of one category may appear in
	// final output. Default: 3.
	MaxPerCategory int `koanf:"max_per_category" json:"max_per_category"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultCount is the number of recommendations returned when the
	// caller does not specify one. Default: 5.
	DefaultCount int `koanf:"default_count" json:"default_count"`

	// MaxCount is the maximum allowed result count. Default: 20.
	MaxCount int `koanf:"max_count" json:"max_count"`
}

// Config contains all configuration for the recommendation pipeline.
type Config struct {
	// Weights defines the scoring factor weights.
	Weights ScoringWeights `koanf:"weights" json:"weights"`

	// Diversity contains diversity-selection parameters.
	Diversity DiversityConfig `koanf:"diversity" json:"diversity"`

	// Limits contains operational limits.
	Limits LimitsConfig `koanf:"limits" json:"limits"`
}

// DefaultConfig returns a Config with the fixed production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: DefaultScoringWeights(),
		Diversity: DiversityConfig{
			MaxPerCategory: 3,
		},
		Limits: LimitsConfig{
			DefaultCount: 5,
			MaxCount:     20,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for name, w := range c.Weights.ToMap() {
		if w < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, w)
		}
	}
	if c.Diversity.MaxPerCategory < 1 {
		return fmt.Errorf("diversity.max_per_category must be positive, got %d", c.Diversity.MaxPerCategory)
	}
	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d", c.Limits.MaxCount, c.Limits.DefaultCount)
	}
	return nil
}

// Clone returns a copy of the configuration. All nested structs are value
// types, so a field copy is a deep copy.
func (c *Config) Clone() *Config {
	return &Config{
		Weights:   c.Weights,
		Diversity: c.Diversity,
		Limits:    c.Limits,
	}
}
