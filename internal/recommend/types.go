// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/tomtom215/verdant/internal/plant"
)

// Factor names used in score breakdowns and justification templates.
const (
	FactorSeason          = "season"
	FactorSun             = "sun"
	FactorMaintainability = "maintainability"
	FactorTimeToResults   = "time_to_results"
	FactorSiteFit         = "site_fit"
	FactorPreferences     = "preferences"
	FactorWindPenalty     = "wind_penalty"
	FactorEcoBonus        = "eco_bonus"
)

// ScoredCandidate pairs a plant with its compatibility score and the
// per-factor breakdown the score was built from. It exists only within one
// pipeline invocation and is never stored.
type ScoredCandidate struct {
	// Score is the aggregate compatibility score in [0, 100].
	Score float64 `json:"score"`

	// Plant is the scored catalog record.
	Plant plant.Record `json:"plant"`

	// Breakdown holds the raw [0, 1] sub-score per factor, not the
	// weighted contributions. Justification text is derived from the
	// same values, never invented independently.
	Breakdown map[string]float64 `json:"breakdown"`
}

// Fit summarizes how a recommended plant suits the site.
type Fit struct {
	SunNeed            plant.SunNeed `json:"sun_need"`
	TimeToMaturityDays int           `json:"time_to_maturity_days"`
	Maintainability    string        `json:"maintainability"`
	ContainerOK        bool          `json:"container_ok"`
	IndoorOK           bool          `json:"indoor_ok"`
	Habit              plant.Habit   `json:"habit"`
}

// Sowing carries zone-specific sowing guidance for a recommendation.
type Sowing struct {
	ClimateZone plant.ClimateZone `json:"climate_zone"`
	Months      []string          `json:"months"`
	Method      string            `json:"method"`
	DepthMM     int               `json:"depth_mm,omitempty"`
	SpacingCM   int               `json:"spacing_cm,omitempty"`
	SeasonLabel string            `json:"season_label"`
}

// Media carries presentation assets. Image URL or base64 resolution is an
// external collaborator's job, invoked after assembly.
type Media struct {
	ImagePath string `json:"image_path,omitempty"`
}

// Recommendation is one user-facing recommendation.
type Recommendation struct {
	Name           string         `json:"plant_name"`
	ScientificName string         `json:"scientific_name,omitempty"`
	Category       plant.Category `json:"category"`

	// Score is the aggregate score rounded to one decimal.
	Score float64 `json:"score"`

	// Why holds exactly four justification bullets synthesized from the
	// score breakdown.
	Why []string `json:"why"`

	Fit    Fit    `json:"fit"`
	Sowing Sowing `json:"sowing"`
	Media  Media  `json:"media"`
}

// Output is the assembled recommendation list plus any relaxation notes
// accumulated upstream.
type Output struct {
	Recommendations []Recommendation `json:"recommendations"`
	Notes           []string         `json:"notes"`
}

// ResponseMetadata carries timing and diagnostic information for one
// pipeline invocation.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// CatalogSize is the number of plants considered.
	CatalogSize int `json:"catalog_size"`

	// Eligible is the candidate count after hard filtering.
	Eligible int `json:"eligible"`

	// Pool is the candidate count after relaxation.
	Pool int `json:"pool"`

	// Returned is the number of recommendations produced.
	Returned int `json:"returned"`

	// LatencyMS is the total pipeline latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Response is a full engine response.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Notes           []string         `json:"notes"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// JSON serializes the response for transport or storage by the embedding
// application.
func (r Response) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// Reranker modifies a ranked candidate list for diversity or other
// secondary objectives. Inputs are already scored and sorted by rank.
type Reranker interface {
	// Name returns the reranker identifier.
	Name() string

	// Rerank reorders or filters the ranked candidates. k is the count
	// the caller will ultimately keep; rerankers may return more than k
	// so truncation stays with the caller.
	Rerank(candidates []ScoredCandidate, k int) []ScoredCandidate
}
