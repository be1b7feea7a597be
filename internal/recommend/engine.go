// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/profile"
)

// Engine runs the full recommendation pipeline: hard filter, relaxation,
// scoring, ranking, dedup, diversity reranking and assembly. Every
// invocation is a pure function of its inputs, so concurrent calls are
// safe without locking.
type Engine struct {
	config    *Config
	logger    zerolog.Logger
	rerankers []Reranker
}

// NewEngine creates a recommendation engine. Rerankers run in order after
// ranking; reranking.NewCategoryCap is the standard diversity stage.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, rerankers ...Reranker) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		rerankers: rerankers,
	}, nil
}

// Recommend produces up to target ranked recommendations from the given
// catalog. An under-supplied result is not an error: after filtering,
// relaxation and diversity capping the engine returns whatever it has,
// with notes explaining any relaxation.
func (e *Engine) Recommend(plants []plant.Record, p profile.Profile, env environment.Snapshot, target int) Response {
	start := time.Now()
	target = e.clampTarget(target)

	requestID := uuid.NewString()
	logger := e.logger.With().
		Str("request_id", requestID).
		Str("climate_zone", string(env.ClimateZone)).
		Str("month", env.MonthNow).
		Logger()
	logger.Debug().Int("catalog", len(plants)).Int("target", target).Msg("processing recommendation request")

	eligible := HardFilter(plants, p, env)
	pool, notes := RelaxIfNeeded(eligible, plants, p, env, target)
	if len(pool) < target {
		// Relaxation ran out of stages; notes only cover stages that
		// actually added candidates.
		logger.Debug().
			Int("pool", len(pool)).
			Int("target", target).
			Int("relaxation_notes", len(notes)).
			Msg("candidate pool short of target after relaxation")
	}

	scored := make([]ScoredCandidate, 0, len(pool))
	for _, pl := range pool {
		score, breakdown := Score(pl, p, env, e.config.Weights)
		scored = append(scored, ScoredCandidate{Score: score, Plant: pl, Breakdown: breakdown})
	}

	ranked := Rank(scored)
	for _, rr := range e.rerankers {
		ranked = rr.Rerank(ranked, target)
	}
	if len(ranked) > target {
		ranked = ranked[:target]
	}

	out := Assemble(ranked, p, env, notes)

	resp := Response{
		Recommendations: out.Recommendations,
		Notes:           out.Notes,
		Metadata: ResponseMetadata{
			RequestID:   requestID,
			CatalogSize: len(plants),
			Eligible:    len(eligible),
			Pool:        len(pool),
			Returned:    len(out.Recommendations),
			LatencyMS:   time.Since(start).Milliseconds(),
			Timestamp:   time.Now(),
		},
	}

	logger.Debug().
		Int("eligible", len(eligible)).
		Int("pool", len(pool)).
		Int("returned", resp.Metadata.Returned).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp
}

// ScorePlant scores a single plant looked up by name. It surfaces
// plant.ErrNotFound distinctly so callers can map absence to a
// 404-equivalent instead of a generic failure.
func (e *Engine) ScorePlant(plants []plant.Record, name string, p profile.Profile, env environment.Snapshot) (ScoredCandidate, error) {
	pl, err := plant.Find(plants, name)
	if err != nil {
		return ScoredCandidate{}, fmt.Errorf("score plant %q: %w", name, err)
	}

	score, breakdown := Score(pl, p, env, e.config.Weights)
	return ScoredCandidate{Score: score, Plant: pl, Breakdown: breakdown}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// clampTarget applies the default and maximum result counts.
func (e *Engine) clampTarget(target int) int {
	if target <= 0 {
		target = e.config.Limits.DefaultCount
	}
	if target > e.config.Limits.MaxCount {
		target = e.config.Limits.MaxCount
	}
	return target
}
