// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/verdant/internal/plant"
)

// Rank orders scored candidates deterministically and collapses duplicate
// identities. Sort keys, in order: score rounded to three decimals
// (descending), maturity days ascending with unknown last, then
// case-insensitive plant name. Deduplication runs after sorting so the
// highest-ranked occurrence of each identity survives.
func Rank(candidates []ScoredCandidate) []ScoredCandidate {
	ranked := make([]ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := round3(ranked[i].Score), round3(ranked[j].Score)
		if si != sj {
			return si > sj
		}
		mi, mj := maturityKey(ranked[i].Plant), maturityKey(ranked[j].Plant)
		if mi != mj {
			return mi < mj
		}
		return strings.ToLower(ranked[i].Plant.Name) < strings.ToLower(ranked[j].Plant.Name)
	})

	return Dedupe(ranked)
}

// Dedupe walks a ranked list once, keeping the first occurrence of each
// canonical identity. It is a pure filter: the relative order of kept
// items never changes, which also makes it idempotent.
func Dedupe(ranked []ScoredCandidate) []ScoredCandidate {
	seen := make(map[string]struct{}, len(ranked))
	kept := make([]ScoredCandidate, 0, len(ranked))
	for _, c := range ranked {
		id := plant.CanonicalID(c.Plant)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, c)
	}
	return kept
}

// maturityKey treats unknown maturity as slower than any known value.
func maturityKey(pl plant.Record) int {
	if pl.TimeToMaturityDays == plant.MaturityUnknown {
		return math.MaxInt
	}
	return pl.TimeToMaturityDays
}

// round3 rounds to three decimal places for tie-break comparison.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
