// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package reranking implements post-ranking selection stages for
// recommendation diversity.
package reranking

import (
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/recommend"
)

// CategoryCap bounds how many plants of one category may appear in the
// final list while still trying to reach the requested count. It walks the
// ranked input once with a per-category running count, keeping an item
// only while its category is under the cap.
//
// The pass deliberately continues over the whole input rather than
// stopping at k: if the cap leaves room, lower-ranked items from other
// categories can still backfill the list. With too few distinct
// categories the output simply comes up short of k.
type CategoryCap struct {
	maxPerCategory int
}

// NewCategoryCap creates a category-cap reranker. A cap below one is
// raised to one.
func NewCategoryCap(maxPerCategory int) *CategoryCap {
	if maxPerCategory < 1 {
		maxPerCategory = 1
	}
	return &CategoryCap{maxPerCategory: maxPerCategory}
}

// Name returns the reranker identifier.
func (c *CategoryCap) Name() string {
	return "category_cap"
}

// Rerank filters the ranked candidates by the per-category cap. Relative
// order is preserved; truncation to k stays with the caller.
func (c *CategoryCap) Rerank(candidates []recommend.ScoredCandidate, k int) []recommend.ScoredCandidate {
	counts := make(map[plant.Category]int, 3)
	kept := make([]recommend.ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if counts[cand.Plant.Category] >= c.maxPerCategory {
			continue
		}
		counts[cand.Plant.Category]++
		kept = append(kept, cand)
	}
	return kept
}

// Ensure CategoryCap implements the interface.
var _ recommend.Reranker = (*CategoryCap)(nil)
