// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"testing"

	"github.com/tomtom215/verdant/internal/plant"
)

func candidate(name string, score float64, maturity int) ScoredCandidate {
	return ScoredCandidate{
		Score: score,
		Plant: plant.Record{Name: name, TimeToMaturityDays: maturity},
	}
}

func TestRankByScoreDescending(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		candidate("Mint", 61.2, 50),
		candidate("Basil", 82.4, 60),
		candidate("Thyme", 74.9, 90),
	})

	want := []string{"Basil", "Thyme", "Mint"}
	for i, n := range want {
		if ranked[i].Plant.Name != n {
			t.Fatalf("rank[%d] = %q, want %q", i, ranked[i].Plant.Name, n)
		}
	}
}

func TestRankTieBreaks(t *testing.T) {
	// Scores within half a thousandth collapse to the same rounded key,
	// so the tie falls through to maturity, then to name.
	ranked := Rank([]ScoredCandidate{
		candidate("Zinnia", 70.0004, 80),
		candidate("Aster", 70.0001, 80),
		candidate("Marigold", 70.0, 50),
		candidate("Fern", 70.0, plant.MaturityUnknown),
	})

	want := []string{"Marigold", "Aster", "Zinnia", "Fern"}
	got := make([]string, len(ranked))
	for i, c := range ranked {
		got[i] = c.Plant.Name
	}
	if !equalStrings(got, want) {
		t.Errorf("rank order = %v, want %v", got, want)
	}
}

func TestRankNameTieIsCaseInsensitive(t *testing.T) {
	ranked := Rank([]ScoredCandidate{
		candidate("basil", 70, 60),
		candidate("Aster", 70, 60),
	})
	if ranked[0].Plant.Name != "Aster" {
		t.Errorf("rank[0] = %q, want Aster ahead of basil", ranked[0].Plant.Name)
	}
}

func TestRankDropsDuplicateIdentities(t *testing.T) {
	sage := plant.Record{Name: "Sage", ScientificName: "Salvia officinalis", TimeToMaturityDays: 75}
	sageHerbRow := ScoredCandidate{Score: 80, Plant: sage}
	dup := sage
	dup.Name = "Common Sage"
	sageFlowerRow := ScoredCandidate{Score: 65, Plant: dup}

	ranked := Rank([]ScoredCandidate{sageFlowerRow, sageHerbRow})
	if len(ranked) != 1 {
		t.Fatalf("len = %d, want 1 after dedupe", len(ranked))
	}
	if ranked[0].Score != 80 {
		t.Errorf("kept score = %v, want the higher-ranked 80", ranked[0].Score)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	in := Rank([]ScoredCandidate{
		candidate("Basil", 80, 60),
		candidate("Mint", 70, 50),
	})
	again := Dedupe(in)
	if len(again) != len(in) {
		t.Errorf("second dedupe changed length: %d != %d", len(again), len(in))
	}
	for i := range in {
		if again[i].Plant.Name != in[i].Plant.Name {
			t.Errorf("second dedupe reordered index %d", i)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []ScoredCandidate{
		candidate("Mint", 61.2, 50),
		candidate("Basil", 82.4, 60),
	}
	Rank(in)
	if in[0].Plant.Name != "Mint" {
		t.Error("Rank mutated its input slice")
	}
}
