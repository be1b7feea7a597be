// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package catalog turns raw heterogeneous source rows into normalized
// plant records and loads multi-source CSV catalogs.
//
// Each derived attribute has its own pure derivation function so the
// individual rules stay independently testable. Every derivation has a
// safe default: normalization never fails on missing or malformed input.
package catalog

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/verdant/internal/plant"
)

var (
	rangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	intPattern   = regexp.MustCompile(`\d+`)
)

// ParseMaturityDays parses a free-text days-to-maturity field. A hyphenated
// range "X-Y" reduces to the integer midpoint (X+Y)/2, a bare integer is
// used as-is, and unparseable text yields plant.MaturityUnknown (not zero).
func ParseMaturityDays(text string) int {
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil {
			return (lo + hi) / 2
		}
	}
	if m := intPattern.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return plant.MaturityUnknown
}

// ParseFirstInt extracts the first integer token from free text. The unit
// is assumed from the field's expected unit, not validated against the
// source text.
func ParseFirstInt(text string) (int, bool) {
	m := intPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DeriveSunNeed maps a free-text position field to the three-point sun
// scale. "full sun" wins over "part", which wins over "shade"; anything
// else defaults to the neutral part_sun.
func DeriveSunNeed(position string) plant.SunNeed {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "full sun"):
		return plant.SunFullSun
	case strings.Contains(p, "part"):
		return plant.SunPartSun
	case strings.Contains(p, "shade"):
		return plant.SunBrightShade
	default:
		return plant.SunPartSun
	}
}

var containerKeywords = []string{"container", "pot", "compact", "dwarf"}

var indoorKeywords = []string{"indoor", "windowsill", "bright shade", "part sun"}

// DeriveContainerOK reports container suitability from characteristics,
// description and plant-type text.
func DeriveContainerOK(texts ...string) bool {
	return containsAny(joinLower(texts), containerKeywords)
}

// DeriveIndoorOK reports indoor suitability. An indoor plant must be
// container-suitable, must not need full sun, and its text must mention
// an indoor or container keyword.
func DeriveIndoorOK(containerOK bool, sunNeed plant.SunNeed, texts ...string) bool {
	if !containerOK || sunNeed == plant.SunFullSun {
		return false
	}
	combined := joinLower(texts)
	return containsAny(combined, containerKeywords) || containsAny(combined, indoorKeywords)
}

// habitKeywords is checked in order; the first match decides the habit.
var habitKeywords = []struct {
	habit    plant.Habit
	keywords []string
}{
	{plant.HabitClimber, []string{"climber", "climbing"}},
	{plant.HabitVine, []string{"vine", "vining"}},
	{plant.HabitDwarf, []string{"dwarf"}},
	{plant.HabitCompact, []string{"compact"}},
	{plant.HabitBush, []string{"bush", "shrub"}},
	{plant.HabitGroundcover, []string{"groundcover", "ground cover"}},
	{plant.HabitUpright, []string{"upright", "erect"}},
}

// DeriveHabit picks the first matching growth habit from the fixed keyword
// table, defaulting to unknown.
func DeriveHabit(texts ...string) plant.Habit {
	combined := joinLower(texts)
	for _, h := range habitKeywords {
		if containsAny(combined, h.keywords) {
			return h.habit
		}
	}
	return plant.HabitUnknown
}

var easyCareKeywords = []string{"easy", "drought", "disease resistant"}

// DeriveMaintainability scores ease of care in [0, 1] from a hardiness or
// life-cycle field, with a small bonus when easy-care keywords appear in
// the descriptive text. "half hardy" must be checked before "hardy".
func DeriveMaintainability(hardiness string, texts ...string) float64 {
	h := strings.ToLower(hardiness)
	score := 0.6
	switch {
	case strings.Contains(h, "half hardy"):
		score = 0.6
	case strings.Contains(h, "frost tender"):
		score = 0.4
	case strings.Contains(h, "hardy"):
		score = 0.9
	}

	if containsAny(joinLower(texts), easyCareKeywords) {
		score += 0.05
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// DeriveEdible reports whether the plant is grown to be eaten: herbs and
// vegetables by category, anything else when "culinary" appears in text.
func DeriveEdible(category plant.Category, texts ...string) bool {
	if category == plant.CategoryHerb || category == plant.CategoryVegetable {
		return true
	}
	return strings.Contains(joinLower(texts), "culinary")
}

var fragrantKeywords = []string{"fragrant", "aromatic", "scented"}

// DeriveFragrant reports whether descriptive text mentions fragrance.
func DeriveFragrant(texts ...string) bool {
	return containsAny(joinLower(texts), fragrantKeywords)
}

// colorPalette is the fixed set of recognized flower colors. "violet" is
// normalized to "purple".
var colorPalette = []string{"white", "yellow", "orange", "pink", "red", "purple", "violet", "blue", "magenta"}

// DeriveFlowerColors scans descriptive text for the fixed color palette and
// returns the matches in order of first appearance, without duplicates.
func DeriveFlowerColors(texts ...string) []string {
	combined := joinLower(texts)

	type hit struct {
		color string
		pos   int
	}
	var hits []hit
	for _, c := range colorPalette {
		if pos := strings.Index(combined, c); pos >= 0 {
			hits = append(hits, hit{color: c, pos: pos})
		}
	}

	// Order by first appearance in text, then normalize and dedupe.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	var colors []string
	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		c := h.color
		if c == "violet" {
			c = "purple"
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	return colors
}

// ParseSowingMonths matches all twelve English month names against a
// zone-specific free-text column. Matches follow calendar order, not the
// order the names appear in the text. "Nov-Mar" style spans come back as a
// flat set of the named months only; the wrap is not represented.
func ParseSowingMonths(text string) []string {
	lower := strings.ToLower(text)
	var months []string
	for _, m := range plant.Months {
		if strings.Contains(lower, strings.ToLower(m)) {
			months = append(months, m)
		}
	}
	return months
}

// DeriveImagePath takes the first semicolon-separated token from an image
// filename field, normalizes path separators, and prefixes the category's
// base image directory. Empty input yields an empty path.
func DeriveImagePath(field string, baseDir string) string {
	first, _, _ := strings.Cut(field, ";")
	first = strings.TrimSpace(strings.ReplaceAll(first, `\`, "/"))
	if first == "" {
		return ""
	}
	return path.Join(baseDir, first)
}

// joinLower concatenates text fields into one lowercase haystack.
func joinLower(texts []string) string {
	return strings.ToLower(strings.Join(texts, " "))
}

// containsAny reports whether any keyword occurs in the haystack.
func containsAny(haystack string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}
