// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package plant defines the normalized plant catalog schema shared by the
// loader, the recommendation pipeline and the output assembler.
//
// Records are produced exclusively by the catalog normalizer and are
// immutable afterwards. Raw source rows never cross the normalization
// boundary.
package plant

import (
	"errors"
	"strings"
)

// Category classifies a catalog entry. Every plant has exactly one category.
type Category string

// Known plant categories.
const (
	CategoryFlower    Category = "flower"
	CategoryHerb      Category = "herb"
	CategoryVegetable Category = "vegetable"
)

// Categories lists all known categories in a fixed order.
var Categories = []Category{CategoryFlower, CategoryHerb, CategoryVegetable}

// ParseCategory resolves a category name. The boolean reports whether the
// value named a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFlower:
		return CategoryFlower, true
	case CategoryHerb:
		return CategoryHerb, true
	case CategoryVegetable:
		return CategoryVegetable, true
	default:
		return "", false
	}
}

// SunNeed is a plant's light requirement on the ordered three-point scale
// bright_shade < part_sun < full_sun.
type SunNeed string

// Sun requirement levels, ordered from least to most light.
const (
	SunBrightShade SunNeed = "bright_shade"
	SunPartSun     SunNeed = "part_sun"
	SunFullSun     SunNeed = "full_sun"
)

// SunScaleIndex returns the position of a sun value on the three-point
// scale. The boolean is false for values not on the scale; callers treat
// those as permissive (unknown, not a mismatch).
func SunScaleIndex(s string) (int, bool) {
	switch SunNeed(s) {
	case SunBrightShade:
		return 0, true
	case SunPartSun:
		return 1, true
	case SunFullSun:
		return 2, true
	default:
		return 0, false
	}
}

// Index returns the sun need's position on the three-point scale.
func (s SunNeed) Index() (int, bool) {
	return SunScaleIndex(string(s))
}

// Habit describes a plant's growth form.
type Habit string

// Known growth habits. HabitUnknown is used when no habit keyword matches.
const (
	HabitClimber     Habit = "climber"
	HabitVine        Habit = "vine"
	HabitDwarf       Habit = "dwarf"
	HabitCompact     Habit = "compact"
	HabitBush        Habit = "bush"
	HabitGroundcover Habit = "groundcover"
	HabitUpright     Habit = "upright"
	HabitUnknown     Habit = "unknown"
)

// ClimateZone is one of the five horticultural zones used to look up
// zone-specific sowing months.
type ClimateZone string

// The closed set of climate zones.
const (
	ZoneCool        ClimateZone = "cool"
	ZoneTemperate   ClimateZone = "temperate"
	ZoneSubtropical ClimateZone = "subtropical"
	ZoneTropical    ClimateZone = "tropical"
	ZoneArid        ClimateZone = "arid"
)

// ClimateZones lists all zones in a fixed order.
var ClimateZones = []ClimateZone{ZoneCool, ZoneTemperate, ZoneSubtropical, ZoneTropical, ZoneArid}

// ParseClimateZone resolves a zone name, falling back to ZoneCool for
// anything unrecognized. Environment resolution relies on this never
// failing.
func ParseClimateZone(s string) ClimateZone {
	switch ClimateZone(strings.ToLower(strings.TrimSpace(s))) {
	case ZoneTemperate:
		return ZoneTemperate
	case ZoneSubtropical:
		return ZoneSubtropical
	case ZoneTropical:
		return ZoneTropical
	case ZoneArid:
		return ZoneArid
	default:
		return ZoneCool
	}
}

// Months lists the twelve English month names in calendar order. Sowing
// month parsing and season adjacency both index into this slice.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the calendar position (0-11) of a month name.
// Matching is case-insensitive.
func MonthIndex(name string) (int, bool) {
	for i, m := range Months {
		if strings.EqualFold(m, name) {
			return i, true
		}
	}
	return 0, false
}

// MaturityUnknown marks a time-to-maturity that could not be parsed from
// the source data. Ranking treats it as slower than any known value.
const MaturityUnknown = -1

// Record is one normalized catalog entry. All derived fields are populated
// by the normalizer; none are left unset where a default exists.
type Record struct {
	// Name is the common plant name. Required.
	Name string `json:"plant_name"`

	// ScientificName is the botanical name, when the source provides one.
	ScientificName string `json:"scientific_name,omitempty"`

	// Category is the catalog category the record was loaded under.
	Category Category `json:"plant_category"`

	// SunNeed is the derived light requirement.
	SunNeed SunNeed `json:"sun_need"`

	// TimeToMaturityDays is days from sowing to harvest/bloom, or
	// MaturityUnknown when the source text could not be parsed.
	TimeToMaturityDays int `json:"time_to_maturity_days"`

	// Maintainability is the derived ease-of-care score in [0, 1].
	// Always populated (default 0.6): scoring arithmetic depends on it.
	Maintainability float64 `json:"maintainability_score"`

	// Habit is the derived growth form.
	Habit Habit `json:"habit"`

	// ContainerOK reports suitability for container growing.
	ContainerOK bool `json:"container_ok"`

	// IndoorOK reports suitability for indoor growing. Implies ContainerOK
	// and a sun need below full_sun.
	IndoorOK bool `json:"indoor_ok"`

	// Edible reports whether the plant is grown to be eaten.
	Edible bool `json:"edible"`

	// Fragrant reports whether descriptive text mentions fragrance.
	Fragrant bool `json:"fragrant"`

	// SowingMonths maps each climate zone to the months the plant can be
	// sown there. A zone key may map to an empty list.
	SowingMonths map[ClimateZone][]string `json:"sowing_months_by_climate"`

	// SowingMethod is the raw sowing method text from the source.
	SowingMethod string `json:"sowing_method,omitempty"`

	// SowingDepthMM is the sowing depth in millimetres, 0 when unknown.
	SowingDepthMM int `json:"sowing_depth_mm,omitempty"`

	// SpacingCM is the plant spacing in centimetres, 0 when unknown.
	SpacingCM int `json:"spacing_cm,omitempty"`

	// FlowerColors is the set of palette colors found in descriptive text,
	// in order of first appearance.
	FlowerColors []string `json:"flower_colors,omitempty"`

	// Characteristics is free source text, kept for feature derivation
	// and justification only.
	Characteristics string `json:"characteristics,omitempty"`

	// Description is free source text, kept for feature derivation and
	// justification only.
	Description string `json:"description,omitempty"`

	// ImagePath is the category-prefixed relative image path.
	ImagePath string `json:"image_path,omitempty"`
}

// CanonicalID derives the stable identity key used to collapse duplicate
// entries across source categories. The scientific name is preferred; the
// common name is the fallback when the scientific name normalizes to
// nothing. The key is never exposed externally.
func CanonicalID(r Record) string {
	if s := canonicalize(r.ScientificName); s != "" {
		return "sci:" + s
	}
	return "name:" + canonicalize(r.Name)
}

// canonicalize lowercases, drops markdown bold markers and strips every
// non-alphanumeric character.
func canonicalize(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "**", ""))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ErrNotFound reports that a lookup-by-name matched no catalog record.
// It is the one "absence" outcome the core surfaces distinctly, so callers
// can map it to a 404-equivalent.
var ErrNotFound = errors.New("plant not found")

// Find looks up a record by common or scientific name, case-insensitively.
// It returns ErrNotFound when no record matches.
func Find(records []Record, name string) (Record, error) {
	for _, r := range records {
		if strings.EqualFold(r.Name, name) || (r.ScientificName != "" && strings.EqualFold(r.ScientificName, name)) {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}
