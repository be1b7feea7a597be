// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"path"
	"strings"

	"github.com/tomtom215/verdant/internal/plant"
)

// Row is one raw source row: normalized column name to raw value. Values
// may be empty or absent; every derivation has a default.
type Row map[string]string

// Column aliases tried in order when reading a raw row. Source files are
// inconsistent about naming, so each logical field accepts the variants
// seen in real catalogs.
var (
	colsName        = []string{"plant_name", "name", "common_name"}
	colsScientific  = []string{"scientific_name", "botanical_name"}
	colsPosition    = []string{"position", "sun", "aspect"}
	colsMaturity    = []string{"days_to_maturity", "time_to_maturity", "maturity"}
	colsHardiness   = []string{"hardiness", "life_cycle", "hardiness_life_cycle"}
	colsPlantType   = []string{"plant_type", "type"}
	colsCharacter   = []string{"characteristics", "characteristic"}
	colsDescription = []string{"description", "notes"}
	colsMethod      = []string{"sowing_method", "method"}
	colsDepth       = []string{"sowing_depth", "depth"}
	colsSpacing     = []string{"spacing", "plant_spacing"}
	colsImage       = []string{"image", "image_file", "image_filename"}
)

// zoneColumns maps each climate zone to its dedicated sowing-months column.
var zoneColumns = map[plant.ClimateZone][]string{
	plant.ZoneCool:        {"climate_cool", "cool"},
	plant.ZoneTemperate:   {"climate_temperate", "temperate"},
	plant.ZoneSubtropical: {"climate_subtropical", "subtropical", "sub_tropical"},
	plant.ZoneTropical:    {"climate_tropical", "tropical"},
	plant.ZoneArid:        {"climate_arid", "arid"},
}

// DefaultImageBase is the image directory used when no base is configured.
const DefaultImageBase = "images"

// Normalize converts one raw source row into a fully populated Record
// using the default image base. It never fails: missing or malformed
// fields resolve to documented defaults. Markdown emphasis markers in
// descriptive text are preserved here; only canonical-identity derivation
// strips them.
func Normalize(row Row, category plant.Category) plant.Record {
	return NormalizeWithBase(row, category, DefaultImageBase)
}

// NormalizeWithBase is Normalize with a configurable image base directory.
// Image paths come out as <imageBase>/<category>/<file>.
func NormalizeWithBase(row Row, category plant.Category, imageBase string) plant.Record {
	if imageBase == "" {
		imageBase = DefaultImageBase
	}
	name := strings.TrimSpace(row.first(colsName))
	scientific := strings.TrimSpace(row.first(colsScientific))
	characteristics := strings.TrimSpace(row.first(colsCharacter))
	description := strings.TrimSpace(row.first(colsDescription))
	plantType := strings.TrimSpace(row.first(colsPlantType))

	sunNeed := DeriveSunNeed(row.first(colsPosition))
	containerOK := DeriveContainerOK(characteristics, description, plantType)

	sowing := make(map[plant.ClimateZone][]string, len(zoneColumns))
	for zone, cols := range zoneColumns {
		sowing[zone] = ParseSowingMonths(row.first(cols))
	}

	depth, _ := ParseFirstInt(row.first(colsDepth))
	spacing, _ := ParseFirstInt(row.first(colsSpacing))

	return plant.Record{
		Name:               name,
		ScientificName:     scientific,
		Category:           category,
		SunNeed:            sunNeed,
		TimeToMaturityDays: ParseMaturityDays(row.first(colsMaturity)),
		Maintainability:    DeriveMaintainability(row.first(colsHardiness), characteristics, description),
		Habit:              DeriveHabit(characteristics, description, plantType),
		ContainerOK:        containerOK,
		IndoorOK:           DeriveIndoorOK(containerOK, sunNeed, characteristics, description, plantType),
		Edible:             DeriveEdible(category, characteristics, description),
		Fragrant:           DeriveFragrant(characteristics, description),
		SowingMonths:       sowing,
		SowingMethod:       strings.TrimSpace(row.first(colsMethod)),
		SowingDepthMM:      depth,
		SpacingCM:          spacing,
		FlowerColors:       DeriveFlowerColors(characteristics, description),
		Characteristics:    characteristics,
		Description:        description,
		ImagePath:          DeriveImagePath(row.first(colsImage), path.Join(imageBase, string(category))),
	}
}

// first returns the value of the first alias present in the row.
func (r Row) first(aliases []string) string {
	for _, a := range aliases {
		if v, ok := r[a]; ok && v != "" {
			return v
		}
	}
	return ""
}

// NormalizeColumnName maps a raw CSV header to the canonical row key:
// lowercase, trimmed, spaces and separators collapsed to underscores.
func NormalizeColumnName(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	var b strings.Builder
	b.Grow(len(h))
	lastUnderscore := false
	for _, r := range h {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
