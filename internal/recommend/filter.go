// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/profile"
)

// HardFilter removes plants that structurally cannot satisfy the user's
// hard constraints. Every returned plant passes all predicates; the
// predicates are independent, so evaluation order never changes the
// result.
func HardFilter(plants []plant.Record, p profile.Profile, env environment.Snapshot) []plant.Record {
	eligible := make([]plant.Record, 0, len(plants))
	for _, pl := range plants {
		if !seasonMatches(pl, env) {
			continue
		}
		if !goalMatches(pl, p) {
			continue
		}
		if p.Site.LocationType == "indoors" && !pl.IndoorOK {
			continue
		}
		if p.Site.Containers && !pl.ContainerOK {
			continue
		}
		if !sunWithinDistance(p.Site.SunExposure, pl.SunNeed, 1) {
			continue
		}
		eligible = append(eligible, pl)
	}
	return eligible
}

// seasonMatches reports whether the current month is in the plant's
// sowing list for the current climate zone. A missing zone key reads as an
// empty list, so it never matches.
func seasonMatches(pl plant.Record, env environment.Snapshot) bool {
	return monthInList(env.MonthNow, pl.SowingMonths[env.ClimateZone])
}

// goalMatches applies the goal rule: an edible goal rejects non-edibles,
// an ornamental goal rejects edibles, and a mixed goal never rejects.
func goalMatches(pl plant.Record, p profile.Profile) bool {
	switch p.Preferences.Goal {
	case "edible":
		return pl.Edible
	case "ornamental":
		return !pl.Edible
	default:
		return true
	}
}

// sunWithinDistance compares the user's exposure and the plant's need on
// the three-point sun scale. When either value is off the scale the rule
// is permissive and reports a match.
func sunWithinDistance(userSun string, need plant.SunNeed, maxDistance int) bool {
	ui, ok := plant.SunScaleIndex(userSun)
	if !ok {
		return true
	}
	pi, ok := need.Index()
	if !ok {
		return true
	}
	d := ui - pi
	if d < 0 {
		d = -d
	}
	return d <= maxDistance
}

// monthInList reports whether a month name appears in a sowing list.
func monthInList(month string, months []string) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
