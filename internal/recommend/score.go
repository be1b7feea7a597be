// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"strings"

	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/profile"
)

// Score computes the weighted compatibility score in [0, 100] for one
// plant against one user/environment pair, along with the raw per-factor
// breakdown.
//
// Seven factors contribute to the additive base; the wind sub-score is
// applied multiplicatively afterwards as base * (0.85 + 0.15*wind). The
// wind weight in the table is intentionally not part of the sum (see
// ScoringWeights.WindPenalty).
func Score(pl plant.Record, p profile.Profile, env environment.Snapshot, w ScoringWeights) (float64, map[string]float64) {
	breakdown := map[string]float64{
		FactorSeason:          seasonSubscore(pl, env),
		FactorSun:             sunSubscore(p.Site.SunExposure, pl.SunNeed),
		FactorMaintainability: maintainabilitySubscore(p.Preferences.Maintainability, pl.Maintainability),
		FactorTimeToResults:   timeToResultsSubscore(p.Preferences.TimeToResults, pl.TimeToMaturityDays),
		FactorSiteFit:         siteFitSubscore(p, pl),
		FactorPreferences:     preferencesSubscore(p, pl),
		FactorWindPenalty:     windSubscore(p, pl),
		FactorEcoBonus:        ecoSubscore(pl),
	}

	base := 100 * (w.Season*breakdown[FactorSeason] +
		w.Sun*breakdown[FactorSun] +
		w.Maintainability*breakdown[FactorMaintainability] +
		w.TimeToResults*breakdown[FactorTimeToResults] +
		w.SiteFit*breakdown[FactorSiteFit] +
		w.Preferences*breakdown[FactorPreferences] +
		w.EcoBonus*breakdown[FactorEcoBonus])

	score := base * (0.85 + 0.15*breakdown[FactorWindPenalty])
	return score, breakdown
}

// seasonSubscore is 1.0 for an in-window month, 0.7 when only an adjacent
// month is in the window, else 0.
func seasonSubscore(pl plant.Record, env environment.Snapshot) float64 {
	months := pl.SowingMonths[env.ClimateZone]
	if monthInList(env.MonthNow, months) {
		return 1.0
	}
	prev, next := adjacentMonths(env.MonthNow)
	if monthInList(prev, months) || monthInList(next, months) {
		return 0.7
	}
	return 0.0
}

// sunSubscore maps scale distance to a sub-score; unresolvable values get
// a neutral 0.5.
func sunSubscore(userSun string, need plant.SunNeed) float64 {
	ui, ok := plant.SunScaleIndex(userSun)
	if !ok {
		return 0.5
	}
	pi, ok := need.Index()
	if !ok {
		return 0.5
	}
	d := ui - pi
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return 1.0
	case 1:
		return 0.7
	default:
		return 0.3
	}
}

// maintainabilitySubscore rescales the plant's raw maintainability by the
// user's tolerance tier. A low tolerance passes the raw score through; the
// medium and high tiers compress it upwards, since a tolerant user cares
// less about care burden.
func maintainabilitySubscore(tier string, raw float64) float64 {
	switch tier {
	case "low":
		return raw
	case "medium":
		return 0.5 + 0.5*raw
	case "high":
		return 0.7 + 0.3*raw
	default:
		return raw
	}
}

// timeToResultsSubscore buckets the plant's maturity days by the user's
// patience tier. Unknown maturity gets a neutral 0.6 in every tier.
func timeToResultsSubscore(tier string, days int) float64 {
	if days == plant.MaturityUnknown {
		return 0.6
	}
	switch tier {
	case "quick":
		switch {
		case days <= 45:
			return 1.0
		case days <= 75:
			return 0.8
		case days <= 105:
			return 0.5
		default:
			return 0.2
		}
	case "standard":
		switch {
		case days <= 60:
			return 0.9
		case days <= 120:
			return 1.0
		case days <= 180:
			return 0.7
		default:
			return 0.4
		}
	case "patient":
		switch {
		case days <= 60:
			return 0.6
		case days <= 120:
			return 0.8
		case days <= 180:
			return 1.0
		default:
			return 0.9
		}
	default:
		switch {
		case days <= 60:
			return 1.0
		case days <= 120:
			return 0.8
		default:
			return 0.6
		}
	}
}

// siteFitSubscore rewards indoor fit, container fit, and small-space
// habits, additively up to 1.0.
func siteFitSubscore(p profile.Profile, pl plant.Record) float64 {
	s := 0.0
	if p.Site.LocationType == "indoors" && pl.IndoorOK {
		s += 0.2
	}
	if p.Site.Containers && pl.ContainerOK {
		s += 0.2
	}
	if smallSpace(p.Site) && smallHabit(pl.Habit) {
		s += 0.15
	}
	if s > 1.0 {
		s = 1.0
	}
	return s
}

// smallSpace reports a constrained site: under 3 square metres, or every
// chosen container size is small or medium.
func smallSpace(site profile.Site) bool {
	if site.AreaM2 < 3 {
		return true
	}
	if len(site.ContainerSizes) == 0 {
		return false
	}
	for _, size := range site.ContainerSizes {
		if size != "small" && size != "medium" {
			return false
		}
	}
	return true
}

func smallHabit(h plant.Habit) bool {
	return h == plant.HabitDwarf || h == plant.HabitCompact || h == plant.HabitGroundcover
}

// preferencesSubscore rewards matches with the user's stated growing
// preferences, additively up to 1.0. An edible or ornamental goal counts
// as interest on its own; the type lists only sharpen it.
func preferencesSubscore(p profile.Profile, pl plant.Record) float64 {
	s := 0.0
	if (p.Preferences.Goal == "edible" || len(p.Preferences.EdibleTypes) > 0) && pl.Edible {
		s += 0.2
	}
	if (p.Preferences.Goal == "ornamental" || len(p.Preferences.OrnamentalTypes) > 0) && pl.Category == plant.CategoryFlower {
		s += 0.2
	}
	if colorsIntersect(p.Preferences.Colors, pl.FlowerColors) {
		s += 0.15
	}
	if p.Preferences.Fragrant && pl.Fragrant {
		s += 0.15
	}
	if s > 1.0 {
		s = 1.0
	}
	return s
}

func colorsIntersect(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}

// windSubscore penalizes tall or climbing habits on a windy site. Applied
// multiplicatively to the final score, not summed into the base.
func windSubscore(p profile.Profile, pl plant.Record) float64 {
	if p.Site.WindExposure != "windy" {
		return 1.0
	}
	switch pl.Habit {
	case plant.HabitClimber, plant.HabitUpright, plant.HabitVine:
		return 0.7
	default:
		return 1.0
	}
}

// ecoSubscore grants a flat bonus when the descriptive text mentions
// pollinator support.
func ecoSubscore(pl plant.Record) float64 {
	text := strings.ToLower(pl.Characteristics + " " + pl.Description)
	if strings.Contains(text, "beneficial insects") || strings.Contains(text, "pollinator") {
		return 0.15
	}
	return 0.0
}
