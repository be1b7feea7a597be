// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/profile"
)

// Season labels on assembled recommendations.
const (
	SeasonStartNow  = "Start now"
	SeasonPlanAhead = "Plan ahead"
)

// whyBulletCount is the exact number of justification bullets per
// recommendation.
const whyBulletCount = 4

// whyThreshold is the minimum sub-score a factor needs before it earns a
// justification bullet.
const whyThreshold = 0.1

// fillerBullet pads justifications when fewer than four factors qualify.
const fillerBullet = "Well-suited to your growing conditions."

// Assemble builds the user-facing output for the top candidates, in order.
// Justifications are synthesized from each candidate's score breakdown,
// so the explanation is always derivable from the data the scorer used.
func Assemble(top []ScoredCandidate, p profile.Profile, env environment.Snapshot, notes []string) Output {
	recs := make([]Recommendation, 0, len(top))
	for _, c := range top {
		recs = append(recs, assembleOne(c, p, env))
	}
	if notes == nil {
		notes = []string{}
	}
	return Output{Recommendations: recs, Notes: notes}
}

func assembleOne(c ScoredCandidate, p profile.Profile, env environment.Snapshot) Recommendation {
	pl := c.Plant
	months := pl.SowingMonths[env.ClimateZone]

	return Recommendation{
		Name:           pl.Name,
		ScientificName: pl.ScientificName,
		Category:       pl.Category,
		Score:          round1(c.Score),
		Why:            whyBullets(c, p, env),
		Fit: Fit{
			SunNeed:            pl.SunNeed,
			TimeToMaturityDays: pl.TimeToMaturityDays,
			Maintainability:    maintainabilityLabel(pl.Maintainability),
			ContainerOK:        pl.ContainerOK,
			IndoorOK:           pl.IndoorOK,
			Habit:              pl.Habit,
		},
		Sowing: Sowing{
			ClimateZone: env.ClimateZone,
			Months:      months,
			Method:      NormalizeSowingMethod(pl.SowingMethod),
			DepthMM:     pl.SowingDepthMM,
			SpacingCM:   pl.SpacingCM,
			SeasonLabel: seasonLabel(pl, env),
		},
		Media: Media{ImagePath: pl.ImagePath},
	}
}

// seasonLabel is "Start now" when the current month is inside the plant's
// in-zone sowing window, else "Plan ahead".
func seasonLabel(pl plant.Record, env environment.Snapshot) string {
	if monthInList(env.MonthNow, pl.SowingMonths[env.ClimateZone]) {
		return SeasonStartNow
	}
	return SeasonPlanAhead
}

// NormalizeSowingMethod collapses free sowing-method text onto the two
// canonical methods via substring match; unmatched text passes through
// lowercased.
func NormalizeSowingMethod(method string) string {
	m := strings.ToLower(strings.TrimSpace(method))
	switch {
	case strings.Contains(m, "raise seedlings"):
		return "raise_seedlings"
	case strings.Contains(m, "sow direct"):
		return "sow_direct"
	default:
		return m
	}
}

// whyBullets produces exactly four justification bullets. Factors are
// visited by sub-score descending (name ascending on ties for
// determinism); a factor qualifies above the threshold and only if it has
// a sentence template. Shortfalls are padded with a generic filler.
func whyBullets(c ScoredCandidate, p profile.Profile, env environment.Snapshot) []string {
	type entry struct {
		factor string
		value  float64
	}
	entries := make([]entry, 0, len(c.Breakdown))
	for f, v := range c.Breakdown {
		entries = append(entries, entry{factor: f, value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].factor < entries[j].factor
	})

	bullets := make([]string, 0, whyBulletCount)
	for _, e := range entries {
		if len(bullets) == whyBulletCount {
			break
		}
		if e.value <= whyThreshold {
			continue
		}
		if s := bulletFor(e.factor, c.Plant, p, env); s != "" {
			bullets = append(bullets, s)
		}
	}
	for len(bullets) < whyBulletCount {
		bullets = append(bullets, fillerBullet)
	}
	return bullets
}

// bulletFor renders the per-factor sentence template. Factors without a
// template (wind, time to results) return empty and are skipped.
func bulletFor(factor string, pl plant.Record, p profile.Profile, env environment.Snapshot) string {
	switch factor {
	case FactorSeason:
		if monthInList(env.MonthNow, pl.SowingMonths[env.ClimateZone]) {
			return fmt.Sprintf("%s is inside its %s-zone sowing window right now.", env.MonthNow, env.ClimateZone)
		}
		return fmt.Sprintf("Sowing season in the %s zone is close to %s.", env.ClimateZone, env.MonthNow)
	case FactorSun:
		return fmt.Sprintf("Its %s requirement suits your %s site.", humanize(string(pl.SunNeed)), humanize(p.Site.SunExposure))
	case FactorMaintainability:
		return fmt.Sprintf("Care needs line up with your %s-maintenance preference.", p.Preferences.Maintainability)
	case FactorSiteFit:
		if p.Site.Containers && pl.ContainerOK {
			return "Happy in containers, matching your growing setup."
		}
		return "Its growth habit fits the space you have."
	case FactorPreferences:
		if p.Preferences.Goal == "edible" && pl.Edible {
			return "An edible pick that matches what you want to grow."
		}
		return "Matches your stated growing preferences."
	case FactorEcoBonus:
		return "Attracts pollinators and beneficial insects."
	default:
		return ""
	}
}

// maintainabilityLabel maps the raw [0, 1] score to a tier label.
func maintainabilityLabel(raw float64) string {
	switch {
	case raw >= 0.75:
		return "easy care"
	case raw >= 0.5:
		return "moderate"
	default:
		return "attentive"
	}
}

// humanize turns snake_case enum values into readable text.
func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// round1 rounds to one decimal for display.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
