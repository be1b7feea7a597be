// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"

	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/profile"
)

// RelaxIfNeeded widens eligibility tolerances in fixed stages until the
// candidate pool reaches target, recording a human-readable note per stage
// that added candidates. Each stage tests the unfiltered universe, skipping
// plants already in the pool. Relaxation only ever adds candidates; when
// both stages still leave the pool short, the shortfall is returned as-is
// rather than invented around.
func RelaxIfNeeded(eligible, all []plant.Record, p profile.Profile, env environment.Snapshot, target int) ([]plant.Record, []string) {
	pool := make([]plant.Record, len(eligible))
	copy(pool, eligible)

	seen := make(map[string]struct{}, len(pool))
	for _, pl := range pool {
		seen[plant.CanonicalID(pl)] = struct{}{}
	}

	var notes []string

	if len(pool) < target {
		added := 0
		prev, next := adjacentMonths(env.MonthNow)
		for _, pl := range all {
			id := plant.CanonicalID(pl)
			if _, ok := seen[id]; ok {
				continue
			}
			months := pl.SowingMonths[env.ClimateZone]
			if monthInList(env.MonthNow, months) || monthInList(prev, months) || monthInList(next, months) {
				pool = append(pool, pl)
				seen[id] = struct{}{}
				added++
			}
		}
		if added > 0 {
			notes = append(notes, fmt.Sprintf("Season window relaxed to adjacent months, adding %d candidates.", added))
		}
	}

	if len(pool) < target {
		added := 0
		for _, pl := range all {
			id := plant.CanonicalID(pl)
			if _, ok := seen[id]; ok {
				continue
			}
			// A sun need that cannot be resolved on the scale should not
			// block recommendations at this stage.
			if _, ok := pl.SunNeed.Index(); !ok || sunWithinDistance(p.Site.SunExposure, pl.SunNeed, 2) {
				pool = append(pool, pl)
				seen[id] = struct{}{}
				added++
			}
		}
		if added > 0 {
			notes = append(notes, fmt.Sprintf("Sun tolerance widened, adding %d candidates.", added))
		}
	}

	return pool, notes
}

// adjacentMonths returns the previous and next calendar months, wrapping
// across the year boundary. An unresolvable month name returns itself for
// both neighbours.
func adjacentMonths(month string) (prev, next string) {
	i, ok := plant.MonthIndex(month)
	if !ok {
		return month, month
	}
	return plant.Months[(i+11)%12], plant.Months[(i+1)%12]
}
