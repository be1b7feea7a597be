// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package environment resolves the point-in-time environmental context a
// recommendation request runs against.
//
// Resolution is total: an unresolvable location falls back to a designated
// default location's data, then to hardcoded defaults. It never fails.
package environment

import (
	"time"

	"github.com/tomtom215/verdant/internal/plant"
)

// Snapshot is one point-in-time environmental context. The ambient numeric
// readings are carried for future scoring factors; current scoring uses
// only ClimateZone and MonthNow.
type Snapshot struct {
	// ClimateZone is always one of the five known zones.
	ClimateZone plant.ClimateZone `json:"climate_zone"`

	// MonthNow is always a valid full English month name.
	MonthNow string `json:"month_now"`

	UVIndex      float64 `json:"uv_index"`
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	WindSpeedKPH float64 `json:"wind_speed_kph"`
}

// Readings is the optional environment override block a climate-data entry
// may carry. Pointer fields distinguish absent keys from zero values.
type Readings struct {
	ClimateZone  *string  `json:"climate_zone,omitempty"`
	MonthNow     *string  `json:"month_now,omitempty"`
	UVIndex      *float64 `json:"uv_index,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	HumidityPct  *float64 `json:"humidity_pct,omitempty"`
	WindSpeedKPH *float64 `json:"wind_speed_kph,omitempty"`
}

// LocationData is one location's entry in the climate-data mapping.
type LocationData struct {
	// Environment carries explicit environment overrides, when present.
	Environment *Readings `json:"environment,omitempty"`

	// Timestamp is when the location's climate data was captured. Used to
	// derive the current month when no explicit month override exists.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Resolver resolves snapshots from a location-to-climate-data mapping.
type Resolver struct {
	// Data is the climate-data mapping supplied by the external
	// acquisition layer.
	Data map[string]LocationData

	// DefaultLocation is consulted when the requested location is absent.
	DefaultLocation string

	// DefaultZone is the climate zone assumed before any location data or
	// override applies. Empty means cool.
	DefaultZone plant.ClimateZone

	// Now supplies the current time; defaults to time.Now. Injected for
	// deterministic tests.
	Now func() time.Time
}

// Resolve builds a snapshot for a location. Precedence, lowest to highest:
// hardcoded defaults, the location's timestamp-derived month, the
// location's environment block, the caller's explicit zone override.
func (r *Resolver) Resolve(location string, zoneOverride string) Snapshot {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	zone := r.DefaultZone
	if zone == "" {
		zone = plant.ZoneCool
	}

	snap := Snapshot{
		ClimateZone:  zone,
		MonthNow:     now().Month().String(),
		TemperatureC: 15.0,
		HumidityPct:  60,
		WindSpeedKPH: 10,
	}

	entry, ok := r.Data[location]
	if !ok {
		entry, ok = r.Data[r.DefaultLocation]
	}
	if ok {
		applyEntry(&snap, entry)
	}

	if zoneOverride != "" {
		snap.ClimateZone = plant.ParseClimateZone(zoneOverride)
	}
	return snap
}

// applyEntry overlays one location entry onto the snapshot.
func applyEntry(snap *Snapshot, entry LocationData) {
	env := entry.Environment
	if env == nil {
		if !entry.Timestamp.IsZero() {
			snap.MonthNow = entry.Timestamp.Month().String()
		}
		return
	}

	if env.ClimateZone != nil {
		snap.ClimateZone = plant.ParseClimateZone(*env.ClimateZone)
	}
	if env.MonthNow != nil {
		if _, ok := plant.MonthIndex(*env.MonthNow); ok {
			snap.MonthNow = *env.MonthNow
		}
	} else if !entry.Timestamp.IsZero() {
		snap.MonthNow = entry.Timestamp.Month().String()
	}
	if env.UVIndex != nil {
		snap.UVIndex = *env.UVIndex
	}
	if env.TemperatureC != nil {
		snap.TemperatureC = *env.TemperatureC
	}
	if env.HumidityPct != nil {
		snap.HumidityPct = *env.HumidityPct
	}
	if env.WindSpeedKPH != nil {
		snap.WindSpeedKPH = *env.WindSpeedKPH
	}
}
