// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package profile defines the user preference profile consumed by the
// recommendation pipeline.
//
// A profile is built per request by overlaying the caller's partial input
// onto a complete default profile, one level deep per sub-section. By the
// time scoring runs, no field is ever absent.
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Profile is one recommendation request's fully resolved user input.
// Immutable once resolved; never persisted by the core.
type Profile struct {
	Site        Site        `json:"site"`
	Preferences Preferences `json:"preferences"`
	Practical   Practical   `json:"practical"`
}

// Site describes the growing site.
type Site struct {
	// LocationType is the kind of growing space, e.g. "backyard",
	// "balcony" or "indoors". Only "indoors" is load-bearing for
	// filtering.
	LocationType string `json:"location_type" validate:"required"`

	// AreaM2 is the usable growing area in square metres.
	AreaM2 float64 `json:"area_m2" validate:"gte=0"`

	// SunExposure is the site's light level on the three-point scale.
	SunExposure string `json:"sun_exposure" validate:"oneof=bright_shade part_sun full_sun"`

	// WindExposure is one of sheltered, moderate or windy.
	WindExposure string `json:"wind_exposure" validate:"oneof=sheltered moderate windy"`

	// Containers reports whether planting happens in containers.
	Containers bool `json:"containers"`

	// ContainerSizes lists chosen container size tags (small/medium/large).
	ContainerSizes []string `json:"container_sizes" validate:"dive,oneof=small medium large"`
}

// Preferences describes what the user wants to grow.
type Preferences struct {
	// Goal is edible, ornamental or mixed.
	Goal string `json:"goal" validate:"oneof=edible ornamental mixed"`

	// EdibleTypes lists the kinds of edibles of interest.
	EdibleTypes []string `json:"edible_types"`

	// OrnamentalTypes lists the kinds of ornamentals of interest.
	OrnamentalTypes []string `json:"ornamental_types"`

	// Colors lists preferred flower colors.
	Colors []string `json:"colors"`

	// Fragrant reports whether fragrance matters.
	Fragrant bool `json:"fragrant"`

	// Maintainability is the user's tolerance tier: low, medium or high.
	Maintainability string `json:"maintainability" validate:"oneof=low medium high"`

	// Watering describes watering commitment.
	Watering string `json:"watering"`

	// TimeToResults is quick, standard or patient.
	TimeToResults string `json:"time_to_results" validate:"oneof=quick standard patient"`

	// SeasonIntent is free-form planting-time intent.
	SeasonIntent string `json:"season_intent"`

	// PollenSensitive reports pollen sensitivity.
	PollenSensitive bool `json:"pollen_sensitive"`
}

// Practical describes practical constraints.
type Practical struct {
	Budget        string `json:"budget"`
	HasBasicTools bool   `json:"has_basic_tools"`
	OrganicOnly   bool   `json:"organic_only"`
}

// Default returns the complete default profile every request starts from.
func Default() Profile {
	return Profile{
		Site: Site{
			LocationType: "backyard",
			AreaM2:       10,
			SunExposure:  "full_sun",
			WindExposure: "moderate",
			Containers:   false,
		},
		Preferences: Preferences{
			Goal:            "mixed",
			Maintainability: "medium",
			Watering:        "standard",
			TimeToResults:   "standard",
			SeasonIntent:    "now",
		},
		Practical: Practical{
			Budget:        "medium",
			HasBasicTools: true,
		},
	}
}

// Input is the caller's partial profile. Nil fields fall back to the
// default profile; the overlay is one level deep per sub-section.
type Input struct {
	Site        *SiteInput        `json:"site,omitempty"`
	Preferences *PreferencesInput `json:"preferences,omitempty"`
	Practical   *PracticalInput   `json:"practical,omitempty"`
}

// SiteInput is a partial Site.
type SiteInput struct {
	LocationType   *string   `json:"location_type,omitempty"`
	AreaM2         *float64  `json:"area_m2,omitempty"`
	SunExposure    *string   `json:"sun_exposure,omitempty"`
	WindExposure   *string   `json:"wind_exposure,omitempty"`
	Containers     *bool     `json:"containers,omitempty"`
	ContainerSizes *[]string `json:"container_sizes,omitempty"`
}

// PreferencesInput is a partial Preferences.
type PreferencesInput struct {
	Goal            *string   `json:"goal,omitempty"`
	EdibleTypes     *[]string `json:"edible_types,omitempty"`
	OrnamentalTypes *[]string `json:"ornamental_types,omitempty"`
	Colors          *[]string `json:"colors,omitempty"`
	Fragrant        *bool     `json:"fragrant,omitempty"`
	Maintainability *string   `json:"maintainability,omitempty"`
	Watering        *string   `json:"watering,omitempty"`
	TimeToResults   *string   `json:"time_to_results,omitempty"`
	SeasonIntent    *string   `json:"season_intent,omitempty"`
	PollenSensitive *bool     `json:"pollen_sensitive,omitempty"`
}

// PracticalInput is a partial Practical.
type PracticalInput struct {
	Budget        *string `json:"budget,omitempty"`
	HasBasicTools *bool   `json:"has_basic_tools,omitempty"`
	OrganicOnly   *bool   `json:"organic_only,omitempty"`
}

var validate = validator.New()

// Resolve overlays the caller's partial input onto the default profile and
// validates the result. Resolution is total for well-formed values: any
// omitted field takes its default.
func Resolve(in Input) (Profile, error) {
	p := Default()

	if s := in.Site; s != nil {
		overlayString(&p.Site.LocationType, s.LocationType)
		overlayFloat(&p.Site.AreaM2, s.AreaM2)
		overlayString(&p.Site.SunExposure, s.SunExposure)
		overlayString(&p.Site.WindExposure, s.WindExposure)
		overlayBool(&p.Site.Containers, s.Containers)
		overlayStrings(&p.Site.ContainerSizes, s.ContainerSizes)
	}

	if pr := in.Preferences; pr != nil {
		overlayString(&p.Preferences.Goal, pr.Goal)
		overlayStrings(&p.Preferences.EdibleTypes, pr.EdibleTypes)
		overlayStrings(&p.Preferences.OrnamentalTypes, pr.OrnamentalTypes)
		overlayStrings(&p.Preferences.Colors, pr.Colors)
		overlayBool(&p.Preferences.Fragrant, pr.Fragrant)
		overlayString(&p.Preferences.Maintainability, pr.Maintainability)
		overlayString(&p.Preferences.Watering, pr.Watering)
		overlayString(&p.Preferences.TimeToResults, pr.TimeToResults)
		overlayString(&p.Preferences.SeasonIntent, pr.SeasonIntent)
		overlayBool(&p.Preferences.PollenSensitive, pr.PollenSensitive)
	}

	if pc := in.Practical; pc != nil {
		overlayString(&p.Practical.Budget, pc.Budget)
		overlayBool(&p.Practical.HasBasicTools, pc.HasBasicTools)
		overlayBool(&p.Practical.OrganicOnly, pc.OrganicOnly)
	}

	if err := validate.Struct(p); err != nil {
		return Profile{}, fmt.Errorf("invalid preference profile: %w", err)
	}
	return p, nil
}

func overlayString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func overlayFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func overlayBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func overlayStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = *src
	}
}
