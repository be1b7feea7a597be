// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package profile

import (
	"reflect"
	"testing"
)

func strptr(s string) *string     { return &s }
func boolptr(b bool) *bool        { return &b }
func floatptr(f float64) *float64 { return &f }
func slcptr(s []string) *[]string { return &s }

func TestResolveEmptyInputYieldsDefaults(t *testing.T) {
	p, err := Resolve(Input{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Errorf("Resolve(empty) = %+v, want defaults", p)
	}
}

func TestResolveOverlaysOneLevelDeep(t *testing.T) {
	p, err := Resolve(Input{
		Site: &SiteInput{
			LocationType:   strptr("indoors"),
			Containers:     boolptr(true),
			ContainerSizes: slcptr([]string{"small", "medium"}),
		},
		Preferences: &PreferencesInput{
			Goal:     strptr("edible"),
			Fragrant: boolptr(true),
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if p.Site.LocationType != "indoors" {
		t.Errorf("LocationType = %q", p.Site.LocationType)
	}
	if !p.Site.Containers {
		t.Error("Containers should be overridden to true")
	}
	// Untouched fields keep their defaults.
	if p.Site.SunExposure != "full_sun" {
		t.Errorf("SunExposure = %q, want default full_sun", p.Site.SunExposure)
	}
	if p.Preferences.Goal != "edible" {
		t.Errorf("Goal = %q", p.Preferences.Goal)
	}
	if p.Preferences.Maintainability != "medium" {
		t.Errorf("Maintainability = %q, want default medium", p.Preferences.Maintainability)
	}
	if p.Practical.HasBasicTools != true {
		t.Error("Practical defaults should survive a nil section")
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "bad goal",
			input: Input{Preferences: &PreferencesInput{Goal: strptr("decorative")}},
		},
		{
			name:  "bad sun exposure",
			input: Input{Site: &SiteInput{SunExposure: strptr("blazing")}},
		},
		{
			name:  "negative area",
			input: Input{Site: &SiteInput{AreaM2: floatptr(-1)}},
		},
		{
			name:  "bad container size",
			input: Input{Site: &SiteInput{ContainerSizes: slcptr([]string{"enormous"})}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resolve(tt.input); err == nil {
				t.Error("Resolve() should reject invalid input")
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if _, err := Resolve(Input{}); err != nil {
		t.Fatalf("default profile must validate, got %v", err)
	}
}
