// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/logging"
	"github.com/tomtom215/verdant/internal/plant"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verdant.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Recommend.Limits.DefaultCount != 5 || cfg.Recommend.Limits.MaxCount != 20 {
		t.Errorf("recommend limits = %+v, want defaults 5/20", cfg.Recommend.Limits)
	}
	if cfg.Recommend.Weights.Season != 0.25 {
		t.Errorf("season weight = %v, want 0.25", cfg.Recommend.Weights.Season)
	}
	if cfg.Environment.DefaultClimateZone != "cool" {
		t.Errorf("default zone = %q, want cool", cfg.Environment.DefaultClimateZone)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
catalog:
  sources:
    herb: data/herbs.csv
  image_base_dir: assets/images
environment:
  default_climate_zone: temperate
recommend:
  diversity:
    max_per_category: 2
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Catalog.Sources["herb"] != "data/herbs.csv" {
		t.Errorf("herb source = %q", cfg.Catalog.Sources["herb"])
	}
	if cfg.Catalog.ImageBaseDir != "assets/images" {
		t.Errorf("image base = %q", cfg.Catalog.ImageBaseDir)
	}
	if cfg.Environment.DefaultClimateZone != "temperate" {
		t.Errorf("zone = %q, want temperate", cfg.Environment.DefaultClimateZone)
	}
	if cfg.Recommend.Diversity.MaxPerCategory != 2 {
		t.Errorf("diversity cap = %d, want 2", cfg.Recommend.Diversity.MaxPerCategory)
	}
	// Untouched sections keep their defaults.
	if cfg.Recommend.Limits.MaxCount != 20 {
		t.Errorf("max count = %d, want default 20", cfg.Recommend.Limits.MaxCount)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
recommend:
  limits:
    default_count: 8
`)
	t.Setenv("VERDANT_RECOMMEND__LIMITS__DEFAULT_COUNT", "10")
	t.Setenv("VERDANT_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Recommend.Limits.DefaultCount != 10 {
		t.Errorf("default count = %d, want env override 10", cfg.Recommend.Limits.DefaultCount)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with an explicit missing file should fail")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "bad climate zone",
			yaml: "environment:\n  default_climate_zone: lunar\n",
			wantErr: "default_climate_zone",
		},
		{
			name: "empty catalog source",
			yaml: "catalog:\n  sources:\n    herb: \"  \"\n",
			wantErr: "catalog.sources.herb",
		},
		{
			name: "invalid recommend limits",
			yaml: "recommend:\n  limits:\n    default_count: 0\n",
			wantErr: "default_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("Load() = nil error, want validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderSources(t *testing.T) {
	c := CatalogConfig{Sources: map[string]string{
		"herb":      "data/herbs.csv",
		"Flower":    "data/flowers.csv",
		"succulent": "data/succulents.csv",
	}}

	got := c.LoaderSources()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 with the unknown category dropped", len(got))
	}
	if got[plant.CategoryHerb] != "data/herbs.csv" {
		t.Errorf("herb source = %q", got[plant.CategoryHerb])
	}
	if got[plant.CategoryFlower] != "data/flowers.csv" {
		t.Errorf("flower source = %q", got[plant.CategoryFlower])
	}
}

func TestCatalogNewLoaderUsesImageBase(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "herbs.csv")
	if err := os.WriteFile(csvPath, []byte("Plant Name,Image\nBasil,basil.jpg\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	c := CatalogConfig{
		Sources:      map[string]string{"herb": csvPath},
		ImageBaseDir: "assets/images",
	}
	records := c.NewLoader(logging.Nop()).Load(c.LoaderSources())
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if got := records[0].ImagePath; got != "assets/images/herb/basil.jpg" {
		t.Errorf("ImagePath = %q, want the configured base honoured", got)
	}
}

func TestEnvironmentResolverBridge(t *testing.T) {
	c := EnvironmentConfig{
		DefaultLocation:    "home",
		DefaultClimateZone: "subtropical",
	}
	october := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)
	r := c.Resolver(map[string]environment.LocationData{
		"home": {Timestamp: october},
	})

	snap := r.Resolve("unknown-location", "")
	if snap.ClimateZone != plant.ZoneSubtropical {
		t.Errorf("zone = %q, want configured subtropical default", snap.ClimateZone)
	}
	if snap.MonthNow != "October" {
		t.Errorf("month = %q, want October from the default location", snap.MonthNow)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"VERDANT_LOGGING__LEVEL", "logging.level"},
		{"VERDANT_RECOMMEND__LIMITS__MAX_COUNT", "recommend.limits.max_count"},
		{"VERDANT_ENVIRONMENT__DEFAULT_CLIMATE_ZONE", "environment.default_climate_zone"},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
