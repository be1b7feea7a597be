// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package config loads Verdant configuration from layered sources.
//
// Precedence, lowest to highest:
//
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. VERDANT_-prefixed environment variables
//
// Nested keys use a double underscore in the environment, so
// VERDANT_RECOMMEND__LIMITS__MAX_COUNT overrides recommend.limits.max_count.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/environment"
	"github.com/tomtom215/verdant/internal/logging"
	"github.com/tomtom215/verdant/internal/plant"
	"github.com/tomtom215/verdant/internal/recommend"
)

// EnvPrefix namespaces Verdant's environment variables.
const EnvPrefix = "VERDANT_"

// DefaultConfigPaths lists where config files are searched, first match
// wins.
var DefaultConfigPaths = []string{
	"verdant.yaml",
	"verdant.yml",
	"/etc/verdant/config.yaml",
	"/etc/verdant/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "VERDANT_CONFIG_PATH"

// CatalogConfig locates the plant catalog sources.
type CatalogConfig struct {
	// Sources maps a category name to its CSV path.
	Sources map[string]string `koanf:"sources" json:"sources"`

	// ImageBaseDir is joined onto relative image paths from the catalog.
	ImageBaseDir string `koanf:"image_base_dir" json:"image_base_dir"`
}

// LoaderSources converts the configured source map to the catalog loader's
// typed form. Entries with unknown category names are dropped.
func (c CatalogConfig) LoaderSources() catalog.Sources {
	out := make(catalog.Sources, len(c.Sources))
	for name, path := range c.Sources {
		if category, ok := plant.ParseCategory(name); ok {
			out[category] = path
		}
	}
	return out
}

// NewLoader builds a catalog loader honouring the configured image base.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (c CatalogConfig) NewLoader(logger zerolog.Logger) *catalog.Loader {
	return catalog.NewLoader(logger, c.ImageBaseDir)
}

// EnvironmentConfig sets growing-environment fallbacks used when a
// request does not carry its own location data.
type EnvironmentConfig struct {
	// DefaultLocation is the location key consulted when a request names
	// no location.
	DefaultLocation string `koanf:"default_location" json:"default_location"`

	// DefaultClimateZone must parse as one of the five climate zones.
	DefaultClimateZone string `koanf:"default_climate_zone" json:"default_climate_zone"`
}

// Resolver builds an environment resolver over the given climate data,
// seeded with the configured default location and climate zone.
func (c EnvironmentConfig) Resolver(data map[string]environment.LocationData) *environment.Resolver {
	return &environment.Resolver{
		Data:            data,
		DefaultLocation: c.DefaultLocation,
		DefaultZone:     plant.ParseClimateZone(c.DefaultClimateZone),
	}
}

// Config is the full Verdant configuration.
type Config struct {
	Catalog     CatalogConfig     `koanf:"catalog" json:"catalog"`
	Environment EnvironmentConfig `koanf:"environment" json:"environment"`
	Recommend   recommend.Config  `koanf:"recommend" json:"recommend"`
	Logging     logging.Config    `koanf:"logging" json:"logging"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment layers.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Sources:      map[string]string{},
			ImageBaseDir: "images",
		},
		Environment: EnvironmentConfig{
			DefaultLocation:    "",
			DefaultClimateZone: "cool",
		},
		Recommend: *recommend.DefaultConfig(),
		Logging:   logging.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, the config file at path
// (or the default search paths when path is empty), and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	switch c.Environment.DefaultClimateZone {
	case "cool", "temperate", "subtropical", "tropical", "arid":
	default:
		return fmt.Errorf("environment.default_climate_zone %q is not a known zone", c.Environment.DefaultClimateZone)
	}
	for category, src := range c.Catalog.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("catalog.sources.%s is empty", category)
		}
	}
	return nil
}

// findConfigFile returns the first existing path from the env override
// and the default search list, or empty when none exist.
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransform maps VERDANT_RECOMMEND__LIMITS__MAX_COUNT to
// recommend.limits.max_count. Single underscores stay part of the key
// name so default_count style keys survive.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
