// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/override"
	"github.com/MKhiriev/go-better-config/internal/render"
	"github.com/MKhiriev/go-better-config/models"
)

// EnvPrefix prefixes every environment variable read by confctl itself.
const EnvPrefix = "CONFCTL_"

// StructuredConfig is the top-level configuration container for confctl.
// It is populated by merging defaults, an optional configuration file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable name additionally carries [EnvPrefix].
type StructuredConfig struct {
	// Source describes the configuration files to resolve.
	Source Source `envPrefix:"SOURCE_"`

	// Override holds the environment-override settings of the merge.
	Override Override `envPrefix:"OVERRIDE_"`

	// Output selects how resolved configuration is printed.
	Output Output `envPrefix:"OUTPUT_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to confctl's own configuration
	// file, in any supported format.
	// Env: CONFCTL_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Source describes the configuration files to resolve.
type Source struct {
	// Files is a comma-separated list of configuration files; later files
	// override earlier ones.
	// Env: CONFCTL_SOURCE_FILES
	Files string `env:"FILES"`

	// Format forces a file format. Empty means detection by extension.
	// Env: CONFCTL_SOURCE_FORMAT
	Format string `env:"FORMAT"`

	// EnvFiles is a comma-separated list of .env files loaded into the
	// environment before the merge; later files win.
	// Env: CONFCTL_SOURCE_ENV_FILES
	EnvFiles string `env:"ENV_FILES"`
}

// Override holds the environment-override settings of the merge.
type Override struct {
	// Prefix is prepended to every environment variable name looked up.
	// Env: CONFCTL_OVERRIDE_PREFIX
	Prefix string `env:"PREFIX"`

	// Exclude lists flat keys that are never overridden.
	// Env: CONFCTL_OVERRIDE_EXCLUDE (comma-separated)
	Exclude []string `env:"EXCLUDE"`

	// Mode is the key normalization: "identity" or "uppercase".
	// Env: CONFCTL_OVERRIDE_MODE
	Mode string `env:"MODE"`
}

// Output selects how resolved configuration is printed.
type Output struct {
	// Format is one of "json", "yaml", "toml" or "properties".
	// Env: CONFCTL_OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: CONFCTL_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Override: Override{Mode: override.UppercaseDotToUnderscore.String()},
		Output:   Output{Format: render.JSON.String()},
		Log:      Log{Level: "info"},
	}
}

// GetStructuredConfig loads, merges, and validates confctl's configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Configuration file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags registered with [RegisterFlags] on fs
func GetStructuredConfig(fs *pflag.FlagSet, env environ.Environment) (*StructuredConfig, error) {
	return newConfigBuilder(env).
		withEnv().
		withFlags(fs).
		withFile().
		build()
}

// SourceFormat returns the parsed source format.
func (cfg *StructuredConfig) SourceFormat() loader.Format {
	f, _ := loader.ParseFormat(cfg.Source.Format)
	return f
}

// OverrideMode returns the parsed override mode.
func (cfg *StructuredConfig) OverrideMode() override.Mode {
	m, err := override.ParseMode(cfg.Override.Mode)
	if err != nil {
		return override.UppercaseDotToUnderscore
	}
	return m
}

// OutputFormat returns the parsed output format.
func (cfg *StructuredConfig) OutputFormat() render.Format {
	f, _ := render.ParseFormat(cfg.Output.Format)
	return f
}

// Excluded returns the keys excluded from the override. Entries may
// themselves be comma-separated lists.
func (cfg *StructuredConfig) Excluded() models.KeySet {
	out := models.NewKeySet()
	for _, entry := range cfg.Override.Exclude {
		for _, key := range strings.Split(entry, ",") {
			if key = strings.TrimSpace(key); key != "" {
				out.Add(key)
			}
		}
	}
	return out
}
