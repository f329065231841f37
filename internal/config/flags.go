package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by every confctl command.
const (
	FlagConfig   = "config"
	FlagFile     = "file"
	FlagFormat   = "format"
	FlagEnvFile  = "env-file"
	FlagPrefix   = "prefix"
	FlagExclude  = "exclude"
	FlagMode     = "mode"
	FlagOutput   = "output"
	FlagLogLevel = "log-level"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-c/--config     confctl configuration file
//	-f/--file       comma-separated configuration files, later ones win
//	--format        force the file format (json, yaml, toml, ini, env)
//	--env-file      comma-separated .env files loaded before the merge
//	--prefix        environment variable prefix of the override
//	--exclude       keys never overridden (repeatable, comma-separated)
//	--mode          key normalization: identity or uppercase
//	-o/--output     output format: json, yaml, toml or properties
//	--log-level     zerolog level written to stderr
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "confctl configuration file")
	fs.StringP(FlagFile, "f", "", "comma-separated configuration files; later files override earlier ones")
	fs.String(FlagFormat, "", "force the file format (json, yaml, toml, ini, env); detected from the extension when empty")
	fs.String(FlagEnvFile, "", "comma-separated .env files loaded into the environment before the merge")
	fs.String(FlagPrefix, "", "prefix prepended to every environment variable name")
	fs.StringSlice(FlagExclude, nil, "keys whose values are never taken from the environment")
	fs.String(FlagMode, "", "key normalization: identity or uppercase (default uppercase)")
	fs.StringP(FlagOutput, "o", "", "output format: json, yaml, toml or properties (default json)")
	fs.String(FlagLogLevel, "", "log level (default info)")
}

// parseFlags builds a configuration layer from the flags of fs that were
// set explicitly. Unset flags stay zero so they do not mask lower layers.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	strs := []struct {
		name string
		dst  *string
	}{
		{FlagConfig, &cfg.ConfigFilePath},
		{FlagFile, &cfg.Source.Files},
		{FlagFormat, &cfg.Source.Format},
		{FlagEnvFile, &cfg.Source.EnvFiles},
		{FlagPrefix, &cfg.Override.Prefix},
		{FlagMode, &cfg.Override.Mode},
		{FlagOutput, &cfg.Output.Format},
		{FlagLogLevel, &cfg.Log.Level},
	}
	for _, s := range strs {
		if !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", s.name, err)
		}
		*s.dst = v
	}

	if fs.Changed(FlagExclude) {
		v, err := fs.GetStringSlice(FlagExclude)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagExclude, err)
		}
		cfg.Override.Exclude = v
	}

	return cfg, nil
}
