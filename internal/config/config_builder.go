package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-better-config/internal/environ"
)

type configBuilder struct {
	configs []*StructuredConfig
	env     environ.Environment
	err     error
}

func newConfigBuilder(env environ.Environment) *configBuilder {
	if env == nil {
		env = environ.OS()
	}
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		env:     env,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := defaults()
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, b.env); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withFile loads the configuration file named by the layers added so far
// and places it below all of them.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path, b.env)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = slices.Insert(b.configs, 0, fileCfg)
	return b
}
