// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader turns configuration targets into flat maps.
//
// A target is a comma-separated list of files. Every file is parsed with the
// adapter of its format, flattened, and layered over the files before it:
// for equal flattened keys the later file wins. Keys of earlier files that a
// later file does not mention are kept, including array indices beyond the
// length of a shorter array in a later file.
//
// The environment format is different: its target lists .env files whose
// variables are loaded into the environment, and the resulting environment
// snapshot is the flat map.
package loader

import (
	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/flatten"
	"github.com/MKhiriev/go-better-config/internal/logger"
	"github.com/MKhiriev/go-better-config/internal/override"
	"github.com/MKhiriev/go-better-config/internal/validators"
	"github.com/MKhiriev/go-better-config/models"
)

// Loader reads configuration targets of one format.
type Loader struct {
	format Format
	fs     FileSystem
	env    environ.Environment
	prefix string
	mode   override.Mode
	log    *logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvironment sets the environment used for overrides and .env loading.
// The default is the process environment.
func WithEnvironment(env environ.Environment) Option {
	return func(l *Loader) {
		if env != nil {
			l.env = env
		}
	}
}

// WithPrefix sets the variable-name prefix of the override merge.
func WithPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithMode sets the key normalization of the override merge. The default is
// override.UppercaseDotToUnderscore.
func WithMode(mode override.Mode) Option {
	return func(l *Loader) { l.mode = mode }
}

// WithLogger sets the loader's logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = logger.OrNop(log) }
}

// WithFS sets the file system files are read from.
func WithFS(fs FileSystem) Option {
	return func(l *Loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// New returns a Loader for format.
func New(format Format, opts ...Option) *Loader {
	l := &Loader{
		format: format,
		fs:     OSFS{},
		env:    environ.OS(),
		mode:   override.UppercaseDotToUnderscore,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Format returns the loader's format.
func (l *Loader) Format() Format {
	return l.format
}

// Environment returns the environment the loader reads overrides from.
func (l *Loader) Environment() environ.Environment {
	return l.env
}

// Merger returns the override merger the loader applies, with excluded as
// its exclusion set.
func (l *Loader) Merger(excluded models.KeySet) override.Merger {
	return override.Merger{
		Provider: l.env,
		Prefix:   l.prefix,
		Excluded: excluded,
		Mode:     l.mode,
	}
}

// Read loads target into a flat map without any environment override. An
// empty target selects the format's default file.
func (l *Loader) Read(target string) (models.FlatMap, error) {
	if target == "" {
		target = l.format.DefaultTarget()
	}
	if target == "" {
		return nil, ErrNoTarget
	}

	if l.format == FormatEnv {
		return l.readEnv(target)
	}

	paths, err := validators.SplitPaths(target)
	if err != nil {
		return nil, err
	}

	acc := make(models.FlatMap)
	for _, path := range paths {
		fileMap, err := l.readFile(path)
		if err != nil {
			return nil, err
		}
		acc.Layer(fileMap)
		l.log.Debug().
			Str("path", path).
			Int("keys", len(fileMap)).
			Msg("configuration file loaded")
	}

	return acc, nil
}

// Load reads target and applies the environment override to every key.
func (l *Loader) Load(target string) (models.FlatMap, error) {
	return l.LoadWithOverride(target, nil)
}

// LoadWithOverride reads target and applies the environment override to
// every key not in excluded. The environment format is returned as read:
// it already is the environment.
func (l *Loader) LoadWithOverride(target string, excluded models.KeySet) (models.FlatMap, error) {
	base, err := l.Read(target)
	if err != nil {
		return nil, err
	}
	if l.format == FormatEnv {
		return base, nil
	}

	merged := l.Merger(excluded).Merge(base)
	l.log.Debug().
		Str("prefix", l.prefix).
		Str("mode", l.mode.String()).
		Int("keys", len(merged)).
		Msg("environment override applied")

	return merged, nil
}

// Explain returns the override decision for every key of base, sorted by
// key. For the environment format no key is overridden, matching
// [Loader.LoadWithOverride].
func (l *Loader) Explain(base models.FlatMap, excluded models.KeySet) []override.Decision {
	if l.format != FormatEnv {
		return l.Merger(excluded).Explain(base)
	}

	out := make([]override.Decision, 0, len(base))
	for _, k := range base.Keys() {
		out = append(out, override.Decision{
			Key:       k,
			LookupKey: k,
			Excluded:  excluded.Has(k),
			FileValue: base[k],
			Value:     base[k],
		})
	}
	return out
}

func (l *Loader) readFile(path string) (models.FlatMap, error) {
	if err := validators.CheckFileFS(l.fs.Stat, path); err != nil {
		return nil, &LoadFileError{Path: path, Err: err}
	}

	format := l.format
	if format == FormatAuto {
		detected, err := FormatFromPath(path)
		if err != nil {
			return nil, &LoadFileError{Path: path, Err: err}
		}
		format = detected
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, &LoadFileError{Path: path, Err: err}
	}

	doc, err := Parse(format, data)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	return flatten.Flatten(doc), nil
}

func (l *Loader) readEnv(target string) (models.FlatMap, error) {
	paths := environ.SplitTargets(target)
	if err := environ.LoadDotenv(l.env, paths); err != nil {
		return nil, err
	}
	l.log.Debug().Strs("paths", paths).Msg("dotenv files loaded")

	return models.FlatMap(l.env.Environ()), nil
}
