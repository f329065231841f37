// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the confctl command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-better-config/internal/config"
	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/logger"
	"github.com/MKhiriev/go-better-config/models"
)

// ErrKeyNotFound is returned by `confctl get` for a key the resolved
// configuration does not hold.
var ErrKeyNotFound = errors.New("key not found")

// App holds what every command shares.
type App struct {
	info   models.AppBuildInfo
	env    environ.Environment
	out    io.Writer
	errOut io.Writer
}

// Option configures an App.
type Option func(*App)

// WithEnvironment replaces the process environment.
func WithEnvironment(env environ.Environment) Option {
	return func(a *App) { a.env = env }
}

// WithOutput redirects command output and log output.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// NewRootCommand builds the confctl command tree.
func NewRootCommand(info models.AppBuildInfo, opts ...Option) *cobra.Command {
	a := &App{
		info:   info,
		env:    environ.OS(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "confctl",
		Short: "Resolve layered configuration files with environment overrides",
		Long: `confctl loads one or more configuration files (JSON, YAML, TOML, INI or .env),
flattens them into dotted keys, layers them so that later files win, and
replaces values with environment variables named after the keys.`,
		Version:       info.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newResolveCommand(),
		a.newFlattenCommand(),
		a.newExplainCommand(),
		a.newGetCommand(),
		a.newVersionCommand(),
	)

	return root
}

// session is the per-invocation state of a command.
type session struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	loader *loader.Loader
	target string
}

func (a *App) newSession(cmd *cobra.Command, files []string) (*session, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags(), a.env)
	if err != nil {
		return nil, err
	}

	log := logger.NewLoggerTo(a.errOut, "confctl")
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	log = log.WithStr("command", cmd.Name())

	if cfg.Source.EnvFiles != "" {
		if err := environ.LoadDotenv(a.env, environ.SplitTargets(cfg.Source.EnvFiles)); err != nil {
			return nil, err
		}
	}

	target := cfg.Source.Files
	if len(files) > 0 {
		target = strings.Join(files, ",")
	}

	ld := loader.New(cfg.SourceFormat(),
		loader.WithEnvironment(a.env),
		loader.WithPrefix(cfg.Override.Prefix),
		loader.WithMode(cfg.OverrideMode()),
		loader.WithLogger(log),
	)

	log.Debug().
		Str("target", target).
		Str("format", ld.Format().String()).
		Strs("excluded", cfg.Excluded().Sorted()).
		Msg("session ready")

	return &session{cfg: cfg, log: log, loader: ld, target: target}, nil
}

func (s *session) resolve() (models.FlatMap, error) {
	m, err := s.loader.LoadWithOverride(s.target, s.cfg.Excluded())
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", s.target, err)
	}
	return m, nil
}
