// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/logger"
	"github.com/MKhiriev/go-better-config/internal/override"
	"github.com/MKhiriev/go-better-config/internal/render"
)

// validate checks that the final merged [StructuredConfig] names a known
// source format, override mode, output format and log level.
//
// Returns nil if the configuration is valid, or every violation joined.
func (cfg *StructuredConfig) validate() error {
	var errs error

	if _, err := loader.ParseFormat(cfg.Source.Format); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: format %q", ErrInvalidSourceConfigs, cfg.Source.Format))
	}

	if _, err := override.ParseMode(cfg.Override.Mode); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: mode %q", ErrInvalidOverrideConfigs, cfg.Override.Mode))
	}

	if _, err := render.ParseFormat(cfg.Output.Format); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: format %q", ErrInvalidOutputConfigs, cfg.Output.Format))
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level))
	}

	return errs
}
