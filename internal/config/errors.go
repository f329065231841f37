package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a setting
// names an unknown value.
var (
	// ErrInvalidSourceConfigs indicates an unknown source file format.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidOverrideConfigs indicates an unknown override mode.
	ErrInvalidOverrideConfigs = errors.New("invalid override configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
