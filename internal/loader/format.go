package loader

import (
	"path/filepath"
	"strings"
)

// Format identifies a configuration source format.
type Format uint8

const (
	// FormatAuto detects the format of every file from its extension.
	FormatAuto Format = iota
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
	// FormatTOML is a TOML document.
	FormatTOML
	// FormatINI is an INI file; sections become the first key segment.
	FormatINI
	// FormatEnv reads the process environment after loading .env files.
	FormatEnv
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatINI:
		return "ini"
	case FormatEnv:
		return "env"
	default:
		return "unknown"
	}
}

// DefaultTarget returns the file loaded when no target is given.
// FormatAuto has no default target.
func (f Format) DefaultTarget() string {
	switch f {
	case FormatJSON:
		return "config.json"
	case FormatYAML:
		return "config.yml"
	case FormatTOML:
		return "config.toml"
	case FormatINI:
		return "config.ini"
	case FormatEnv:
		return ".env"
	default:
		return ""
	}
}

// ParseFormat parses a format name. The empty string and "auto" select
// FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "ini":
		return FormatINI, nil
	case "env", "dotenv":
		return FormatEnv, nil
	default:
		return FormatAuto, ErrUnsupportedFormat
	}
}

// FormatFromPath detects a file format from the path extension. Only
// structured formats are detected; .env files must be requested explicitly.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".ini", ".cfg", ".conf":
		return FormatINI, nil
	default:
		return FormatAuto, ErrUnsupportedFormat
	}
}
