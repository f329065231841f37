// Package render writes flat configuration maps for humans and for other
// tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-better-config/models"
)

// Format is an output format.
type Format uint8

const (
	JSON Format = iota
	YAML
	TOML
	Properties
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case Properties:
		return "properties"
	default:
		return "unknown"
	}
}

// ParseFormat parses an output format name. The empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "properties", "props", "kv":
		return Properties, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes m to w in the given format. Keys are written in lexical
// order by every encoder.
func Encode(w io.Writer, m models.FlatMap, format Format) error {
	if m == nil {
		m = models.FlatMap{}
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]string(m))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]string(m)); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(map[string]string(m))
	case Properties:
		return encodeProperties(w, m)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

var propertiesEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func encodeProperties(w io.Writer, m models.FlatMap) error {
	for _, k := range m.Keys() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, propertiesEscaper.Replace(m[k])); err != nil {
			return err
		}
	}
	return nil
}
