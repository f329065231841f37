package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/schema"
	"github.com/MKhiriev/go-better-config/models"
)

// fileConfig mirrors [StructuredConfig] with flattened configuration keys,
// so a file like
//
//	source:
//	  files: base.json,local.json
//	override:
//	  exclude: [password]
//
// binds directly.
type fileConfig struct {
	Source struct {
		Files    string `env:"files"`
		Format   string `env:"format"`
		EnvFiles string `env:"env_files"`
	} `envPrefix:"source."`

	Override struct {
		Prefix  string   `env:"prefix"`
		Exclude []string `env:"exclude"`
		Mode    string   `env:"mode"`
	} `envPrefix:"override."`

	Output struct {
		Format string `env:"format"`
	} `envPrefix:"output."`

	Log struct {
		Level string `env:"level"`
	} `envPrefix:"log."`
}

// parseFile resolves confctl's own configuration file. Its keys are
// overridable with the same CONFCTL_-prefixed variables the env layer reads.
func parseFile(path string, env environ.Environment) (*StructuredConfig, error) {
	s := schema.New("confctl").
		From(loader.FormatAuto, path).
		WithEnvPrefix(EnvPrefix).
		Field(schema.NewField("override.exclude").WithGetter(listGetter("override.exclude")))

	resolved, err := (&schema.Resolver{Env: env}).Resolve(context.Background(), s)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if err := resolved.Bind(&fc); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		Source: Source{
			Files:    fc.Source.Files,
			Format:   fc.Source.Format,
			EnvFiles: fc.Source.EnvFiles,
		},
		Override: Override{
			Prefix:  fc.Override.Prefix,
			Exclude: fc.Override.Exclude,
			Mode:    fc.Override.Mode,
		},
		Output: Output{Format: fc.Output.Format},
		Log:    Log{Level: fc.Log.Level},
	}, nil
}

// listGetter reads key either as a scalar comma-separated list or as a
// flattened sequence (key[0], key[1], ...).
func listGetter(key string) schema.Getter {
	return func(params models.FlatMap) string {
		if v, ok := params[key]; ok {
			return v
		}

		var items []string
		for i := 0; ; i++ {
			v, ok := params[fmt.Sprintf("%s[%d]", key, i)]
			if !ok {
				break
			}
			items = append(items, v)
		}
		return strings.Join(items, ",")
	}
}
