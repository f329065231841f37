// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema describes typed configuration blocks and resolves them
// against configuration files and the environment.
//
// A Schema names its source files, the environment-variable prefix of its
// override merge and its fields. Nested blocks are schemas of their own:
// every block runs its own override merge with its own prefix and
// exclusions, and inherits nothing from the enclosing block except the
// source target when it declares none.
package schema

import (
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/internal/override"
	"github.com/MKhiriev/go-better-config/models"
)

// Getter computes a field value from the merged mapping of its block.
type Getter func(params models.FlatMap) string

// Field declares one configuration value of a block.
type Field struct {
	// Name is the accessor name of the field.
	Name string
	// Key is the flattened key the value is read from. Defaults to Name.
	Key string
	// Default is the literal used when the key is absent or its value does
	// not convert. Only meaningful when HasDefault is set.
	Default    string
	HasDefault bool
	// NoEnvOverride keeps the file value even when a matching environment
	// variable is set.
	NoEnvOverride bool
	// Getter, when set, replaces the mapping lookup.
	Getter Getter
}

// NewField returns a field read from the key equal to its name.
func NewField(name string) Field {
	return Field{Name: name, Key: name}
}

// From sets the flattened key the field is read from.
func (f Field) From(key string) Field {
	f.Key = key
	return f
}

// WithDefault sets the default literal of the field.
func (f Field) WithDefault(value string) Field {
	f.Default = value
	f.HasDefault = true
	return f
}

// NoOverride excludes the field from the environment override.
func (f Field) NoOverride() Field {
	f.NoEnvOverride = true
	return f
}

// WithGetter sets a custom getter.
func (f Field) WithGetter(g Getter) Field {
	f.Getter = g
	return f
}

func (f Field) key() string {
	if f.Key == "" {
		return f.Name
	}
	return f.Key
}

// Schema describes a configuration block.
type Schema struct {
	Name      string
	Format    loader.Format
	Target    string
	EnvPrefix string
	KeyPrefix string
	Mode      override.Mode
	Fields    []Field
	Blocks    []*Schema
}

// New returns an empty schema that reads its format's default target and
// looks up uppercased, underscore-separated variable names.
func New(name string) *Schema {
	return &Schema{Name: name, Mode: override.UppercaseDotToUnderscore}
}

// From sets the source format and target. An empty target selects the
// format's default file, or the enclosing block's target for nested blocks.
// A nested block keeps its own format unless it is [loader.FormatAuto], in
// which case the enclosing block's format is used.
func (s *Schema) From(format loader.Format, target string) *Schema {
	s.Format = format
	s.Target = target
	return s
}

// WithEnvPrefix sets the prefix prepended to every variable name.
func (s *Schema) WithEnvPrefix(prefix string) *Schema {
	s.EnvPrefix = prefix
	return s
}

// WithKeyPrefix restricts the block to the keys under a dotted prefix.
func (s *Schema) WithKeyPrefix(prefix string) *Schema {
	s.KeyPrefix = prefix
	return s
}

// WithMode sets the key normalization of the override merge.
func (s *Schema) WithMode(mode override.Mode) *Schema {
	s.Mode = mode
	return s
}

// Field appends fields to the schema.
func (s *Schema) Field(fields ...Field) *Schema {
	s.Fields = append(s.Fields, fields...)
	return s
}

// Block appends a nested block.
func (s *Schema) Block(block *Schema) *Schema {
	s.Blocks = append(s.Blocks, block)
	return s
}

func (s *Schema) excluded() models.KeySet {
	out := models.NewKeySet()
	for _, f := range s.Fields {
		if f.NoEnvOverride {
			out.Add(f.key())
		}
	}
	return out
}
