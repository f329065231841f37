package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cast"

	"github.com/MKhiriev/go-better-config/models"
)

// Resolved is a resolved configuration block.
type Resolved struct {
	name   string
	params models.FlatMap
	fields map[string]Field
	values map[string]string
	blocks map[string]*Resolved
}

// Name returns the schema name of the block.
func (r *Resolved) Name() string {
	return r.name
}

// Params returns a copy of the merged mapping of the block.
func (r *Resolved) Params() models.FlatMap {
	return r.params.Clone()
}

// Fields returns the declared field names in lexical order.
func (r *Resolved) Fields() []string {
	out := make([]string, 0, len(r.fields))
	for name := range r.fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the raw value of a field.
func (r *Resolved) Lookup(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Block returns a nested block by schema name.
func (r *Resolved) Block(name string) (*Resolved, error) {
	b, ok := r.blocks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, name)
	}
	return b, nil
}

// String returns the value of a field.
func (r *Resolved) String(name string) (string, error) {
	v, ok := r.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	return v, nil
}

// Int returns the value of a field as an int.
func (r *Resolved) Int(name string) (int, error) {
	return convert(r, name, "int", parseSigned[int](strconv.IntSize))
}

// Int64 returns the value of a field as an int64.
func (r *Resolved) Int64(name string) (int64, error) {
	return convert(r, name, "int64", parseSigned[int64](64))
}

// Uint16 returns the value of a field as a uint16.
func (r *Resolved) Uint16(name string) (uint16, error) {
	return convert(r, name, "uint16", parseUnsigned[uint16](16))
}

// Float64 returns the value of a field as a float64.
func (r *Resolved) Float64(name string) (float64, error) {
	return convert(r, name, "float64", cast.ToFloat64E)
}

// Bool returns the value of a field as a bool.
func (r *Resolved) Bool(name string) (bool, error) {
	return convert(r, name, "bool", cast.ToBoolE)
}

// Duration returns the value of a field as a time.Duration.
func (r *Resolved) Duration(name string) (time.Duration, error) {
	return convert(r, name, "duration", cast.ToDurationE)
}

// parseSigned reads decimal integers only; "0755" is 755 and "0x10" is
// rejected.
func parseSigned[T ~int | ~int64](bits int) func(any) (T, error) {
	return func(v any) (T, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(cast.ToString(v)), 10, bits)
		return T(n), err
	}
}

func parseUnsigned[T ~uint16](bits int) func(any) (T, error) {
	return func(v any) (T, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(cast.ToString(v)), 10, bits)
		return T(n), err
	}
}

// convert applies conv to the field value and falls back to the declared
// default literal when the value does not convert.
func convert[T any](r *Resolved, name, expected string, conv func(any) (T, error)) (T, error) {
	var zero T

	raw, ok := r.values[name]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	if v, err := conv(raw); err == nil {
		return v, nil
	}

	if f := r.fields[name]; f.HasDefault {
		if v, err := conv(f.Default); err == nil {
			return v, nil
		}
	}

	return zero, &ValueError{Key: name, Expected: expected, Actual: raw}
}

// Bind fills dst, a pointer to a struct tagged for caarlos0/env, from the
// merged mapping of the block. Flattened keys act as variable names:
//
//	type Database struct {
//		Host string `env:"host" envDefault:"localhost"`
//		Port int    `env:"port"`
//	}
//	type Config struct {
//		Database Database `envPrefix:"database."`
//	}
//
// Resolved field values take precedence over the mapping under their key.
func (r *Resolved) Bind(dst any) error {
	vars := make(map[string]string, len(r.params)+len(r.values))
	for k, v := range r.params {
		vars[k] = v
	}
	for name, v := range r.values {
		vars[r.fields[name].key()] = v
	}

	if err := env.ParseWithOptions(dst, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("binding %s: %w", r.name, err)
	}
	return nil
}
