// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package override merges environment variables over a flat configuration
// mapping.
//
// For every key of the base mapping the merge:
//  1. keeps the value untouched when the key is excluded (the environment is
//     not even consulted);
//  2. normalizes the key according to the [Mode];
//  3. prepends the prefix, if any;
//  4. replaces the value with the environment variable of that exact name
//     when it is set, and keeps the file value otherwise.
//
// The merge never introduces keys: the set of configurable keys is fixed by
// the base mapping. Every call is independent; a nested configuration block
// builds its own [Merger] and inherits nothing from its parent.
package override

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/models"
)

// Mode selects how a flat key is turned into an environment variable name.
type Mode uint8

const (
	// Identity uses the key verbatim.
	Identity Mode = iota
	// UppercaseDotToUnderscore uppercases the key and replaces '.' with '_',
	// so "database.host" is looked up as DATABASE_HOST.
	UppercaseDotToUnderscore
)

// String returns the mode name accepted by [ParseMode].
func (m Mode) String() string {
	switch m {
	case Identity:
		return "identity"
	case UppercaseDotToUnderscore:
		return "uppercase"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name: "identity" or "uppercase".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "identity", "exact":
		return Identity, nil
	case "uppercase", "upper":
		return UppercaseDotToUnderscore, nil
	default:
		return 0, ErrUnknownMode
	}
}

// Normalize applies the mode to key.
func (m Mode) Normalize(key string) string {
	if m == UppercaseDotToUnderscore {
		return strings.ReplaceAll(strings.ToUpper(key), ".", "_")
	}
	return key
}

// Merger holds the parameters of one override-merge scope.
type Merger struct {
	// Provider answers environment lookups.
	Provider environ.Provider
	// Prefix is prepended to the normalized key. Empty means no prefix.
	Prefix string
	// Excluded keys are never read from the environment.
	Excluded models.KeySet
	// Mode normalizes keys before lookup.
	Mode Mode
}

// LookupKey returns the environment variable name consulted for key.
func (m Merger) LookupKey(key string) string {
	return m.Prefix + m.Mode.Normalize(key)
}

// Merge returns a new mapping holding base with environment overrides
// applied. base is not modified.
func (m Merger) Merge(base models.FlatMap) models.FlatMap {
	out := make(models.FlatMap, len(base))
	for key, value := range base {
		out[key] = m.resolve(key, value).Value
	}
	return out
}

// Decision describes how Merge resolved one key.
type Decision struct {
	Key        string
	LookupKey  string
	Excluded   bool
	Overridden bool
	FileValue  string
	Value      string
}

// Explain returns the decision taken for every key of base, sorted by key.
func (m Merger) Explain(base models.FlatMap) []Decision {
	out := make([]Decision, 0, len(base))
	for key, value := range base {
		out = append(out, m.resolve(key, value))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (m Merger) resolve(key, value string) Decision {
	d := Decision{Key: key, FileValue: value, Value: value}
	if m.Excluded.Has(key) {
		d.Excluded = true
		return d
	}

	d.LookupKey = m.LookupKey(key)
	if m.Provider == nil {
		return d
	}
	if envValue, ok := m.Provider.Lookup(d.LookupKey); ok {
		d.Value = envValue
		d.Overridden = true
	}
	return d
}

// Merge applies environment overrides to base with the given prefix,
// excluded keys and mode.
func Merge(base models.FlatMap, p environ.Provider, prefix string, excluded models.KeySet, mode Mode) models.FlatMap {
	return Merger{Provider: p, Prefix: prefix, Excluded: excluded, Mode: mode}.Merge(base)
}

// MergeWithEnv merges using keys verbatim as variable names.
func MergeWithEnv(base models.FlatMap, p environ.Provider, prefix string, excluded models.KeySet) models.FlatMap {
	return Merge(base, p, prefix, excluded, Identity)
}

// MergeWithEnvUppercase merges using uppercased, underscore-separated
// variable names.
func MergeWithEnvUppercase(base models.FlatMap, p environ.Provider, prefix string, excluded models.KeySet) models.FlatMap {
	return Merge(base, p, prefix, excluded, UppercaseDotToUnderscore)
}

// Override merges every key of base from the environment, without prefix or
// exclusions.
func Override(base models.FlatMap, p environ.Provider, mode Mode) models.FlatMap {
	return Merge(base, p, "", nil, mode)
}
