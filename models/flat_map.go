// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// FlatMap is the canonical configuration representation: a single-level
// mapping from path-encoded keys to string values.
//
// Keys are dotted member paths ("database.host"), bracket-indexed sequence
// paths ("servers[0]"), or a combination of both ("servers[0].ip").
// Iteration order carries no meaning.
type FlatMap map[string]string

// Get returns the value stored under key and whether it was present.
func (m FlatMap) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Clone returns a shallow copy of m. A nil map clones to an empty map.
func (m FlatMap) Clone() FlatMap {
	out := make(FlatMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns all keys of m in lexical order.
func (m FlatMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Layer writes every entry of other into m, replacing values under equal
// keys. Keys only present in m are kept.
func (m FlatMap) Layer(other FlatMap) FlatMap {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Scope returns the entries of m that live under the dotted prefix, with the
// prefix stripped. The prefix may be given with or without a trailing dot.
// An empty prefix returns a copy of the whole map.
func (m FlatMap) Scope(prefix string) FlatMap {
	if prefix == "" {
		return m.Clone()
	}
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}

	out := make(FlatMap)
	for k, v := range m {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}
