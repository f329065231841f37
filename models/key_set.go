package models

import "sort"

// KeySet is a set of flat configuration keys. The override merge uses it to
// mark keys whose values must never be taken from the environment.
// A nil KeySet behaves as an empty set.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet holding keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys of the set in lexical order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
