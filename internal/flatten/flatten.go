// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flatten turns a nested [document.Value] into a [models.FlatMap].
//
// Mapping members are joined with dots ("database.host"), sequence elements
// get bracketed indices ("servers[0]", "servers[0].ip"). Scalars are
// rendered as strings; nulls produce no entry. A scalar without a parent key
// (a document whose root is a scalar) produces nothing unless a root key is
// supplied through [FlattenUnder] or [IntoUnder].
//
// Flattening never fails. When several documents are flattened into the
// same map, a later write under an equal key replaces the earlier one; this
// is how multi-file layering works. Arrays are not merged: each index is
// its own key, so indices only present in an earlier document survive.
package flatten

import (
	"math"
	"strconv"

	"github.com/MKhiriev/go-better-config/internal/document"
	"github.com/MKhiriev/go-better-config/models"
)

// Flatten returns a new flat map built from v.
func Flatten(v document.Value) models.FlatMap {
	out := make(models.FlatMap)
	Into(out, v)
	return out
}

// FlattenUnder returns a new flat map built from v with root as the initial
// parent key.
func FlattenUnder(v document.Value, root string) models.FlatMap {
	out := make(models.FlatMap)
	IntoUnder(out, v, root)
	return out
}

// Into adds the entries of v to dst.
func Into(dst models.FlatMap, v document.Value) {
	walk(dst, v, "", false)
}

// IntoUnder adds the entries of v to dst with root as the initial parent key.
func IntoUnder(dst models.FlatMap, v document.Value, root string) {
	walk(dst, v, root, true)
}

func walk(dst models.FlatMap, v document.Value, parent string, hasParent bool) {
	switch v.Kind() {
	case document.KindMapping:
		for _, m := range v.Members() {
			key := m.Key
			if hasParent {
				key = parent + "." + m.Key
			}
			walk(dst, m.Value, key, true)
		}
	case document.KindSequence:
		for i, item := range v.Items() {
			key := strconv.Itoa(i)
			if hasParent {
				key = parent + "[" + key + "]"
			}
			walk(dst, item, key, true)
		}
	case document.KindString:
		if hasParent {
			dst[parent] = v.AsString()
		}
	case document.KindNumber:
		if hasParent {
			dst[parent] = FormatNumber(v)
		}
	case document.KindBool:
		if hasParent {
			dst[parent] = strconv.FormatBool(v.AsBool())
		}
	case document.KindNull:
	}
}

// FormatNumber renders a numeric value in canonical decimal form: integers
// without a decimal point or exponent, floats as the shortest decimal that
// round-trips (1.0 renders as "1", 1e21 as "1000000000000000000000").
// Non-finite floats render as "NaN", "+Inf" and "-Inf".
func FormatNumber(v document.Value) string {
	switch v.NumberKind() {
	case document.NumberUint:
		return strconv.FormatUint(v.AsUint(), 10)
	case document.NumberFloat:
		f := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatInt(v.AsInt(), 10)
	}
}
