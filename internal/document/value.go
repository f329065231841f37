// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document defines the generic document value every format parser
// converts into before flattening.
//
// A [Value] is a recursive sum type over Null, Bool, Number, String,
// Sequence and Mapping. It is transient: parsers build it, the flattener
// consumes it, and nothing keeps it afterwards.
package document

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	// KindNull is an explicit null / missing value.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is an integer or floating-point scalar.
	KindNumber
	// KindString is a string scalar.
	KindString
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a collection of string-keyed members.
	KindMapping
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// NumberKind tells how a numeric [Value] is stored.
type NumberKind uint8

const (
	// NumberInt is a signed 64-bit integer.
	NumberInt NumberKind = iota
	// NumberUint is an unsigned 64-bit integer above the int64 range.
	NumberUint
	// NumberFloat is a 64-bit float.
	NumberFloat
)

// Member is one key/value pair of a mapping.
type Member struct {
	Key   string
	Value Value
}

// Value is a generic document node. The zero Value is Null.
type Value struct {
	kind    Kind
	b       bool
	numKind NumberKind
	i       int64
	u       uint64
	f       float64
	s       string
	items   []Value
	members []Member
}

// Null returns a null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{kind: KindNumber, numKind: NumberInt, i: i} }

// Uint returns an unsigned integer value. Values that fit into int64 are
// stored as [NumberInt].
func Uint(u uint64) Value {
	if u <= 1<<63-1 {
		return Int(int64(u))
	}
	return Value{kind: KindNumber, numKind: NumberUint, u: u}
}

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindNumber, numKind: NumberFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence returns an ordered list value.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Mapping returns a mapping value with members in the given order.
func Mapping(members ...Member) Value {
	return Value{kind: KindMapping, members: members}
}

// M is shorthand for building a [Member].
func M(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload. It is false for non-bool values.
func (v Value) AsBool() bool { return v.b }

// NumberKind returns how a numeric value is stored.
func (v Value) NumberKind() NumberKind { return v.numKind }

// AsInt returns the signed integer payload.
func (v Value) AsInt() int64 { return v.i }

// AsUint returns the unsigned integer payload.
func (v Value) AsUint() uint64 { return v.u }

// AsFloat returns the float payload.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns the string payload.
func (v Value) AsString() string { return v.s }

// Items returns the elements of a sequence.
func (v Value) Items() []Value { return v.items }

// Members returns the members of a mapping.
func (v Value) Members() []Member { return v.members }

// Len returns the number of elements of a sequence or members of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the last member of a mapping named key.
func (v Value) Get(key string) (Value, bool) {
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}
