package document

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
}

func TestUint_FitsInt64StoredAsInt(t *testing.T) {
	v := Uint(42)
	assert.Equal(t, NumberInt, v.NumberKind())
	assert.Equal(t, int64(42), v.AsInt())

	big := Uint(math.MaxUint64)
	assert.Equal(t, NumberUint, big.NumberKind())
	assert.Equal(t, uint64(math.MaxUint64), big.AsUint())
}

func TestValue_GetReturnsLastMember(t *testing.T) {
	v := Mapping(M("a", Int(1)), M("b", Int(2)), M("a", Int(3)))

	got, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), got.AsInt())

	_, ok = v.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, v.Len())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindSequence, "sequence"},
		{KindMapping, "mapping"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestFromAny_NestedStructure(t *testing.T) {
	in := map[string]any{
		"title": "app",
		"database": map[string]any{
			"port":    int64(5432),
			"enabled": true,
			"ratio":   0.5,
			"extra":   nil,
		},
		"servers": []any{"a", map[any]any{"ip": "10.0.0.1"}},
	}

	v, err := FromAny(in)
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind())

	// keys are sorted: database, servers, title
	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "database", members[0].Key)
	assert.Equal(t, "servers", members[1].Key)
	assert.Equal(t, "title", members[2].Key)

	db := members[0].Value
	port, ok := db.Get("port")
	require.True(t, ok)
	assert.Equal(t, int64(5432), port.AsInt())

	extra, ok := db.Get("extra")
	require.True(t, ok)
	assert.True(t, extra.IsNull())

	servers := members[1].Value
	require.Equal(t, KindSequence, servers.Kind())
	ip, ok := servers.Items()[1].Get("ip")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", ip.AsString())
}

func TestFromAny_TimeAndDuration(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	v, err := FromAny(map[string]any{"at": ts, "every": 90 * time.Second})
	require.NoError(t, err)

	at, _ := v.Get("at")
	assert.Equal(t, "2026-01-02T03:04:05Z", at.AsString())
	every, _ := v.Get("every")
	assert.Equal(t, "1m30s", every.AsString())
}

func TestFromAny_UnsupportedType(t *testing.T) {
	_, err := FromAny(map[string]any{"bad": map[string]any{"ch": make(chan int)}})
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "bad.ch", convErr.Path)
	assert.Equal(t, "chan int", convErr.Type)
	assert.ErrorIs(t, err, ErrValueConversion)
}
