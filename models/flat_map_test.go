package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatMap_GetAndKeys(t *testing.T) {
	m := FlatMap{"b": "2", "a": "1", "a.b": ""}

	v, ok := m.Get("a.b")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "a.b", "b"}, m.Keys())
}

func TestFlatMap_CloneIsIndependent(t *testing.T) {
	m := FlatMap{"host": "db"}

	c := m.Clone()
	c["host"] = "changed"

	assert.Equal(t, "db", m["host"])
	assert.Equal(t, FlatMap{}, FlatMap(nil).Clone())
}

func TestFlatMap_LayerLaterWins(t *testing.T) {
	base := FlatMap{"host": "a", "port": "1", "servers[2]": "c"}

	got := base.Layer(FlatMap{"host": "b", "port": "", "servers[0]": "z"})

	assert.Equal(t, FlatMap{
		"host":       "b",
		"port":       "",
		"servers[0]": "z",
		"servers[2]": "c",
	}, got)
}

func TestFlatMap_Scope(t *testing.T) {
	m := FlatMap{
		"title":            "app",
		"database.host":    "db",
		"database.pool[0]": "x",
		"databases.other":  "no",
		"database":         "scalar",
	}

	tests := []struct {
		name   string
		prefix string
		want   FlatMap
	}{
		{"without dot", "database", FlatMap{"host": "db", "pool[0]": "x"}},
		{"with dot", "database.", FlatMap{"host": "db", "pool[0]": "x"}},
		{"empty prefix", "", m},
		{"unknown", "cache", FlatMap{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Scope(tt.prefix))
		})
	}
}
