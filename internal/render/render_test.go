package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-better-config/internal/override"
	"github.com/MKhiriev/go-better-config/models"
)

var sample = models.FlatMap{
	"title":         "App <1>",
	"database.host": "db",
	"servers[0].ip": "10.0.0.1",
	"empty":         "",
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, sample, JSON))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]string(sample), got)
	assert.Contains(t, buf.String(), `"App <1>"`)
	assert.Less(t, strings.Index(buf.String(), "database.host"), strings.Index(buf.String(), "title"))
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, sample, YAML))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]string(sample), got)
}

func TestEncode_TOML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, sample, TOML))

	var got map[string]string
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]string(sample), got)
}

func TestEncode_Properties(t *testing.T) {
	var buf bytes.Buffer
	m := models.FlatMap{"b": "two\nlines", "a": `c:\dir`}

	require.NoError(t, Encode(&buf, m, Properties))

	assert.Equal(t, "a=c:\\\\dir\nb=two\\nlines\n", buf.String())
}

func TestEncode_NilMap(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, nil, JSON))

	assert.Equal(t, "{}\n", buf.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, sample, Format(42))

	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":           JSON,
		"json":       JSON,
		"YAML":       YAML,
		"yml":        YAML,
		"toml":       TOML,
		"properties": Properties,
		"kv":         Properties,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// ── ExplainTable ──────────────────────────────────────────────────────────────

func TestExplainTable(t *testing.T) {
	decisions := []override.Decision{
		{Key: "database.host", LookupKey: "DATABASE_HOST", Overridden: true, FileValue: "db", Value: "env-db"},
		{Key: "password", Excluded: true, FileValue: "secret", Value: "secret"},
		{Key: "title", LookupKey: "TITLE", FileValue: "App", Value: "App"},
	}
	var buf bytes.Buffer

	require.NoError(t, ExplainTable(&buf, decisions))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[0], "VALUE")
	assert.Contains(t, lines[1], "─┼─")
	assert.Contains(t, lines[2], "DATABASE_HOST")
	assert.Contains(t, lines[2], "env-db")
	assert.Contains(t, lines[3], "excluded")
	assert.Contains(t, lines[4], "file")
}

func TestSource(t *testing.T) {
	assert.Equal(t, "excluded", Source(override.Decision{Excluded: true}))
	assert.Equal(t, "env", Source(override.Decision{Overridden: true}))
	assert.Equal(t, "file", Source(override.Decision{}))
}
