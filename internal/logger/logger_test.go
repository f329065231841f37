package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLoggerTo_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLoggerTo_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLoggerTo_CallerFieldName verifies that the caller field is named "func".
func TestNewLoggerTo_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "caller-role")
	l.Info().Msg("where")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNewLoggerTo_CallerFieldName")
}

// TestNewLoggerTo_DefaultLevelIsInfo verifies that debug entries are dropped
// until the level is lowered.
func TestNewLoggerTo_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "level-role")

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, l.SetLevel("debug"))
	l.Debug().Msg("visible")
	assert.NotEmpty(t, buf.String())
}

func TestSetLevel_Invalid(t *testing.T) {
	l := Nop()
	assert.Error(t, l.SetLevel("loud"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := Nop()
	assert.Same(t, l, OrNop(l))
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithStr_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "r").WithStr("resolution_id", "abc")

	l.Info().Msg("tagged")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["resolution_id"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_RoundTrip verifies that a logger stored with WithContext is
// returned by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "ctx-role")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}
