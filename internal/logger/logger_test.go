package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every entry carries the role field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", "debug", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", "", &buf)
	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, buf.Bytes())
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "garbage", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			NewLogger("lvl", tt.level, &bytes.Buffer{})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("filter", "warn", &buf)
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", "debug", path)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, bytes.TrimSpace(data))
	assert.Equal(t, "client", entry["role"])
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("discarded")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", "debug", &buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("op", "guess").Logger()
	child.Info().Msg("child")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "guess", entry["op"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role", "debug", &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromContext_EmptyContextNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
