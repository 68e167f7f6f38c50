package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLogEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be valid JSON")
	return entry
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.Info().Msg("hello")

	entry := parseLogEntry(t, &buf)
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "travel-assistant", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("filtered out")
	assert.Empty(t, buf.String(), "info should be below the warn threshold")

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "nonsense"
	log := NewWithOutput(cfg, &buf)

	log.Debug().Msg("filtered out")
	assert.Empty(t, buf.String())

	log.Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "console"
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("console line")

	// Console output is human-readable text, not JSON.
	assert.Contains(t, buf.String(), "console line")
	var entry map[string]interface{}
	assert.Error(t, json.Unmarshal(buf.Bytes(), &entry))
}

func TestWithContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithRequestID("req-123").Info().Msg("with request id")
	entry := parseLogEntry(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])

	buf.Reset()
	log.WithSession("sess-456").Info().Msg("with session")
	entry = parseLogEntry(t, &buf)
	assert.Equal(t, "sess-456", entry["session_id"])

	buf.Reset()
	log.WithTool("flight_search").Info().Msg("with tool")
	entry = parseLogEntry(t, &buf)
	assert.Equal(t, "flight_search", entry["tool"])
}

func TestWithContext_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	_ = log.WithTool("policy_search")

	log.Info().Msg("parent entry")
	entry := parseLogEntry(t, &buf)
	assert.NotContains(t, entry, "tool")
}

func TestNop_ProducesNoOutput(t *testing.T) {
	log := Nop()

	// Must not panic and must stay silent.
	log.Info().Msg("into the void")
	log.Error().Msg("still nothing")
}
