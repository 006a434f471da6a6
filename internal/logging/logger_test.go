package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSetsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelInfo, Output: buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	DebugLog("hidden")
	assert.Empty(t, buf.String(), "debug is below the configured level")

	Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info("structured", KeyGoalID, "g1", KeyValue, 42.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured", entry["msg"])
	assert.Equal(t, "g1", entry[KeyGoalID])
	assert.InDelta(t, 42.5, entry[KeyValue], 1e-9)
}

func TestDebugFlag(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })

	Init(Config{Level: slog.LevelDebug, Output: &bytes.Buffer{}})
	assert.True(t, Debug)

	Init(Config{Level: slog.LevelInfo, Output: &bytes.Buffer{}})
	assert.False(t, Debug)
}

func TestLogOperation(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	LogOperation("goal_create", KeyGoalID, "g1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "operation", entry["msg"])
	assert.Equal(t, "goal_create", entry[KeyOperation])
	assert.Equal(t, "g1", entry[KeyGoalID])
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	With(KeyOperation, "streak").Info("computed", KeyCount, 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "streak", entry[KeyOperation])
	assert.EqualValues(t, 3, entry[KeyCount])
}
