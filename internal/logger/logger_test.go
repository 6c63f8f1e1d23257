package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_DevelopmentIsTextWithDebug(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, true))

	l.Debug("board created", "board_id", "b1")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=\"board created\"")
	assert.Contains(t, out, "board_id=b1")
}

func TestNewHandler_ProductionIsJSONWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, false))

	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Info("http request", "status", 200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "http request", entry["msg"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestInit_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(false, "")

	assert.NotSame(t, prev, slog.Default())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	Flush()
}
