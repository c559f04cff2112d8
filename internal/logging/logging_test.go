package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "console"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", "rows", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "rows=3")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Debug("event")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNewDefaultsToConsole(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, Options{})
	require.NoError(t, err)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, Options{Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("anything"))
}
