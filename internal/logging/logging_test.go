package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/doze/internal/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, closeFn, err := logging.New(logging.Options{
		Writer: &buf,
		Level:  slog.LevelInfo,
	})
	require.NoError(t, err)

	defer closeFn()

	logger.Debug("hidden")
	logger.With(slog.String("component", "tracker")).Info("session stored", slog.Int64("id", 7))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "session stored", record["msg"])
	assert.Equal(t, "tracker", record["component"])
	assert.InDelta(t, 7, record["id"], 0)
}

func TestNewCreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "doze.log")

	logger, closeFn, err := logging.New(logging.Options{
		Path:  path,
		Level: slog.LevelDebug,
	})
	require.NoError(t, err)

	logger.Debug("first record")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "first record")
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
