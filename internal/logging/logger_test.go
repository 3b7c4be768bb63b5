package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToJSONInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := NewWithWriter(Options{Env: "test"}, &buf)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "visible", rec["message"])
	assert.Equal(t, "v", rec["k"])
	assert.Equal(t, "test", rec["env"])
	assert.Equal(t, "shareit", rec["app"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewWithWriter(Options{Level: "ERROR"}, &buf)

	logger.Warn().Msg("dropped")
	assert.Empty(t, buf.String())

	logger.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shareit.log")

	var buf bytes.Buffer
	logger, closer := NewWithWriter(Options{File: path}, &buf)
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}
