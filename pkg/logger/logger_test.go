package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden %d", 1)
	log.Warn("visible %d", 2)
	log.Error("also visible %s", "x")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible 2")
	assert.Contains(t, out, "also visible x")
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestLogger_WritesToFile(t *testing.T) {
	path := t.TempDir() + "/logs/app.log"

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("booking %d created", 42)
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}
