package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmad/internal/logging"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("warn", logging.FormatJSON, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "kept", entry["msg"])
	require.Equal(t, "warn", entry["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("debug", logging.FormatConsole, &buf)
	require.NoError(t, err)

	log.Debug("hello")
	require.Contains(t, buf.String(), "DEBUG")
	require.Contains(t, buf.String(), "hello")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := logging.New("loud", logging.FormatJSON, nil)
	require.Error(t, err)

	_, err = logging.New("info", "xml", nil)
	require.ErrorIs(t, err, logging.ErrInvalidFormat)
}
