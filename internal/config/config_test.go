package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmad/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, 5, cfg.Decomposition.Size)
	require.Equal(t, 0.5, cfg.Decomposition.Threshold)
	require.Equal(t, 1.0, cfg.Decomposition.Bonus)
	require.Equal(t, 3, cfg.Scorer.Neighbours)
	require.Equal(t, "info", cfg.Log.Level)
	require.Len(t, cfg.AssoOptions(), 2)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
decomposition:
  size: 3
  threshold: 0.7
  penalty: 2
scorer:
  neighbours: 5
log:
  level: debug
  format: json
`)
	t.Setenv("BMAD_SCORER_NEIGHBOURS", "7")
	t.Setenv("BMAD_DECOMPOSITION_THRESHOLD", "0.9")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Decomposition.Size)
	require.Equal(t, 0.9, cfg.Decomposition.Threshold)
	require.Equal(t, 2.0, cfg.Decomposition.Penalty)
	require.Equal(t, 1.0, cfg.Decomposition.Bonus)
	require.Equal(t, 7, cfg.Scorer.Neighbours)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"size one", "decomposition:\n  size: 1\n"},
		{"threshold above one", "decomposition:\n  threshold: 1.5\n"},
		{"negative penalty", "decomposition:\n  penalty: -1\n"},
		{"negative neighbours", "scorer:\n  neighbours: -2\n"},
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown format", "log:\n  format: xml\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
