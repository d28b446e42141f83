package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, uint32(1<<20), cfg.DefaultCapacity)
	require.Equal(t, "list", cfg.DefaultMode)
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqbitctl.yaml")
	contents := "default-capacity: 500\ndefault-mode: count\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(500), cfg.DefaultCapacity)
	require.Equal(t, "count", cfg.DefaultMode)
}
