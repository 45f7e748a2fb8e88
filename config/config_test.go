package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("parses a full setup", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
depth: 6
seed: 1234
blocks: [c2, e3]
red: manual
blue: ai
`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 6, cfg.Depth)
		require.Equal(t, uint64(1234), cfg.Seed)
		require.Equal(t, []string{"c2", "e3"}, cfg.Blocks)
		require.Equal(t, "manual", cfg.Red)
		require.Equal(t, "ai", cfg.Blue)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Default().Depth, cfg.Depth)
		require.Equal(t, Default().Red, cfg.Red)
		require.Equal(t, uint64(9), cfg.Seed)
	})

	t.Run("rejects an unreadable file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("rejects bad YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte("depth: [\n"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("a non-positive depth falls back to the default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte("depth: -1\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Default().Depth, cfg.Depth)
	})
}
