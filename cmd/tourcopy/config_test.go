package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tourcopy"
	main "github.com/fwojciec/tourcopy/cmd/tourcopy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults with file values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "wordCeiling: 30\ntruncate: outside-tags\n")

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 30, cfg.WordCeiling)
		assert.Equal(t, tourcopy.DefaultListLimit, cfg.ListLimit)
		assert.Equal(t, tourcopy.DefaultFAQVisible, cfg.FAQVisible)

		d, err := cfg.Disclosure()
		require.NoError(t, err)
		assert.Equal(t, tourcopy.TruncateOutsideTags, d.Policy)
		assert.Equal(t, 30, d.WordCeiling)
	})

	t.Run("accepts an empty file", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(), cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(writeConfig(t, "wordLimit: 30\n"))

		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})

	t.Run("rejects negative limits", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(writeConfig(t, "listLimit: -1\n"))

		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})

	t.Run("reads the fetch rate", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(writeConfig(t, "fetchRate: 0.5\n"))

		require.NoError(t, err)
		assert.InDelta(t, 0.5, cfg.FetchRate, 1e-9)

		_, err = main.LoadConfig(writeConfig(t, "fetchRate: -1\n"))
		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})

	t.Run("fails for a missing explicit file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
	})
}

func TestConfig_Disclosure(t *testing.T) {
	t.Parallel()

	cfg := main.DefaultConfig()
	cfg.Truncate = "smart"

	_, err := cfg.Disclosure()

	assert.Equal(t, tourcopy.EINVALID, tourcopy.ErrorCode(err))
}
