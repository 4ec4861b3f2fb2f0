package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_UI(t *testing.T) {
	t.Run("DOJO_THEME overrides theme", func(t *testing.T) {
		t.Setenv("DOJO_THEME", "light")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "light", cfg.UI.Theme)
	})

	t.Run("DOJO_THEME empty leaves file value", func(t *testing.T) {
		t.Setenv("DOJO_THEME", "")

		cfg := DefaultConfig()
		cfg.UI.Theme = "dark"
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("NO_COLOR forces no_color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.UI.NoColor)
	})

	t.Run("NO_COLOR honors any non-empty value", func(t *testing.T) {
		t.Setenv("NO_COLOR", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.UI.NoColor)
	})

	t.Run("NO_COLOR unset does not clear file value", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		cfg := DefaultConfig()
		cfg.UI.NoColor = true
		cfg.applyEnvOverrides()

		assert.True(t, cfg.UI.NoColor)
	})
}

func TestEnvOverrides_Lessons(t *testing.T) {
	t.Run("DOJO_LESSONS_DIR overrides dir", func(t *testing.T) {
		t.Setenv("DOJO_LESSONS_DIR", "/srv/custom-lessons")

		cfg := DefaultConfig()
		cfg.Lessons.Dir = "/from/file"
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/custom-lessons", cfg.Lessons.Dir)
	})
}

func TestEnvOverrides_AppliedByLoad(t *testing.T) {
	t.Setenv("DOJO_THEME", "light")
	t.Setenv("NO_COLOR", "")
	t.Setenv("DOJO_LESSONS_DIR", "")

	t.Run("missing file still gets overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "light", cfg.UI.Theme)
	})

	t.Run("file value loses to env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		saved := DefaultConfig()
		saved.UI.Theme = "dark"
		require.NoError(t, saved.Save(path))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "light", cfg.UI.Theme)
	})
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	t.Run("disabled in production mode", func(t *testing.T) {
		cfg := &LoggingConfig{DebugMode: false, Categories: map[string]bool{"tui": true}}
		assert.False(t, cfg.IsCategoryEnabled("tui"))
	})

	t.Run("nil map enables everything in debug mode", func(t *testing.T) {
		cfg := &LoggingConfig{DebugMode: true}
		assert.True(t, cfg.IsCategoryEnabled("store"))
	})

	t.Run("explicit toggle wins", func(t *testing.T) {
		cfg := &LoggingConfig{
			DebugMode:  true,
			Categories: map[string]bool{"tui": false, "watch": true},
		}
		assert.False(t, cfg.IsCategoryEnabled("tui"))
		assert.True(t, cfg.IsCategoryEnabled("watch"))
		assert.True(t, cfg.IsCategoryEnabled("catalog"), "absent category defaults enabled")
	})
}
