package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
}

func TestLoadThemeEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(themeKey, "light")
	assert.Equal(t, ThemeLight, LoadTheme())

	t.Setenv(themeKey, "not-a-theme")
	assert.Equal(t, ThemeDark, LoadTheme())
}

func TestSaveAndLoadTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(themeKey, "")

	// Nothing persisted yet: dark is the default.
	assert.Equal(t, ThemeDark, LoadTheme())

	require.NoError(t, SaveTheme(ThemeLight))
	assert.Equal(t, ThemeLight, LoadTheme())

	require.NoError(t, SaveTheme(ThemeDark))
	assert.Equal(t, ThemeDark, LoadTheme())
}

func TestConfigBuilder(t *testing.T) {
	cfg := DefaultConfig().WithTheme(ThemeLight).WithOutputDir("/tmp/cards")
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, "/tmp/cards", cfg.OutputDir)
	assert.Equal(t, 256, cfg.MaxDim)
}
