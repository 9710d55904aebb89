// Package config carries the CLI's settings and persists the single
// flag that survives between runs: the studio theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Theme is the studio color theme flag.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const themeKey = "TINTBOX_THEME"

// Config holds all configuration for the CLI
type Config struct {
	// Studio theme
	Theme Theme

	// Output directory for exported palette cards
	OutputDir string

	// Bounds applied when downsampling images before extraction
	MaxDim int
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Theme:  ThemeDark,
		MaxDim: 256,
	}
}

// WithTheme sets the studio theme
func (c *Config) WithTheme(t Theme) *Config {
	c.Theme = t
	return c
}

// WithOutputDir sets the output directory
func (c *Config) WithOutputDir(dir string) *Config {
	c.OutputDir = dir
	return c
}

// Toggle flips between the dark and light themes.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// LoadTheme reads the persisted theme flag. The TINTBOX_THEME
// environment variable wins over the config file; with neither set the
// dark theme is the default.
func LoadTheme() Theme {
	if t, ok := parseTheme(os.Getenv(themeKey)); ok {
		return t
	}

	path, err := themeFilePath()
	if err != nil {
		return ThemeDark
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return ThemeDark
	}
	if t, ok := parseTheme(env[themeKey]); ok {
		return t
	}
	return ThemeDark
}

// SaveTheme persists the theme flag to the config file, creating the
// config directory on first use.
func SaveTheme(t Theme) error {
	path, err := themeFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Keep any other entries already in the file.
	env, err := godotenv.Read(path)
	if err != nil {
		env = map[string]string{}
	}
	env[themeKey] = string(t)

	return godotenv.Write(env, path)
}

func themeFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "tintbox", "tintbox.env"), nil
}

func parseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), true
	}
	return "", false
}
