package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themify/internal/config"
	"bennypowers.dev/themify/internal/themify"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "", t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.CreateVars)
	assert.True(t, cfg.ScrewIE11)
	assert.True(t, cfg.SassPalette)
	assert.Equal(t, "dist", cfg.OutDir)

	_, err = cfg.Options()
	assert.ErrorIs(t, err, themify.ErrPaletteRequired)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "themify.yaml", `
createVars: false
classPrefix: theme-
screwIE11: false
pallete:
  light:
    primary-100: "#f2f2f4"
  dark:
    primary-100: "#505050"
fallback:
  cssPath: dist/theme_fallback.css
  dynamicPath: dist/theme_fallback.json
`)

	cfg, err := config.Load(viper.New(), "", dir)
	require.NoError(t, err)
	assert.False(t, cfg.CreateVars)
	assert.Equal(t, "theme-", cfg.ClassPrefix)
	assert.False(t, cfg.ScrewIE11)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "#505050", opts.Palette["dark"]["primary-100"])
	assert.Equal(t, filepath.Join(dir, "dist", "theme_fallback.css"), opts.Fallback.CSSPath)
	assert.Equal(t, filepath.Join(dir, "dist", "theme_fallback.json"), opts.Fallback.DynamicPath)
}

func TestLoadExplicitFileWithPaletteFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "palette.jsonc", `{
  // brand colors
  "light": {"Primary-100": "#f2f2f4"},
  "dark": {"Primary-100": "#505050"}
}`)
	file := writeFile(t, dir, "conf/custom.json", `{"palleteFile": "../palette.jsonc"}`)

	cfg, err := config.Load(viper.New(), file, "/nonexistent")
	require.NoError(t, err)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#f2f2f4", p["light"]["Primary-100"], "palette files keep their case")
}

func TestLoadPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
  "name": "app",
  // comments are allowed
  "themify": {
    "screwIE11": false,
    "pallete": {"light": {"a": "#ffffff"}, "dark": {"a": "#000000"}}
  }
}`)

	cfg, err := config.Load(viper.New(), "", dir)
	require.NoError(t, err)
	assert.False(t, cfg.ScrewIE11)
	assert.True(t, cfg.CreateVars, "defaults still apply")

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#000000", p["dark"]["a"])
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestReadPackageJSONConfig(t *testing.T) {
	t.Run("no package.json", func(t *testing.T) {
		cfg, err := config.ReadPackageJSONConfig(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("no themify key", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"name": "app"}`)
		cfg, err := config.ReadPackageJSONConfig(dir)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("themify is not an object", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{"themify": true}`)
		_, err := config.ReadPackageJSONConfig(dir)
		assert.ErrorContains(t, err, "themify must be an object")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "package.json", `{`)
		_, err := config.ReadPackageJSONConfig(dir)
		assert.ErrorContains(t, err, "failed to parse package.json")
	})
}

func TestPaletteTypeErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "themify.json", `{"pallete": {"light": {"a": 12}}}`)

	cfg, err := config.Load(viper.New(), "", dir)
	require.NoError(t, err)

	_, err = cfg.Palette()
	assert.ErrorContains(t, err, "color light.a must be a string")
}
