package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
createVars: false
sassPalette: false
screwIE11: false
palleteFile: palette.json
input: ["src/**/*.css"]
outDir: out
fallback:
  cssPath: out/theme_fallback.css
  dynamicPath: out/theme_fallback.json
`

const testPalette = `{
  "light": {"primary-100": "#f2f2f4"},
  "dark": {"primary-100": "#505050"}
}`

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"themify.yaml":  testConfig,
		"palette.json":  testPalette,
		"src/app.css":   `p { color: themify({"light": "primary-100", "dark": ["primary-100", 0.5]}); }`,
		"override.json": `{"dark": {"primary-100": "#c333d3"}}`,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	dir := setupProject(t)

	_, err := run(t, "build", "-C", dir, "--log-level", "error")
	require.NoError(t, err)

	css, err := os.ReadFile(filepath.Join(dir, "out", "src", "app.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".dark p {")
	assert.FileExists(t, filepath.Join(dir, "out", "theme_fallback.css"))
	assert.FileExists(t, filepath.Join(dir, "out", "theme_fallback.json"))

	t.Run("check passes when up to date", func(t *testing.T) {
		_, err := run(t, "build", "-C", dir, "--check", "--log-level", "error")
		assert.NoError(t, err)
	})

	t.Run("check fails when stale", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.css"),
			[]byte(`p { color: themify({"light": "primary-100", "dark": "primary-100"}); }`), 0o644))

		out, err := run(t, "build", "-C", dir, "--check", "--log-level", "error")
		assert.ErrorContains(t, err, "outputs are out of date")
		assert.Contains(t, out, "-  color: rgba(var(--primary-100), 0.5);")
	})
}

func TestVarsCommand(t *testing.T) {
	dir := setupProject(t)
	out, err := run(t, "vars", "-C", dir, "--sass")
	require.NoError(t, err)
	assert.Equal(t,
		":root {--primary-100: 242, 242, 244;} .dark {--primary-100: 80, 80, 80;}\n$pallete: (light: (primary-100: #f2f2f4), dark: (primary-100: #505050));\n",
		out)
}

func TestApplyCommand(t *testing.T) {
	dir := setupProject(t)
	override := filepath.Join(dir, "override.json")

	t.Run("native", func(t *testing.T) {
		out, err := run(t, "apply", "-C", dir, "--override", override)
		require.NoError(t, err)
		assert.Equal(t, ".dark{--primary-100: 195, 51, 211;}\n", out)
	})

	t.Run("legacy", func(t *testing.T) {
		_, err := run(t, "build", "-C", dir, "--log-level", "error")
		require.NoError(t, err)

		out, err := run(t, "apply", "-C", dir, "--override", override, "--legacy")
		require.NoError(t, err)
		assert.Equal(t, ".dark p {  color: rgba(195, 51, 211, 0.5);}\n", out)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
}
