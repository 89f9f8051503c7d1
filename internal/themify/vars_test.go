package themify_test

import (
	"testing"

	"bennypowers.dev/themify/internal/palette"
	"bennypowers.dev/themify/internal/themify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarsCSS(t *testing.T) {
	css, err := themify.VarsCSS(testPalette(), "")
	require.NoError(t, err)
	assert.Equal(t,
		":root {--primary-100: 242, 242, 244; --primary-700: 48, 48, 48;} .dark {--primary-100: 80, 80, 80; --primary-700: 195, 51, 211;}",
		css)

	t.Run("class prefix", func(t *testing.T) {
		css, err := themify.VarsCSS(testPalette(), "theme-")
		require.NoError(t, err)
		assert.Contains(t, css, ".theme-dark {")
		assert.Contains(t, css, ":root {")
	})

	t.Run("invalid color", func(t *testing.T) {
		_, err := themify.VarsCSS(palette.Palette{"light": {"bad": "#zzzzzz"}}, "")
		assert.ErrorContains(t, err, "variable bad in variation light")
	})
}

func TestSassMap(t *testing.T) {
	assert.Equal(t,
		"$pallete: (light: (primary-100: #f2f2f4, primary-700: #303030), dark: (primary-100: #505050, primary-700: #c333d3));",
		themify.SassMap(testPalette()))
}

func TestGenerateVars(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.SassPalette = true })
	tree := parseTree(t, `a { color: red; }`)

	require.NoError(t, th.GenerateVars(tree))

	want := `:root {
  --primary-100: 242, 242, 244;
  --primary-700: 48, 48, 48;
}

.dark {
  --primary-100: 80, 80, 80;
  --primary-700: 195, 51, 211;
}

$pallete: (light: (primary-100: #f2f2f4, primary-700: #303030), dark: (primary-100: #505050, primary-700: #c333d3));

a {
  color: red;
}
`
	assert.Equal(t, want, tree.String())
}
