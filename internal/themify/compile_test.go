package themify_test

import (
	"testing"

	"bennypowers.dev/themify/internal/macro"
	"bennypowers.dev/themify/internal/palette"
	"bennypowers.dev/themify/internal/themify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	opts := themify.DefaultOptions()
	opts.Palette = testPalette()
	opts.SassPalette = false
	opts.ScrewIE11 = false
	th, err := themify.New(opts)
	require.NoError(t, err)

	result, err := th.Compile(`p { color: themify({"light": "primary-100", "dark": "primary-700"}); }`)
	require.NoError(t, err)

	want := `:root {
  --primary-100: 242, 242, 244;
  --primary-700: 48, 48, 48;
}

.dark {
  --primary-100: 80, 80, 80;
  --primary-700: 195, 51, 211;
}

p {
  color: rgba(var(--primary-100), 1);
}

.dark p {
  color: rgba(var(--primary-700), 1);
}
`
	assert.Equal(t, want, result.CSS)
	require.NotNil(t, result.Bundle, "the fallback reads the tree before expansion")
	assert.Equal(t, "p {\n  color: #f2f2f4;\n}\n.dark p {\n  color: #c333d3;\n}\n", result.Bundle.CSS)
	assert.Len(t, result.Expand.Created, 1)
}

func TestCompileScrewIE11SkipsBundle(t *testing.T) {
	th := newThemify(t)
	result, err := th.Compile(`p { color: themify({"light": "primary-100", "dark": "primary-700"}); }`)
	require.NoError(t, err)
	assert.Nil(t, result.Bundle)
}

func TestCompileExample(t *testing.T) {
	th := newThemify(t)
	result, err := th.Compile(`p { color: themify({"light":"primary-100","dark":"primary-100"}); }`)
	require.NoError(t, err)
	assert.Contains(t, result.CSS, "color: rgba(var(--primary-100), 1);")
	assert.Empty(t, result.Expand.Created)
}

func TestCompileAbortsOnMacroError(t *testing.T) {
	opts := themify.DefaultOptions()
	opts.Palette = testPalette()
	opts.ScrewIE11 = false
	th, err := themify.New(opts)
	require.NoError(t, err)

	result, err := th.Compile(`a { color: themify({"light": "primary-100"}); }`)
	assert.ErrorIs(t, err, macro.ErrMissingVariation)
	assert.ErrorContains(t, err, `{"light": "primary-100"}`, "the error names the fragment")
	assert.Nil(t, result)
}

func TestCompileIgnoresKeywordWithoutInvocation(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	source := `p { font-family: themify-sans; }`

	result, err := th.Compile(source)
	require.NoError(t, err)
	assert.Nil(t, result.Bundle, "nothing themed, nothing to write")
	assert.Empty(t, result.Expand.Mutated)
	assert.Zero(t, result.Expand.Aggregated)
	assert.Equal(t, "p {\n  font-family: themify-sans;\n}\n", result.CSS)
}

func TestCompileOutputIsStable(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) {
		o.ScrewIE11 = false
		o.Palette = palette.Palette{
			"light": {"themify-bg": "#ffffff"},
			"dark":  {"themify-bg": "#000000"},
		}
	})

	first, err := th.Compile(`p { background: themify({"light": "themify-bg", "dark": "themify-bg"}); }`)
	require.NoError(t, err)
	require.Equal(t, "p,\n.dark p {\n  background: rgba(var(--themify-bg), 1);\n}\n", first.CSS)

	second, err := th.Compile(first.CSS)
	require.NoError(t, err)
	assert.Equal(t, first.CSS, second.CSS)
	assert.Nil(t, second.Bundle)
	assert.Empty(t, second.Expand.Mutated)
}
