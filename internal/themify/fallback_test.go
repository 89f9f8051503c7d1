package themify_test

import (
	"testing"

	"bennypowers.dev/themify/internal/themify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitFallback(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	source := `p {
  color: themify({"light": "primary-100", "dark": ["primary-100", 0.5]});
  margin: 0;
}
a { color: blue; }`
	tree := parseTree(t, source)
	before := tree.String()

	bundle, err := th.EmitFallback(tree)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, before, tree.String(), "the tree is not mutated")

	wantCSS := `p {
  color: #f2f2f4;
}
.dark p {
  color: rgba(80, 80, 80, 0.5);
}
`
	assert.Equal(t, wantCSS, bundle.CSS)

	assert.Equal(t, map[string]string{
		"light": "p {  color: %[light, primary-100, 1]%;}",
		"dark":  ".dark p {  color: %[dark, primary-100, 0.5]%;}",
	}, bundle.Dynamic)

	data, err := bundle.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dark": ".dark p {  color: %[dark, primary-100, 0.5]%;}",
		"light": "p {  color: %[light, primary-100, 1]%;}"
	}`, string(data))
}

func TestEmitFallbackDocumentOrder(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	tree := parseTree(t, `a { color: themify({"light": "primary-100", "dark": "primary-700"}); }
b > i { background: themify({"light": "primary-700", "dark": "primary-100"}); }`)

	bundle, err := th.EmitFallback(tree)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Equal(t, `a {
  color: #f2f2f4;
}
.dark a {
  color: #c333d3;
}
b > i {
  background: #303030;
}
.dark b > i {
  background: #505050;
}
`, bundle.CSS)
	assert.Equal(t, "a {  color: %[light, primary-100, 1]%;}b > i {  background: %[light, primary-700, 1]%;}", bundle.Dynamic["light"])

	data, err := bundle.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `b > i`, "HTML characters are not escaped")
}

func TestEmitFallbackInsideMedia(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	tree := parseTree(t, `@media print { p { color: themify({"light": "primary-100", "dark": "primary-700"}); } }`)

	bundle, err := th.EmitFallback(tree)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "@media print {\np {\n  color: #f2f2f4;\n}\n}\n@media print {\n.dark p {\n  color: #c333d3;\n}\n}\n", bundle.CSS)
}

func TestEmitFallbackNothingThemed(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	bundle, err := th.EmitFallback(parseTree(t, `a { color: red; }`))
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestEmitFallbackError(t *testing.T) {
	th := newThemify(t, func(o *themify.Options) { o.ScrewIE11 = false })
	_, err := th.EmitFallback(parseTree(t, `a { color: themify({"light": "missing", "dark": "primary-100"}); }`))
	assert.ErrorContains(t, err, "the variable name 'missing' doesn't exist in your pallete")
}

func TestFallbackBundleMerge(t *testing.T) {
	a := &themify.FallbackBundle{CSS: "a {}\n", Dynamic: map[string]string{"light": "a {}", "dark": ".dark a {}"}}
	b := &themify.FallbackBundle{CSS: "b {}\n", Dynamic: map[string]string{"light": "b {}"}}

	merged := a.Merge(b)
	assert.Equal(t, "a {}\nb {}\n", merged.CSS)
	assert.Equal(t, map[string]string{"light": "a {}b {}", "dark": ".dark a {}"}, merged.Dynamic)
	assert.Equal(t, "a {}", a.Dynamic["light"], "inputs are not modified")

	var none *themify.FallbackBundle
	assert.Same(t, b, none.Merge(b))
	assert.Same(t, a, a.Merge(nil))
}
