package themify

import (
	"bennypowers.dev/themify/internal/palette"
)

// Fallback configures the legacy browser bundle outputs
type Fallback struct {
	// CSSPath receives the literal-color CSS
	CSSPath string `json:"cssPath" mapstructure:"cssPath"`

	// DynamicPath receives the JSON of token templates, replaced at runtime
	DynamicPath string `json:"dynamicPath" mapstructure:"dynamicPath"`
}

// Options configures a compile
type Options struct {
	// CreateVars prepends the palette's custom property blocks.
	// Disable it when the variables are injected some other way.
	CreateVars bool

	// Palette is required
	Palette palette.Palette

	// ClassPrefix is prepended to generated variation classes, e.g. "theme-" → .theme-dark
	ClassPrefix string

	// ScrewIE11 skips the legacy fallback bundle when true
	ScrewIE11 bool

	// SassPalette prepends a $pallete map for a Sass preprocessing stage
	SassPalette bool

	// Variations lists the variations to expand, default first.
	// Empty means light, dark.
	Variations []string

	Fallback Fallback
}

// DefaultOptions returns the default compile options, without a palette
func DefaultOptions() Options {
	return Options{
		CreateVars:  true,
		ClassPrefix: "",
		ScrewIE11:   true,
		SassPalette: true,
		Variations:  []string{palette.Light, palette.Dark},
	}
}
