// Package themify expands themify(...) macros in a stylesheet into
// per-variation CSS, and produces the legacy fallback bundle.
package themify

import (
	"bennypowers.dev/themify/internal/color"
	"bennypowers.dev/themify/internal/macro"
	"bennypowers.dev/themify/internal/palette"
)

// Themify holds a validated configuration. It is read-only after New
// and may be shared between compiles.
type Themify struct {
	opts       Options
	translator *color.Translator
}

// New validates opts. A missing palette is fatal.
func New(opts Options) (*Themify, error) {
	if opts.Palette == nil {
		return nil, ErrPaletteRequired
	}
	if err := opts.Palette.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Variations) == 0 {
		opts.Variations = []string{palette.Light, palette.Dark}
	}
	return &Themify{
		opts:       opts,
		translator: color.NewTranslator(opts.Palette),
	}, nil
}

// Options returns the configuration t was built with
func (t *Themify) Options() Options {
	return t.opts
}

func (t *Themify) defaultVariation() string {
	return t.opts.Variations[0]
}

func (t *Themify) nonDefaultVariations() []string {
	return t.opts.Variations[1:]
}

// VariantValues maps variation → fully substituted declaration value
type VariantValues map[string]string

// variantValues substitutes every macro in value once per variation
func (t *Themify) variantValues(value string, mode color.Mode) (VariantValues, error) {
	values := make(VariantValues, len(t.opts.Variations))
	for _, variation := range t.opts.Variations {
		substituted, err := macro.Replace(value, func(expr *macro.Expression) (string, error) {
			c, err := expr.Color(variation)
			if err != nil {
				return "", err
			}
			return t.translator.Translate(variation, c, mode)
		})
		if err != nil {
			return nil, err
		}
		values[variation] = substituted
	}
	return values, nil
}

// variationClass returns the class selector scoping a variation, e.g. ".dark"
func (t *Themify) variationClass(variation string) string {
	return "." + t.opts.ClassPrefix + variation
}

// prefixedSelectors scopes every selector of r under the variation class
func (t *Themify) prefixedSelectors(r Rule, variation string) []string {
	class := t.variationClass(variation)
	selectors := r.Selectors()
	out := make([]string, len(selectors))
	for i, s := range selectors {
		out[i] = class + " " + s
	}
	return out
}
