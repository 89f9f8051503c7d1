package themify

import (
	"fmt"
	"strings"

	"bennypowers.dev/themify/internal/color"
	"bennypowers.dev/themify/internal/palette"
)

// VarsCSS renders one custom property block per variation:
//
//	:root {--primary-100: 242, 242, 244;} .dark {--primary-100: 80, 80, 80;}
//
// Values are r, g, b triples so that rgba(var(--name), alpha) works.
func VarsCSS(p palette.Palette, classPrefix string) (string, error) {
	blocks := make([]string, 0, len(p))
	for _, variation := range p.Variations() {
		selector := ":root"
		if variation != palette.DefaultVariation {
			selector = "." + classPrefix + variation
		}

		vars := make([]string, 0, len(p[variation]))
		for _, name := range p.Variables(variation) {
			triple, err := color.RGBTriple(p[variation][name])
			if err != nil {
				return "", fmt.Errorf("variable %s in variation %s: %w", name, variation, err)
			}
			vars = append(vars, "--"+name+": "+triple+";")
		}
		blocks = append(blocks, selector+" {"+strings.Join(vars, " ")+"}")
	}
	return strings.Join(blocks, " "), nil
}

// SassMap renders the palette as a Sass map assignment for a
// preprocessing stage, e.g. $pallete: (light: (primary-100: #f2f2f4));
func SassMap(p palette.Palette) string {
	variations := make([]string, 0, len(p))
	for _, variation := range p.Variations() {
		entries := make([]string, 0, len(p[variation]))
		for _, name := range p.Variables(variation) {
			entries = append(entries, name+": "+p[variation][name])
		}
		variations = append(variations, variation+": ("+strings.Join(entries, ", ")+")")
	}
	return "$pallete: (" + strings.Join(variations, ", ") + ");"
}

// GenerateVars prepends the palette's custom property blocks to the tree,
// followed by the Sass palette map when enabled
func (t *Themify) GenerateVars(tree Tree) error {
	css, err := VarsCSS(t.opts.Palette, t.opts.ClassPrefix)
	if err != nil {
		return err
	}
	if t.opts.SassPalette {
		tree.PrependRaw(SassMap(t.opts.Palette))
	}
	return tree.PrependCSS(css)
}
