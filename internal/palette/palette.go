// Package palette holds the per-variation color maps that themify macros
// resolve against.
package palette

import (
	"fmt"
	"maps"
	"slices"
)

// Supported variations. Light is the default variation and the only one
// scoped to :root.
const (
	Light = "light"
	Dark  = "dark"
)

// DefaultVariation is the variation whose values are written in place.
const DefaultVariation = Light

// Palette maps variation name → variable name → hex color.
type Palette map[string]map[string]string

// Variations returns the palette's variation names: light, dark, then any
// other variation sorted by name. Only variations present in p are returned.
func (p Palette) Variations() []string {
	return OrderVariations(slices.Collect(maps.Keys(p)))
}

// OrderVariations sorts variation names so that light and dark come first.
func OrderVariations(names []string) []string {
	out := make([]string, 0, len(names))
	rest := make([]string, 0, len(names))
	var hasLight, hasDark bool
	for _, n := range names {
		switch n {
		case Light:
			hasLight = true
		case Dark:
			hasDark = true
		default:
			rest = append(rest, n)
		}
	}
	if hasLight {
		out = append(out, Light)
	}
	if hasDark {
		out = append(out, Dark)
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// Variables returns the variable names of one variation, sorted.
func (p Palette) Variables(variation string) []string {
	return slices.Sorted(maps.Keys(p[variation]))
}

// Resolve looks up the hex color of variable in variation.
func (p Palette) Resolve(variation, variable string) (string, error) {
	colors, ok := p[variation]
	if !ok {
		return "", NewUnknownVariableError(variation, variable)
	}
	hex, ok := colors[variable]
	if !ok || hex == "" {
		return "", NewUnknownVariableError(variation, variable)
	}
	return hex, nil
}

// Validate checks that every variation has a color map.
func (p Palette) Validate() error {
	if p == nil {
		return ErrEmptyPalette
	}
	for _, v := range p.Variations() {
		if p[v] == nil {
			return fmt.Errorf("expected map of colors for the variation name %s: %w", v, ErrEmptyPalette)
		}
	}
	return nil
}

// Clone returns a deep copy of p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for v, colors := range p {
		out[v] = maps.Clone(colors)
		if out[v] == nil {
			out[v] = map[string]string{}
		}
	}
	return out
}

// Merge returns a copy of base with override applied on top.
// Override wins per variable; variations absent from base are added.
// Neither input is modified.
func Merge(base, override Palette) Palette {
	out := base.Clone()
	if out == nil {
		out = Palette{}
	}
	for v, colors := range override {
		if out[v] == nil {
			out[v] = map[string]string{}
		}
		maps.Copy(out[v], colors)
	}
	return out
}
