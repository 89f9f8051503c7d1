// Package runtime applies a theme override to a rendered document, either
// through native custom properties or by decoding the fallback bundle.
package runtime

import (
	"regexp"
	"strings"

	"bennypowers.dev/themify/internal/color"
	"bennypowers.dev/themify/internal/palette"
)

// GenerateNewVariables renders the custom property blocks for an override:
//
//	:root{--accent-300: 255, 0, 0;}.dark{--primary-100: 195, 51, 211;}
//
// Only the variations present in override are emitted.
func GenerateNewVariables(override palette.Palette) string {
	var b strings.Builder
	for _, variation := range override.Variations() {
		if variation == palette.DefaultVariation {
			b.WriteString(":root{")
		} else {
			b.WriteString("." + variation + "{")
		}
		for _, name := range override.Variables(variation) {
			b.WriteString("--" + name + ": " + normalizeColor(override[variation][name]) + ";")
		}
		b.WriteString("}")
	}
	return b.String()
}

// normalizeColor renders a color as "r, g, b". Values that are not colors,
// such as an existing triple, pass through unchanged.
func normalizeColor(value string) string {
	triple, err := color.RGBTriple(value)
	if err != nil {
		return value
	}
	return triple
}

var tokenPattern = regexp.MustCompile(`%\[(.*?)\]%`)

// Decode replaces every %[variation, variable, alpha]% token in text with
// rgba(r, g, b, alpha) resolved against merged.
func Decode(text string, merged palette.Palette) (string, error) {
	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(text, func(occurrence string) string {
		if firstErr != nil {
			return occurrence
		}
		rendered, err := decodeToken(occurrence[2:len(occurrence)-2], merged)
		if err != nil {
			firstErr = err
			return occurrence
		}
		return rendered
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func decodeToken(inner string, merged palette.Palette) (string, error) {
	tok, err := color.ParseToken(inner)
	if err != nil {
		return "", err
	}
	hex, err := merged.Resolve(tok.Variation, tok.Variable)
	if err != nil {
		return "", err
	}
	return tok.Render(hex)
}
