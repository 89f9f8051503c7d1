package color

import (
	"fmt"
	"strings"

	"bennypowers.dev/themify/internal/macro"
	"bennypowers.dev/themify/internal/palette"
)

// Mode selects the textual encoding of a translated color
type Mode int

const (
	// ModeCSSVar renders rgba(var(--name), alpha)
	ModeCSSVar Mode = iota
	// ModeCSSColor renders the literal palette color
	ModeCSSColor
	// ModeDynamic renders a %[variation, name, alpha]% token for runtime substitution
	ModeDynamic
)

func (m Mode) String() string {
	switch m {
	case ModeCSSVar:
		return "CSS_VAR"
	case ModeCSSColor:
		return "CSS_COLOR"
	case ModeDynamic:
		return "DYNAMIC_EXPRESSION"
	default:
		return "UNKNOWN"
	}
}

// Translator renders macro colors against a palette
type Translator struct {
	palette palette.Palette
}

// NewTranslator creates a translator for p
func NewTranslator(p palette.Palette) *Translator {
	return &Translator{palette: p}
}

// Translate renders c for variation in the given mode.
// The variable must exist in the palette in every mode.
func (t *Translator) Translate(variation string, c macro.Color, mode Mode) (string, error) {
	hex, err := t.palette.Resolve(variation, c.Variable)
	if err != nil {
		return "", err
	}

	switch mode {
	case ModeCSSColor:
		// exact string comparison: "1.0" still takes the rgba branch
		if c.Alpha == macro.DefaultAlpha {
			return hex, nil
		}
		return RGBA(hex, c.Alpha)

	case ModeDynamic:
		return FormatToken(variation, c.Variable, c.Alpha), nil

	case ModeCSSVar:
		return fmt.Sprintf("rgba(var(--%s), %s)", c.Variable, c.Alpha), nil

	default:
		return "", fmt.Errorf("unknown translation mode %d", mode)
	}
}

// Token is a decoded %[variation, variable, alpha]% placeholder
type Token struct {
	Variation string
	Variable  string
	Alpha     string
}

// FormatToken encodes a dynamic token
func FormatToken(variation, variable, alpha string) string {
	return "%[" + variation + ", " + variable + ", " + alpha + "]%"
}

// ParseToken decodes the text between %[ and ]%.
// Whitespace is insignificant; the fields are split on commas.
// A token without an alpha field decodes with an empty Alpha.
func ParseToken(inner string) (Token, error) {
	compact := strings.Join(strings.Fields(inner), "")
	parts := strings.Split(compact, ",")
	switch len(parts) {
	case 2:
		return Token{Variation: parts[0], Variable: parts[1]}, nil
	case 3:
		return Token{Variation: parts[0], Variable: parts[1], Alpha: parts[2]}, nil
	}
	return Token{}, fmt.Errorf("malformed dynamic token %q", inner)
}

// Render converts hex to rgba() with the token's alpha, or to rgb()
// when the token carries none.
func (t Token) Render(hex string) (string, error) {
	if t.Alpha == "" {
		return ToRGB(hex)
	}
	return RGBA(hex, t.Alpha)
}
