package color

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// RGB holds 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// HexToRGB decodes a palette color into decimal channels.
// #RRGGBB is the canonical form; any color csscolorparser understands
// (short hex, rgb(), named colors) is accepted. Alpha is discarded.
func HexToRGB(value string) (RGB, error) {
	value = strings.TrimSpace(value)
	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return RGB{}, fmt.Errorf("unsupported color format: %s", value)
	}
	r, g, b, _ := parsed.RGBA255()
	return RGB{R: r, G: g, B: b}, nil
}

// Triple renders the channels as "r, g, b", the form stored in custom properties
func (c RGB) Triple() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// RGBTriple converts a hex color to "r, g, b"
func RGBTriple(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return c.Triple(), nil
}

// ToRGB converts a hex color to "rgb(r, g, b)"
func ToRGB(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return "rgb(" + c.Triple() + ")", nil
}

// RGBA converts a hex color to "rgba(r, g, b, alpha)".
// alpha is written verbatim, so "0" and "1.0" are kept as given.
func RGBA(hex, alpha string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return "rgba(" + c.Triple() + ", " + alpha + ")", nil
}
