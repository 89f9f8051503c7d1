package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	asimonimParser "bennypowers.dev/asimonim/parser"
	"bennypowers.dev/asimonim/token"
	"bennypowers.dev/themify/internal/log"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a palette from disk. The format is chosen by file name:
//   - *.tokens.json: a DTCG design tokens file whose top-level groups are variations
//   - *.json, *.jsonc: a plain {variation: {variable: hex}} object, comments allowed
//   - *.yaml, *.yml: the same shape as YAML
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: palette path comes from the project config
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", path, err)
	}

	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tokens.json"):
		return ParseTokens(data)
	case strings.HasSuffix(name, ".json"), strings.HasSuffix(name, ".jsonc"):
		return ParseJSON(data)
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ParseJSON parses a palette object. Supports JSONC (JSON with comments)
func ParseJSON(data []byte) (Palette, error) {
	var p Palette
	if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette JSON: %w", err)
	}
	return p, p.Validate()
}

// ParseYAML parses a palette object written as YAML
func ParseYAML(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette YAML: %w", err)
	}
	return p, p.Validate()
}

// ParseTokens parses a DTCG tokens file with the asimonim parser.
//
// Each top-level group is a variation; the remaining path, joined with
// hyphens, is the variable name:
//
//	{"light": {"primary": {"100": {"$type": "color", "$value": "#f2f2f4"}}}}
//
// yields light.primary-100 = #f2f2f4. Tokens that are not hex colors are skipped.
func ParseTokens(data []byte) (Palette, error) {
	toks, err := asimonimParser.NewJSONParser().Parse(data, asimonimParser.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse design tokens: %w", err)
	}
	p := FromTokens(toks)
	return p, p.Validate()
}

// FromTokens builds a palette from parsed design tokens
func FromTokens(toks []*token.Token) Palette {
	p := Palette{}
	for _, tok := range toks {
		if len(tok.Path) < 2 {
			continue
		}
		if tok.Type != "" && tok.Type != "color" {
			continue
		}
		if !strings.HasPrefix(tok.Value, "#") {
			log.Debug("Skipping non-hex color token %s: %s", strings.Join(tok.Path, "."), tok.Value)
			continue
		}
		variation := tok.Path[0]
		if p[variation] == nil {
			p[variation] = map[string]string{}
		}
		p[variation][strings.Join(tok.Path[1:], "-")] = tok.Value
	}
	return p
}

// FromMap converts a loosely typed map, such as one decoded by a config
// loader, into a Palette. Non-string colors are rejected.
func FromMap(raw map[string]any) (Palette, error) {
	p := Palette{}
	for variation, v := range raw {
		colors, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected map of colors for the variation name %s: %w", variation, ErrEmptyPalette)
		}
		p[variation] = make(map[string]string, len(colors))
		for name, c := range colors {
			hex, ok := c.(string)
			if !ok {
				return nil, fmt.Errorf("color %s.%s must be a string, got %T", variation, name, c)
			}
			p[variation][name] = hex
		}
	}
	return p, p.Validate()
}
