package themify

import (
	"bytes"
	"encoding/json"
	"strings"

	"bennypowers.dev/themify/internal/color"
	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/macro"
)

// FallbackBundle is the legacy browser output of one compile
type FallbackBundle struct {
	// CSS has every themed declaration with literal colors, all variations
	CSS string
	// Dynamic maps variation → CSS text containing %[...]% tokens
	Dynamic map[string]string
}

// JSON serializes Dynamic as {variation: text}, keys sorted
func (b *FallbackBundle) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b.Dynamic); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var fallbackModes = []color.Mode{color.ModeCSSColor, color.ModeDynamic}

// destination is a fallback rule plus the at-rules it must be wrapped in
type destination struct {
	rule    Rule
	context []string
}

func (d destination) render() string {
	out := d.rule.String()
	for i := len(d.context) - 1; i >= 0; i-- {
		out = d.context[i] + " {\n" + out + "\n}"
	}
	return out
}

var newLines = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// EmitFallback builds the fallback bundle from the tree as it is now.
// It never mutates the tree, and must run before Expand rewrites the
// declarations it reads. Returns nil when no declaration is themed.
func (t *Themify) EmitFallback(tree Tree) (*FallbackBundle, error) {
	var literal []destination
	dynamic := map[string][]destination{}

	err := tree.WalkRules(func(r Rule) error {
		var ruleModes map[color.Mode]map[string]Rule

		for _, d := range r.Decls() {
			if !macro.Contains(d.Value()) {
				continue
			}

			// lazily create one destination per mode and variation
			if ruleModes == nil {
				ruleModes = map[color.Mode]map[string]Rule{}
				context := r.Context()
				for _, mode := range fallbackModes {
					ruleModes[mode] = map[string]Rule{}
					for _, variation := range t.opts.Variations {
						var dest Rule
						if variation == t.defaultVariation() {
							dest = r.CloneEmpty()
						} else {
							dest = tree.NewRule(t.prefixedSelectors(r, variation))
						}
						ruleModes[mode][variation] = dest

						if mode == color.ModeCSSColor {
							literal = append(literal, destination{rule: dest, context: context})
						} else {
							dynamic[variation] = append(dynamic[variation], destination{rule: dest, context: context})
						}
					}
				}
			}

			for _, mode := range fallbackModes {
				values, err := t.variantValues(d.Value(), mode)
				if err != nil {
					return newDeclarationError(r, d, err)
				}
				for _, variation := range t.opts.Variations {
					ruleModes[mode][variation].AppendDecl(d.Prop(), values[variation], d.Important())
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(literal) == 0 {
		log.Debug("No themed declarations, skipping fallback bundle")
		return nil, nil
	}

	rendered := make([]string, len(literal))
	for i, d := range literal {
		rendered[i] = d.render()
	}

	bundle := &FallbackBundle{
		CSS:     strings.Join(rendered, "\n") + "\n",
		Dynamic: make(map[string]string, len(t.opts.Variations)),
	}
	for _, variation := range t.opts.Variations {
		var b strings.Builder
		for _, d := range dynamic[variation] {
			b.WriteString(d.render())
		}
		bundle.Dynamic[variation] = newLines.Replace(b.String())
	}
	return bundle, nil
}

// Merge returns a bundle holding b's rules followed by other's.
// Either side may be nil.
func (b *FallbackBundle) Merge(other *FallbackBundle) *FallbackBundle {
	if b == nil {
		return other
	}
	if other == nil {
		return b
	}
	merged := &FallbackBundle{
		CSS:     b.CSS + other.CSS,
		Dynamic: make(map[string]string, len(b.Dynamic)),
	}
	for variation, text := range b.Dynamic {
		merged.Dynamic[variation] = text
	}
	for variation, text := range other.Dynamic {
		merged.Dynamic[variation] += text
	}
	return merged
}
