// Package macro finds and decodes themify(...) invocations inside CSS
// declaration values.
//
// An invocation wraps a flat JSON object keyed by variation name:
//
//	themify({"light": "primary-100", "dark": ["primary-700", 0.5]})
//
// A value is either a bare variable name or a [variable, alpha] pair.
// Expressions containing parentheses are not supported: the match runs from
// the opening parenthesis to the first closing one.
package macro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DefaultAlpha is used when a value omits the alpha component
const DefaultAlpha = "1"

var invocationRegExp = regexp.MustCompile(`(?i)themify\(([^)]+)\)`)

// Invocation is one themify(...) occurrence within a value
type Invocation struct {
	// Start and End are byte offsets of the whole invocation in the value
	Start, End int
	// Expr is the raw text between the parentheses
	Expr string
}

// Color is a normalized (variable, alpha) pair for one variation
type Color struct {
	Variable string
	Alpha    string
}

// Expression is a decoded macro argument
type Expression struct {
	fragment string
	values   map[string]any
}

// Contains reports whether value holds at least one invocation.
// Names that merely mention the keyword, like themify-sans, do not count.
func Contains(value string) bool {
	return invocationRegExp.MatchString(value)
}

// Find returns every invocation in value, in order
func Find(value string) []Invocation {
	matches := invocationRegExp.FindAllStringSubmatchIndex(value, -1)
	invocations := make([]Invocation, 0, len(matches))
	for _, m := range matches {
		invocations = append(invocations, Invocation{
			Start: m[0],
			End:   m[1],
			Expr:  value[m[2]:m[3]],
		})
	}
	return invocations
}

// Parse decodes an invocation's expression. Single quotes are stripped
// first, so themify('{"light": "a"}') is accepted.
func Parse(expr string) (*Expression, error) {
	cleaned := strings.ReplaceAll(expr, "'", "")

	dec := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, &ParseError{Fragment: cleaned, Err: err}
	}
	if values == nil {
		return nil, &ParseError{Fragment: cleaned, Err: fmt.Errorf("expected a JSON object")}
	}
	if dec.More() {
		return nil, &ParseError{Fragment: cleaned, Err: fmt.Errorf("unexpected data after the JSON object")}
	}

	return &Expression{fragment: cleaned, values: values}, nil
}

// Fragment returns the expression text the Expression was decoded from
func (e *Expression) Fragment() string {
	return e.fragment
}

// Color returns the normalized color for variation
func (e *Expression) Color(variation string) (Color, error) {
	raw, ok := e.values[variation]
	if !ok || isFalsy(raw) {
		return Color{}, &MissingVariationError{Fragment: e.fragment, Variation: variation}
	}

	switch v := raw.(type) {
	case string:
		return Color{Variable: v, Alpha: DefaultAlpha}, nil

	case []any:
		if len(v) == 0 || isFalsy(v[0]) {
			return Color{}, &EmptyColorError{Fragment: e.fragment, Variation: variation}
		}
		c := Color{Variable: literal(v[0]), Alpha: DefaultAlpha}
		if len(v) > 1 && v[1] != nil {
			c.Alpha = literal(v[1])
		}
		return c, nil

	default:
		return Color{}, &ParseError{
			Fragment: e.fragment,
			Err:      fmt.Errorf("variation '%s' must be a variable name or a [variable, alpha] pair", variation),
		}
	}
}

// Replace substitutes every invocation in value with the result of fn.
// Each invocation is parsed independently; the first error aborts.
func Replace(value string, fn func(*Expression) (string, error)) (string, error) {
	invocations := Find(value)
	if len(invocations) == 0 {
		return value, nil
	}

	var b strings.Builder
	last := 0
	for _, inv := range invocations {
		expr, err := Parse(inv.Expr)
		if err != nil {
			return "", err
		}
		replacement, err := fn(expr)
		if err != nil {
			return "", err
		}
		b.WriteString(value[last:inv.Start])
		b.WriteString(replacement)
		last = inv.End
	}
	b.WriteString(value[last:])
	return b.String(), nil
}

// literal renders a JSON scalar the way it was written
func literal(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// isFalsy mirrors the truthiness check applied to expression values:
// null, false, "" and numeric zero are all treated as absent.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	}
	return false
}
