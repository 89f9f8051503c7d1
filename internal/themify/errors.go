package themify

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/themify/internal/position"
)

var (
	// ErrPaletteRequired is returned by New when no palette is configured
	ErrPaletteRequired = errors.New("the 'pallete' option is required")
)

// DeclarationError locates a macro failure in the stylesheet
type DeclarationError struct {
	Selectors []string
	Prop      string
	Value     string
	Pos       position.Position
	Err       error
}

func (e *DeclarationError) Error() string {
	msg := fmt.Sprintf("%s { %s: %s }: %v", strings.Join(e.Selectors, ", "), e.Prop, e.Value, e.Err)
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func newDeclarationError(r Rule, d Decl, err error) *DeclarationError {
	return &DeclarationError{
		Selectors: r.Selectors(),
		Prop:      d.Prop(),
		Value:     d.Value(),
		Pos:       d.Position(),
		Err:       err,
	}
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
