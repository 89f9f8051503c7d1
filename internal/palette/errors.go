package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariable indicates a macro referenced a variable the palette lacks
	ErrUnknownVariable = errors.New("unknown palette variable")

	// ErrEmptyPalette indicates the palette, or one of its variations, is missing
	ErrEmptyPalette = errors.New("empty palette")

	// ErrUnsupportedFormat indicates a palette file with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported palette format")
)

// UnknownVariableError names the variable that failed to resolve
type UnknownVariableError struct {
	Variation string
	Variable  string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("the variable name '%s' doesn't exist in your pallete (variation %s)", e.Variable, e.Variation)
}

func (e *UnknownVariableError) Unwrap() error {
	return ErrUnknownVariable
}

// NewUnknownVariableError creates a new unknown variable error
func NewUnknownVariableError(variation, variable string) error {
	return &UnknownVariableError{
		Variation: variation,
		Variable:  variable,
	}
}
