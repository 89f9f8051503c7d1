package macro

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrParse indicates the macro expression is not a JSON object
	ErrParse = errors.New("invalid themify expression")

	// ErrMissingVariation indicates the expression has no entry for a variation
	ErrMissingVariation = errors.New("missing variation")

	// ErrEmptyColor indicates an array entry without a variable name
	ErrEmptyColor = errors.New("empty color")
)

// ParseError reports an expression that failed to decode
type ParseError struct {
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fail to parse the following expression: %s: %v", e.Fragment, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// MissingVariationError reports an expression lacking a variation key
type MissingVariationError struct {
	Fragment  string
	Variation string
}

func (e *MissingVariationError) Error() string {
	return fmt.Sprintf("%s has no value for the variation '%s'", e.Fragment, e.Variation)
}

func (e *MissingVariationError) Unwrap() error {
	return ErrMissingVariation
}

// EmptyColorError reports an array entry whose variable name is empty
type EmptyColorError struct {
	Fragment  string
	Variation string
}

func (e *EmptyColorError) Error() string {
	return fmt.Sprintf("received an empty color for the variation '%s' in %s", e.Variation, e.Fragment)
}

func (e *EmptyColorError) Unwrap() error {
	return ErrEmptyColor
}
