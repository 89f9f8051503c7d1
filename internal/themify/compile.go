package themify

import (
	"fmt"

	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/stylesheet"
)

// Result is the output of one compile
type Result struct {
	// CSS is the transformed stylesheet
	CSS string
	// Bundle is nil when the fallback is disabled or nothing is themed
	Bundle *FallbackBundle
	// Expand describes the expansion pass
	Expand *ExpandResult
}

// Compile parses source and runs the full pipeline: variable blocks,
// fallback bundle (read before mutation), then expansion.
// Any macro error aborts the compile with no partial result.
func (t *Themify) Compile(source string) (*Result, error) {
	root, err := stylesheet.Parse(source)
	if err != nil {
		return nil, err
	}
	return t.Transform(NewTree(root))
}

// Transform runs the pipeline over an already parsed tree
func (t *Themify) Transform(tree Tree) (*Result, error) {
	if t.opts.CreateVars {
		if err := t.GenerateVars(tree); err != nil {
			return nil, fmt.Errorf("failed to generate variables: %w", err)
		}
	}

	result := &Result{}

	if !t.opts.ScrewIE11 {
		bundle, err := t.EmitFallback(tree)
		if err != nil {
			return nil, err
		}
		result.Bundle = bundle
	}

	expanded, err := t.Expand(tree)
	if err != nil {
		return nil, err
	}
	result.Expand = expanded
	result.CSS = tree.String()

	log.Debug("Compiled stylesheet: %d declarations themed", len(expanded.Mutated))
	return result, nil
}
