// Package build compiles stylesheets on disk and writes the outputs.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/themify"
)

// ErrStale is returned by a check run when an output differs from the
// committed file
var ErrStale = errors.New("outputs are out of date")

// Builder compiles a set of stylesheets into OutDir
type Builder struct {
	Themify *themify.Themify
	// RootDir is the base inputs are made relative to
	RootDir string
	OutDir  string
	Sink    themify.Sink
	// Check compares outputs with the existing files instead of writing
	Check bool
}

// FileResult is the outcome for one input
type FileResult struct {
	Input  string
	Output string
	// Diff is set in check mode when the output is stale
	Diff string
}

// Report summarizes a build
type Report struct {
	Files  []FileResult
	Bundle *themify.FallbackBundle
	Writes themify.WriteReport
}

// Stale lists the files whose output differs, in check mode
func (r *Report) Stale() []FileResult {
	var stale []FileResult
	for _, f := range r.Files {
		if f.Diff != "" {
			stale = append(stale, f)
		}
	}
	return stale
}

// OutputPath maps an input to its location under OutDir
func (b *Builder) OutputPath(input string) string {
	rel, err := filepath.Rel(b.RootDir, input)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(input)
	}
	return filepath.Join(b.OutDir, rel)
}

// Run compiles every input. All inputs compile before anything is written,
// so a macro error in any file leaves the outputs untouched. The fallback
// bundles of all inputs are merged, in input order, into one bundle.
func (b *Builder) Run(ctx context.Context, inputs []string) (*Report, error) {
	report := &Report{}
	outputs := make([]string, len(inputs))

	for i, input := range inputs {
		source, err := os.ReadFile(input) //nolint:gosec // G304: user-selected input
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", input, err)
		}
		result, err := b.Themify.Compile(string(source))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		outputs[i] = result.CSS
		report.Bundle = report.Bundle.Merge(result.Bundle)
		report.Files = append(report.Files, FileResult{Input: input, Output: b.OutputPath(input)})
	}

	if b.Check {
		for i := range report.Files {
			existing, err := os.ReadFile(report.Files[i].Output)
			if err != nil && !os.IsNotExist(err) {
				return nil, err
			}
			if string(existing) != outputs[i] {
				report.Files[i].Diff = LineDiff(string(existing), outputs[i])
			}
		}
		if len(report.Stale()) > 0 {
			return report, ErrStale
		}
		return report, nil
	}

	sink := b.Sink
	if sink == nil {
		sink = themify.FileSink{}
	}
	for i, f := range report.Files {
		if err := sink.Write(ctx, f.Output, []byte(outputs[i])); err != nil {
			return report, err
		}
		log.Info("Compiled %s → %s", f.Input, f.Output)
	}

	report.Writes = themify.WriteBundle(ctx, sink, b.Themify.Options().Fallback, report.Bundle)
	return report, report.Writes.Err()
}
