package themify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bennypowers.dev/themify/internal/log"
)

// Sink receives one output artifact
type Sink interface {
	Write(ctx context.Context, path string, data []byte) error
}

// FileSink writes artifacts to the filesystem, creating parent directories
type FileSink struct{}

func (FileSink) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteReport holds the independent outcome of each fallback write
type WriteReport struct {
	CSSErr      error
	JSONErr     error
	CSSWritten  bool
	JSONWritten bool
}

// Err joins both write errors, nil when both succeeded or were skipped
func (r WriteReport) Err() error {
	return errors.Join(r.CSSErr, r.JSONErr)
}

// WriteBundle writes the fallback CSS and JSON concurrently.
// A failure in one write never cancels the other.
// A nil bundle writes nothing; an empty path skips that write.
func WriteBundle(ctx context.Context, sink Sink, paths Fallback, bundle *FallbackBundle) WriteReport {
	var report WriteReport
	if bundle == nil {
		return report
	}

	var wg sync.WaitGroup

	if paths.CSSPath == "" {
		log.Warn("fallback.cssPath is not set, skipping fallback CSS")
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.CSSErr = sink.Write(ctx, paths.CSSPath, []byte(bundle.CSS))
			report.CSSWritten = report.CSSErr == nil
		}()
	}

	if paths.DynamicPath == "" {
		log.Warn("fallback.dynamicPath is not set, skipping fallback JSON")
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := bundle.JSON()
			if err != nil {
				report.JSONErr = fmt.Errorf("failed to encode fallback JSON: %w", err)
				return
			}
			report.JSONErr = sink.Write(ctx, paths.DynamicPath, data)
			report.JSONWritten = report.JSONErr == nil
		}()
	}

	wg.Wait()

	if report.CSSErr != nil {
		log.Error("Failed to write fallback CSS: %v", report.CSSErr)
	}
	if report.JSONErr != nil {
		log.Error("Failed to write fallback JSON: %v", report.JSONErr)
	}
	return report
}
