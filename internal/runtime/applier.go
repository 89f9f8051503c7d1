package runtime

import (
	"context"
	"fmt"
	"strings"

	"bennypowers.dev/themify/internal/log"
	"bennypowers.dev/themify/internal/palette"
)

// Applier injects theme overrides into a Document
type Applier struct {
	Document Document
	// Native reports whether the document supports custom properties.
	// Nil means supported.
	Native func() bool
	Cache  *Cache
}

// NewApplier creates an applier that fetches fallback bundles with fetcher
func NewApplier(doc Document, native func() bool, fetcher Fetcher) *Applier {
	return &Applier{
		Document: doc,
		Native:   native,
		Cache:    NewCache(fetcher),
	}
}

// HasNativeProperties reports whether the native path is used
func (a *Applier) HasNativeProperties() bool {
	return a.Native == nil || a.Native()
}

// Apply injects override and returns the injected CSS.
// With native custom properties only the overridden variables are set.
// Otherwise the fallback bundle at locator is decoded against base merged
// with override. An empty override does nothing.
func (a *Applier) Apply(ctx context.Context, locator string, override, base palette.Palette) (string, error) {
	if len(override) == 0 {
		return "", nil
	}

	if a.HasNativeProperties() {
		css := GenerateNewVariables(override)
		a.Document.InjectStyle(VarsStyleID, css)
		log.Debug("Injected %d variable blocks", len(override))
		return css, nil
	}

	if a.Cache == nil {
		return "", fmt.Errorf("no fallback cache configured")
	}
	fallback, err := a.Cache.Get(ctx, locator)
	if err != nil {
		return "", err
	}

	css, err := DecodeFallback(fallback, override, base)
	if err != nil {
		return "", err
	}
	a.Document.InjectStyle(FallbackStyleID, css)
	return css, nil
}

// DecodeFallback substitutes the templated text of every overridden
// variation against base merged with override
func DecodeFallback(fallback Fallback, override, base palette.Palette) (string, error) {
	merged := palette.Merge(base, override)

	var b strings.Builder
	for _, variation := range override.Variations() {
		text, ok := fallback[variation]
		if !ok {
			log.Warn("Fallback bundle has no entry for variation %s", variation)
			continue
		}
		decoded, err := Decode(text, merged)
		if err != nil {
			return "", fmt.Errorf("failed to decode variation %s: %w", variation, err)
		}
		b.WriteString(decoded)
	}
	return b.String(), nil
}
