package runtime

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"bennypowers.dev/themify/internal/uriutil"
	"bennypowers.dev/themify/internal/version"
)

// Fetcher loads the fallback JSON from a locator
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, locator string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, locator string) ([]byte, error) {
	return f(ctx, locator)
}

// DefaultFetcher reads http(s) locators over the network and anything else
// from the filesystem
type DefaultFetcher struct {
	Client *http.Client
}

func (f DefaultFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if uriutil.IsRemote(locator) {
		return f.fetchHTTP(ctx, locator)
	}
	return readFile(ctx, locator)
}

func (f DefaultFetcher) fetchHTTP(ctx context.Context, locator string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", locator, err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", locator, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", locator, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func readFile(ctx context.Context, locator string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := uriutil.ToPath(locator)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback %s: %w", path, err)
	}
	return data, nil
}
