// Package uriutil converts fallback bundle locators into filesystem paths.
package uriutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// IsRemote reports whether locator must be fetched over HTTP
func IsRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// ToPath converts a file:// URI into a path. Plain paths are returned
// unchanged. Windows drive URIs (file:///C:/dist/x.json) lose the leading slash.
func ToPath(locator string) string {
	if !strings.HasPrefix(locator, "file:") {
		return locator
	}

	u, err := url.Parse(locator)
	if err != nil || u.Scheme != "file" {
		return filepath.FromSlash(strings.TrimPrefix(strings.TrimPrefix(locator, "file://"), "file:"))
	}

	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		path = "//" + u.Host + path
	}
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}
