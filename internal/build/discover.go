package build

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never searched for input stylesheets
var skipDirs = []string{"node_modules", "dist", "build"}

func shouldSkipDirectory(info os.FileInfo, outDir string, path string) bool {
	if !info.IsDir() {
		return false
	}
	if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
		return true
	}
	if outDir != "" && filepath.Clean(path) == filepath.Clean(outDir) {
		return true
	}
	return slices.Contains(skipDirs, info.Name())
}

// MatchesAnyPattern reports whether relPath matches one of the glob patterns
func MatchesAnyPattern(relPath string, patterns []string) bool {
	// doublestar expects forward slashes
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, normalized)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Discover walks rootDir for files matching patterns, skipping hidden and
// dependency directories and outDir. Paths are returned in walk order.
func Discover(rootDir string, patterns []string, outDir string) ([]string, error) {
	var files []string
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if shouldSkipDirectory(info, outDir, path) {
			return filepath.SkipDir
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		if MatchesAnyPattern(rel, patterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}
	return files, nil
}
