// Package version reports build information for the themify binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/themify/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = "" // "dirty" when built from a modified tree
)

// Info is a snapshot of the build metadata
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	GitTag    string `json:"gitTag" yaml:"gitTag"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
}

// Get collects the build metadata
func Get() Info {
	return Info{
		Version:   resolve(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
}

// String renders "v1.2.3 (commit: abc1234)", or just the version when the
// commit is unknown
func (i Info) String() string {
	if i.GitCommit == "unknown" || i.GitCommit == "" {
		return i.Version
	}
	return fmt.Sprintf("%s (commit: %s)", i.Version, shortCommit(i.GitCommit))
}

// UserAgent identifies themify in outgoing requests
func UserAgent() string {
	return "themify/" + resolve()
}

// resolve prefers ldflags, then module build info, then tag+commit
func resolve() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	if commit := shortCommit(GitCommit); commit != "" && !strings.HasSuffix(GitTag, commit) {
		v += "-" + commit
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
