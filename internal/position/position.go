// Package position converts byte offsets in a source text into
// human-readable line and column numbers.
package position

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based line and column. Columns count characters, not bytes.
// The zero value means unknown.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether p points into a source
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders "line:column", or "" for the zero Position
func (p Position) String() string {
	if !p.IsValid() {
		return ""
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// FromByteOffset locates offset in source. Offsets past the end clamp to
// the end; offsets inside a multi-byte character round down to its start.
func FromByteOffset(source string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	for offset > 0 && offset < len(source) && !utf8.RuneStart(source[offset]) {
		offset--
	}

	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
