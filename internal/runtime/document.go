package runtime

import (
	"fmt"
	"html"
	"strings"
	"sync"
)

// Style element ids. Each apply replaces the previous element with the same id.
const (
	VarsStyleID     = "themify-vars"
	FallbackStyleID = "themify-fallback"
)

// Document receives injected style blocks
type Document interface {
	// InjectStyle inserts css under id, replacing any previous style with that id
	InjectStyle(id, css string)
}

// MemoryDocument is a Document that keeps style blocks in memory,
// for server-side rendering and previews
type MemoryDocument struct {
	mu     sync.RWMutex
	ids    []string
	styles map[string]string
}

// NewMemoryDocument creates an empty document
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{styles: map[string]string{}}
}

func (d *MemoryDocument) InjectStyle(id, css string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.styles[id]; !ok {
		d.ids = append(d.ids, id)
	}
	d.styles[id] = css
}

// Style returns the css injected under id
func (d *MemoryDocument) Style(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	css, ok := d.styles[id]
	return css, ok
}

// Len returns the number of style elements
func (d *MemoryDocument) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.ids)
}

// HTML renders the style elements in injection order
func (d *MemoryDocument) HTML() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var b strings.Builder
	for _, id := range d.ids {
		fmt.Fprintf(&b, "<style id=\"%s\">%s</style>\n", html.EscapeString(id), d.styles[id])
	}
	return b.String()
}
