// Package stylesheet is the rule tree themify operates on. It parses CSS
// with tree-sitter into a small mutable tree of rules, at-rules and
// declarations, and serializes it back to text.
package stylesheet

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"bennypowers.dev/themify/internal/position"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// Parse is a convenience wrapper around a pooled parser
func Parse(source string) (*Root, error) {
	p := AcquireParser()
	defer ReleaseParser(p)
	return p.Parse(source)
}

// macroArgs matches the argument of a themify(...) call. The JSON inside
// contains braces and quotes that would derail the CSS grammar.
var macroArgs = regexp.MustCompile(`(?i)themify\(([^)]+)\)`)

// mask blanks out macro arguments without changing byte offsets, so
// node ranges still index into the original source.
func mask(source string) []byte {
	masked := []byte(source)
	for _, m := range macroArgs.FindAllStringSubmatchIndex(source, -1) {
		for i := m[2]; i < m[3]; i++ {
			masked[i] = '_'
		}
	}
	return masked
}

// Parse parses CSS source into a Root
func (p *Parser) Parse(source string) (*Root, error) {
	tree := p.parser.Parse(mask(source), nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse CSS")
	}
	defer tree.Close()

	b := &builder{source: source}
	root := NewRoot()
	b.children(tree.RootNode(), root)
	return root, nil
}

type builder struct {
	source string
}

func (b *builder) text(node *sitter.Node) string {
	return b.source[node.StartByte():node.EndByte()]
}

// children converts the statements under node and appends them to parent
func (b *builder) children(node *sitter.Node, parent Container) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch kind := child.Kind(); kind {
		case "{", "}", ";":
			continue

		case "rule_set", "keyframe_block":
			if rule := b.rule(child); rule != nil {
				parent.Append(rule)
			}

		case "declaration":
			parent.Append(b.declaration(child))

		case "comment", "js_comment":
			parent.Append(&Comment{Text: b.text(child)})

		default:
			if kind == "at_rule" || strings.HasSuffix(kind, "_statement") {
				parent.Append(b.atRule(child))
				continue
			}
			if text := strings.TrimSpace(b.text(child)); text != "" {
				parent.Append(NewRaw(text))
			}
		}
	}
}

func (b *builder) rule(node *sitter.Node) *Rule {
	var selectors []string
	var block *sitter.Node

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "selectors":
			selectors = b.selectors(child)
		case "block":
			block = child
		case "from", "to", "integer_value":
			// keyframe selectors
			selectors = append(selectors, strings.TrimSpace(b.text(child)))
		}
	}

	if block == nil {
		return nil
	}

	rule := NewRule(selectors...)
	b.children(block, rule)
	return rule
}

// selectors splits a selector list on its top-level commas
func (b *builder) selectors(node *sitter.Node) []string {
	var selectors []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "," || child.Kind() == "comment" {
			continue
		}
		if s := strings.TrimSpace(b.text(child)); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func (b *builder) declaration(node *sitter.Node) *Declaration {
	decl := &Declaration{Pos: position.FromByteOffset(b.source, int(node.StartByte()))}

	valueStart, valueEnd := node.EndByte(), node.EndByte()
	seenColon := false

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "property_name":
			decl.Prop = strings.TrimSpace(b.text(child))
		case ":":
			if !seenColon {
				seenColon = true
				valueStart = child.EndByte()
			}
		case "important":
			decl.Important = true
			if child.StartByte() < valueEnd {
				valueEnd = child.StartByte()
			}
		case ";":
			if child.StartByte() < valueEnd {
				valueEnd = child.StartByte()
			}
		}
	}

	if valueStart < valueEnd {
		decl.Value = strings.TrimSpace(b.source[valueStart:valueEnd])
	}
	return decl
}

// atRule converts any @-statement. Statements without a block are kept raw.
func (b *builder) atRule(node *sitter.Node) Node {
	var block *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if k := child.Kind(); k == "block" || k == "keyframe_block_list" {
			block = child
			break
		}
	}

	if block == nil {
		return NewRaw(strings.TrimSpace(b.text(node)))
	}

	header := strings.TrimSpace(b.source[node.StartByte():block.StartByte()])
	name, params, _ := strings.Cut(strings.TrimPrefix(header, "@"), " ")
	at := NewAtRule(strings.TrimSpace(name), strings.TrimSpace(params))
	b.children(block, at)
	return at
}

// ParseFragment parses CSS text into detached nodes, ready to be
// prepended or appended to another tree
func ParseFragment(source string) ([]Node, error) {
	root, err := Parse(source)
	if err != nil {
		return nil, err
	}
	nodes := root.Children()
	root.RemoveAll()
	return nodes, nil
}
