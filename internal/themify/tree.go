package themify

import (
	"bennypowers.dev/themify/internal/position"
	"bennypowers.dev/themify/internal/stylesheet"
)

// Tree is the host stylesheet the transforms operate on.
// Only source rules' selector lists and default-variation declaration
// values are ever mutated; everything else is created fresh.
type Tree interface {
	// WalkRules visits every rule in document order
	WalkRules(fn func(Rule) error) error
	// NewRule creates a detached rule
	NewRule(selectors []string) Rule
	// PrependCSS parses css and inserts the result before all other nodes
	PrependCSS(css string) error
	// PrependRaw inserts a verbatim statement before all other nodes
	PrependRaw(text string)
	// String serializes the tree
	String() string
}

// Rule is a selector list and its declarations
type Rule interface {
	Selectors() []string
	SetSelectors(selectors []string)
	Decls() []Decl
	AppendDecl(prop, value string, important bool)
	// CloneEmpty copies the selectors into a detached rule without declarations
	CloneEmpty() Rule
	// AppendSibling appends r to this rule's parent container
	AppendSibling(r Rule)
	// Context returns the preludes of enclosing at-rules, outermost first
	Context() []string
	String() string
}

// Decl is one declaration of a rule
type Decl interface {
	Prop() string
	Value() string
	SetValue(value string)
	Important() bool
	// Position is where the declaration was parsed, zero for created ones
	Position() position.Position
}

// NewTree adapts a parsed stylesheet to Tree
func NewTree(root *stylesheet.Root) Tree {
	return &sheet{root: root}
}

type sheet struct {
	root *stylesheet.Root
}

func (s *sheet) WalkRules(fn func(Rule) error) error {
	return stylesheet.WalkRules(s.root, func(r *stylesheet.Rule) error {
		return fn(&rule{r: r})
	})
}

func (s *sheet) NewRule(selectors []string) Rule {
	return &rule{r: stylesheet.NewRule(selectors...)}
}

func (s *sheet) PrependCSS(css string) error {
	nodes, err := stylesheet.ParseFragment(css)
	if err != nil {
		return err
	}
	s.root.Prepend(nodes...)
	return nil
}

func (s *sheet) PrependRaw(text string) {
	s.root.Prepend(stylesheet.NewRaw(text))
}

func (s *sheet) String() string {
	return s.root.String()
}

type rule struct {
	r *stylesheet.Rule
}

func (r *rule) Selectors() []string {
	out := make([]string, len(r.r.Selectors))
	copy(out, r.r.Selectors)
	return out
}

func (r *rule) SetSelectors(selectors []string) {
	r.r.Selectors = selectors
}

func (r *rule) Decls() []Decl {
	decls := r.r.Declarations()
	out := make([]Decl, len(decls))
	for i, d := range decls {
		out[i] = &decl{d: d}
	}
	return out
}

func (r *rule) AppendDecl(prop, value string, important bool) {
	r.r.AppendDecl(prop, value, important)
}

func (r *rule) CloneEmpty() Rule {
	return &rule{r: r.r.CloneEmpty()}
}

func (r *rule) AppendSibling(sibling Rule) {
	s, ok := sibling.(*rule)
	if !ok {
		return
	}
	if parent := r.r.Parent(); parent != nil {
		parent.Append(s.r)
	}
}

func (r *rule) Context() []string {
	var preludes []string
	for _, a := range stylesheet.Ancestors(r.r) {
		preludes = append(preludes, a.Prelude())
	}
	return preludes
}

func (r *rule) String() string {
	return r.r.String()
}

type decl struct {
	d *stylesheet.Declaration
}

func (d *decl) Prop() string          { return d.d.Prop }
func (d *decl) Value() string         { return d.d.Value }
func (d *decl) SetValue(value string) { d.d.Value = value }
func (d *decl) Important() bool       { return d.d.Important }

func (d *decl) Position() position.Position { return d.d.Pos }
