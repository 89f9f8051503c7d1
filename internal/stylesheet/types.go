package stylesheet

import "bennypowers.dev/themify/internal/position"

// Node is any member of a stylesheet tree
type Node interface {
	// Parent returns the container holding the node, or nil for detached nodes
	Parent() Container
	setParent(Container)
}

// Container is a node with children: the root, a rule or an at-rule
type Container interface {
	Node
	Children() []Node
	Append(nodes ...Node)
	Prepend(nodes ...Node)
	RemoveAll()
}

type base struct {
	parent Container
}

func (b *base) Parent() Container     { return b.parent }
func (b *base) setParent(c Container) { b.parent = c }

type container struct {
	base
	self  Container
	nodes []Node
}

func (c *container) Children() []Node { return c.nodes }

func (c *container) Append(nodes ...Node) {
	for _, n := range nodes {
		n.setParent(c.self)
	}
	c.nodes = append(c.nodes, nodes...)
}

func (c *container) Prepend(nodes ...Node) {
	for _, n := range nodes {
		n.setParent(c.self)
	}
	c.nodes = append(append(make([]Node, 0, len(nodes)+len(c.nodes)), nodes...), c.nodes...)
}

func (c *container) RemoveAll() {
	for _, n := range c.nodes {
		n.setParent(nil)
	}
	c.nodes = nil
}

// Root is a whole stylesheet
type Root struct {
	container
}

// NewRoot creates an empty stylesheet
func NewRoot() *Root {
	r := &Root{}
	r.self = r
	return r
}

// Rule is a qualified rule: a selector list and a block
type Rule struct {
	container
	Selectors []string
}

// NewRule creates a detached rule with the given selectors
func NewRule(selectors ...string) *Rule {
	r := &Rule{Selectors: selectors}
	r.self = r
	return r
}

// Declarations returns the rule's direct declarations in order
func (r *Rule) Declarations() []*Declaration {
	var decls []*Declaration
	for _, n := range r.nodes {
		if d, ok := n.(*Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// AppendDecl appends a new declaration and returns it
func (r *Rule) AppendDecl(prop, value string, important bool) *Declaration {
	d := &Declaration{Prop: prop, Value: value, Important: important}
	r.Append(d)
	return d
}

// CloneEmpty returns a detached copy of the rule without children
func (r *Rule) CloneEmpty() *Rule {
	selectors := make([]string, len(r.Selectors))
	copy(selectors, r.Selectors)
	return NewRule(selectors...)
}

// AtRule is an @-rule. Block-less at-rules such as @import are kept as Raw.
type AtRule struct {
	container
	Name   string
	Params string
}

// NewAtRule creates a detached at-rule with an empty block
func NewAtRule(name, params string) *AtRule {
	a := &AtRule{Name: name, Params: params}
	a.self = a
	return a
}

// Prelude returns the at-rule header, e.g. "@media (max-width: 600px)"
func (a *AtRule) Prelude() string {
	if a.Params == "" {
		return "@" + a.Name
	}
	return "@" + a.Name + " " + a.Params
}

// Declaration is a property/value pair
type Declaration struct {
	base
	Prop      string
	Value     string
	Important bool
	// Pos is where the declaration starts in the parsed source, zero when
	// the declaration was created rather than parsed
	Pos position.Position
}

// Comment is a /* ... */ comment, stored verbatim
type Comment struct {
	base
	Text string
}

// Raw is a statement kept verbatim: block-less at-rules, preprocessor
// statements and anything the grammar could not parse
type Raw struct {
	base
	Text string
}

// NewRaw creates a detached raw statement
func NewRaw(text string) *Raw {
	return &Raw{Text: text}
}

// Ancestors returns the at-rules enclosing n, outermost first
func Ancestors(n Node) []*AtRule {
	var chain []*AtRule
	for p := n.Parent(); p != nil; p = p.Parent() {
		if a, ok := p.(*AtRule); ok {
			chain = append([]*AtRule{a}, chain...)
		}
	}
	return chain
}

// WalkRules calls fn for every rule under c, depth first, in document order.
// Rules appended to a container during the walk are visited as well.
func WalkRules(c Container, fn func(*Rule) error) error {
	for i := 0; i < len(c.Children()); i++ {
		switch n := c.Children()[i].(type) {
		case *Rule:
			if err := fn(n); err != nil {
				return err
			}
			if err := WalkRules(n, fn); err != nil {
				return err
			}
		case *AtRule:
			if err := WalkRules(n, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
