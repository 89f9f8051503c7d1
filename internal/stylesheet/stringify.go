package stylesheet

import "strings"

const indentUnit = "  "

// String serializes the stylesheet
func (r *Root) String() string {
	var b strings.Builder
	for i, n := range r.nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		write(&b, n, 0)
		b.WriteString("\n")
	}
	return b.String()
}

// String serializes the rule on its own, without enclosing at-rules
func (r *Rule) String() string {
	var b strings.Builder
	write(&b, r, 0)
	return b.String()
}

// String serializes a single declaration without indentation
func (d *Declaration) String() string {
	var b strings.Builder
	write(&b, d, 0)
	return b.String()
}

// Stringify serializes any node at the top level
func Stringify(n Node) string {
	var b strings.Builder
	write(&b, n, 0)
	return b.String()
}

func write(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch t := n.(type) {
	case *Rule:
		b.WriteString(indent)
		b.WriteString(strings.Join(t.Selectors, ",\n"+indent))
		writeBlock(b, t.nodes, depth)

	case *AtRule:
		b.WriteString(indent)
		b.WriteString(t.Prelude())
		writeBlock(b, t.nodes, depth)

	case *Declaration:
		b.WriteString(indent)
		b.WriteString(t.Prop)
		b.WriteString(": ")
		b.WriteString(t.Value)
		if t.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";")

	case *Comment:
		b.WriteString(indent)
		b.WriteString(t.Text)

	case *Raw:
		b.WriteString(indent)
		b.WriteString(t.Text)

	case *Root:
		b.WriteString(t.String())
	}
}

func writeBlock(b *strings.Builder, nodes []Node, depth int) {
	if len(nodes) == 0 {
		b.WriteString(" {}")
		return
	}
	b.WriteString(" {\n")
	for _, child := range nodes {
		write(b, child, depth+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("}")
}
