package exprtree

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Operator nodes
// own exactly two children; leaves own none.
type node struct {
	kind nodeKind

	num  int64
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num
	nodeVar // push lookup(name)

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNum:
		return "num"
	case nodeVar:
		return "var"
	case nodeAdd:
		return "add"
	case nodeSub:
		return "sub"
	case nodeMul:
		return "mul"
	case nodeDiv:
		return "div"
	default:
		return "none"
	}
}

// opString is the operator symbol for an operator node kind, or the empty
// string for any other kind.
func (k nodeKind) opString() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	default:
		return ""
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes an infix rendering of the subtree with every operator
// parenthesized, so grouping survives re-reading.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatInt(n.num, 10))
	case nodeVar:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opString())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	}
}
