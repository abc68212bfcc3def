package xc

import (
	"math/big"
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Trees are
// never modified after parsing, so function values share their bodies.
type node struct {
	kind nodeKind

	num    *big.Int
	name   string
	params []string

	left  *node
	right *node

	// pos is the column of the token that produced the node.
	pos int
}

func zero() *big.Int {
	return new(big.Int)
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // num
	nodeName   // lookup(name)
	nodeParams // params; only the left of nodeFunc
	nodeNoArgs // empty argument list; only the right of nodeCall

	nodeAssign // bind left's name to right
	nodeFunc   // function value with left params and right body
	nodeCall   // call left with the argument chain right
	nodeArg    // argument left, then the rest of the arguments right

	nodeOr
	nodeXor
	nodeAnd
	nodeShl
	nodeShr
	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeRem
	nodePow
	nodeNeg // negate right; left is a synthetic zero
	nodeNot // complement right; left is a synthetic zero

	// nodeOpen marks an open bracket on the operator stack. It never appears
	// in a tree.
	nodeOpen
)

var nodeKindNames = [...]string{
	nodeNone:   "None",
	nodeNum:    "Num",
	nodeName:   "Name",
	nodeParams: "Params",
	nodeNoArgs: "NoArgs",
	nodeAssign: "Assign",
	nodeFunc:   "Func",
	nodeCall:   "Call",
	nodeArg:    "Arg",
	nodeOr:     "Or",
	nodeXor:    "Xor",
	nodeAnd:    "And",
	nodeShl:    "Shl",
	nodeShr:    "Shr",
	nodeAdd:    "Add",
	nodeSub:    "Sub",
	nodeMul:    "Mul",
	nodeDiv:    "Div",
	nodeRem:    "Rem",
	nodePow:    "Pow",
	nodeNeg:    "Neg",
	nodeNot:    "Not",
	nodeOpen:   "Open",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// opText is the source spelling of each operator kind.
var opText = map[nodeKind]string{
	nodeAssign: "=",
	nodeFunc:   "|...|",
	nodeCall:   "(",
	nodeArg:    ",",
	nodeOr:     "|",
	nodeXor:    "^",
	nodeAnd:    "&",
	nodeShl:    "<<",
	nodeShr:    ">>",
	nodeAdd:    "+",
	nodeSub:    "-",
	nodeMul:    "*",
	nodeDiv:    "/",
	nodeRem:    "%",
	nodePow:    "**",
	nodeNeg:    "-",
	nodeNot:    "~",
	nodeOpen:   "(",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized, in a form that parses back to the same
// tree.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(n.num.String())
	case nodeName:
		b.WriteByte('$')
		b.WriteString(n.name)
	case nodeParams:
		b.WriteByte('|')
		fmtparams(b, n.params)
		b.WriteByte('|')
	case nodeNoArgs:
		// Nothing between the call's brackets.
	case nodeFunc:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte('(')
		n.right.fmt(b)
		b.WriteString("))")
	case nodeArg:
		n.left.fmt(b)
		b.WriteString(", ")
		n.right.fmt(b)
	case nodeNeg, nodeNot:
		b.WriteByte('(')
		b.WriteString(opText[n.kind])
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeAssign, nodeOr, nodeXor, nodeAnd, nodeShl, nodeShr, nodeAdd,
		nodeSub, nodeMul, nodeDiv, nodeRem, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(opText[n.kind])
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("xc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func fmtparams(b *strings.Builder, params []string) {
	for i, p := range params {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(p)
	}
}
