package xc

import (
	"io"
	"strings"
)

// Stmt = Expr | var '=' Expr
// Expr = num | var | Func | Call | Unary | Binary | '(' Expr ')'
// Func = '|' [ var { ',' var } ] '|' Expr
// Call = Expr '(' [ Expr { ',' Expr } ] ')'
// Unary = ('-' | '~') Expr
// Binary = Expr op Expr, op in | ^ & << >> + - * / % **

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses one statement so it can be evaluated with a context. The given
// options are applied in order. Without StopOn, the statement extends to the
// end of src.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan.wseof, scan.semieof = p.wseof, p.seof
	n, err := parsestmt(scan, &p)
	if err != nil {
		return nil, err
	}
	if err := check(n, true); err != nil {
		return nil, err
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// stacks holds the parser's operand and operator stacks. The operator stack
// always has the sentinel at the bottom.
type stacks struct {
	operands  []*node
	operators []operator
}

// parsestmt reduces the tokens of one statement to a single tree.
func parsestmt(scan *lexer, p *parsectx) (*node, error) {
	s := stacks{operators: []operator{sentinel}}
	var prev tokenKind
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			s.operands = append(s.operands, &node{kind: nodeNum, num: tok.num, pos: tok.pos})
		case tokenVar:
			p.names[tok.text] = true
			s.operands = append(s.operands, &node{kind: nodeName, name: tok.text, pos: tok.pos})
		case tokenOpen:
			s.operators = append(s.operators, binop(nodeOpen, tok.pos))
		case tokenCall:
			if err := s.shift(binop(nodeCall, tok.pos)); err != nil {
				return nil, err
			}
			s.operators = append(s.operators, binop(nodeOpen, tok.pos))
		case tokenClose:
			switch prev {
			case tokenCall:
				s.operands = append(s.operands, &node{kind: nodeNoArgs, pos: tok.pos})
			case tokenOpen:
				return nil, &EmptyExpressionError{Col: tok.pos}
			}
			if err := s.close(tok.pos); err != nil {
				return nil, err
			}
		case tokenParams:
			// The body is the next operand, so there is nothing to reduce.
			s.operands = append(s.operands, &node{kind: nodeParams, params: tok.params, pos: tok.pos})
			s.operators = append(s.operators, binop(nodeFunc, tok.pos))
		case tokenOp:
			op := binop(tok.op, tok.pos)
			if op.prec == unaryprec {
				// -x is 0 - x, so unary operators reuse binary reduction.
				// Nothing precedes a unary operator that could be reduced.
				s.operands = append(s.operands, &node{kind: nodeNum, num: zero(), pos: tok.pos})
				s.operators = append(s.operators, op)
				break
			}
			if err := s.shift(op); err != nil {
				return nil, err
			}
		case tokenEOF:
			if prev == tokenNone {
				return nil, &EmptyExpressionError{Col: tok.pos}
			}
			return s.finish(tok.pos)
		default:
			panic("xc: unknown token: " + tok.String())
		}
		prev = tok.kind
	}
}

// reduce pops the top operator and combines it with the top two operands.
func (s *stacks) reduce() error {
	op := s.operators[len(s.operators)-1]
	s.operators = s.operators[:len(s.operators)-1]
	if len(s.operands) < 2 {
		return &ExpressionError{Col: op.pos, Operator: opText[op.op]}
	}
	l, r := s.operands[len(s.operands)-2], s.operands[len(s.operands)-1]
	s.operands = s.operands[:len(s.operands)-2]
	s.operands = append(s.operands, &node{kind: op.op, left: l, right: r, pos: op.pos})
	return nil
}

// top returns the top operator.
func (s *stacks) top() operator {
	return s.operators[len(s.operators)-1]
}

// shift reduces every operator on top of the stack that binds at least as
// tightly as op, then pushes op.
func (s *stacks) shift(op operator) error {
	for {
		top := s.top()
		if top.marker() || op.moreBinding(top) {
			break
		}
		if err := s.reduce(); err != nil {
			return err
		}
	}
	s.operators = append(s.operators, op)
	return nil
}

// close reduces through the nearest open bracket.
func (s *stacks) close(pos int) error {
	for {
		switch top := s.top(); top.op {
		case nodeOpen:
			s.operators = s.operators[:len(s.operators)-1]
			return nil
		case nodeNone:
			return &BracketError{Col: pos, Right: ")"}
		}
		if err := s.reduce(); err != nil {
			return err
		}
	}
}

// finish reduces everything down to the sentinel and returns the single
// remaining operand.
func (s *stacks) finish(pos int) (*node, error) {
	for {
		top := s.top()
		if top.op == nodeNone {
			break
		}
		if top.op == nodeOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		if err := s.reduce(); err != nil {
			return nil, err
		}
	}
	if len(s.operands) != 1 {
		return nil, &TermCountError{Col: pos, Count: len(s.operands)}
	}
	return s.operands[0], nil
}

// check verifies that operators have operands they can give meaning to.
// Assignments are only allowed at the root, so evaluating an assignment
// writes to the context only after everything else has succeeded.
func check(n *node, root bool) error {
	switch n.kind {
	case nodeNum, nodeName:
		return nil
	case nodeParams:
		return &ExpressionError{Col: n.pos, Operator: opText[nodeFunc]}
	case nodeNoArgs:
		return &ExpressionError{Col: n.pos, Operator: "()"}
	case nodeArg:
		return &ExpressionError{Col: n.pos, Operator: opText[nodeArg]}
	case nodeAssign:
		if !root || n.left.kind != nodeName {
			return &ExpressionError{Col: n.pos, Operator: opText[nodeAssign]}
		}
		return check(n.right, false)
	case nodeFunc:
		if n.left.kind != nodeParams {
			return &ExpressionError{Col: n.pos, Operator: opText[nodeFunc]}
		}
		return check(n.right, false)
	case nodeCall:
		if err := check(n.left, false); err != nil {
			return err
		}
		return checkargs(n.right)
	case nodeOr, nodeXor, nodeAnd, nodeShl, nodeShr, nodeAdd, nodeSub,
		nodeMul, nodeDiv, nodeRem, nodePow, nodeNeg, nodeNot:
		if err := check(n.left, false); err != nil {
			return err
		}
		return check(n.right, false)
	default:
		panic("xc: invalid node kind " + n.kind.String() + " from parse")
	}
}

// checkargs checks the argument list of a call.
func checkargs(n *node) error {
	for n.kind == nodeArg {
		if err := check(n.left, false); err != nil {
			return err
		}
		n = n.right
	}
	if n.kind == nodeNoArgs {
		return nil
	}
	return check(n, false)
}

// Vars returns the variable names read by the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a fully parenthesized representation of the parsed
// expression. Parsing the result produces an identical expression.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
	// pos is the column of the operator's token.
	pos int
}

// moreBinding returns whether p should be pushed on top of than without
// reducing than first.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// marker returns whether p is the sentinel or an open bracket, which stop
// reduction.
func (p operator) marker() bool {
	return p.op == nodeNone || p.op == nodeOpen
}

// binop gets the operator for a node kind.
func binop(k nodeKind, pos int) operator {
	switch k {
	case nodeAssign:
		return operator{0, false, k, pos}
	case nodeOpen:
		return operator{2, false, k, pos}
	case nodeArg:
		return operator{3, true, k, pos}
	case nodeFunc:
		return operator{5, false, k, pos}
	case nodeOr:
		return operator{10, false, k, pos}
	case nodeXor:
		return operator{20, false, k, pos}
	case nodeAnd:
		return operator{30, false, k, pos}
	case nodeShl, nodeShr:
		return operator{40, false, k, pos}
	case nodeAdd, nodeSub:
		return operator{50, false, k, pos}
	case nodeMul, nodeDiv, nodeRem:
		return operator{60, false, k, pos}
	case nodePow:
		return operator{70, false, k, pos}
	case nodeNeg, nodeNot:
		return operator{unaryprec, false, k, pos}
	case nodeCall:
		return operator{100, false, k, pos}
	default:
		panic("xc: no operator for " + k.String())
	}
}

const unaryprec = 90

// sentinel sits at the bottom of the operator stack.
var sentinel = operator{-128, false, nodeNone, 0}
