package xc

import (
	"io"
	"math/big"
	"strings"
)

// DefaultMaxDepth is the default limit on nested function calls.
const DefaultMaxDepth = 10000

// Context is a context for evaluating expressions, holding the values of
// variables. Assignments write to it. It is not safe to use a Context
// concurrently.
type Context struct {
	names    map[string]Value
	depth    int
	maxDepth int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt  map[string]Value
	depthopt int
	funcopt  struct {
		name string
		fn   Func
	}
	nofuncsopt struct{}
)

func (varopt) ctxOption()     {}
func (varsopt) ctxOption()    {}
func (depthopt) ctxOption()   {}
func (funcopt) ctxOption()    {}
func (nofuncsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val Value) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]Value) ContextOption {
	return varsopt(vars)
}

// MaxDepth sets the limit on nested function calls.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// WithFunc binds a Go function to a variable name.
func WithFunc(name string, fn Func) ContextOption {
	return funcopt{name, fn}
}

// DisableDefaultFuncs removes the default builtin functions from the context.
// Functions set by other options are kept.
func DisableDefaultFuncs() ContextOption {
	return nofuncsopt{}
}

// NewContext creates a new evaluation context. The default builtin functions
// are bound unless DisableDefaultFuncs is given.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		names:    make(map[string]Value, len(globalfuncs)),
		maxDepth: DefaultMaxDepth,
	}
	for k, v := range globalfuncs {
		ctx.names[k] = v
	}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Values are
// immutable, so the copy shares them.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		names:    make(map[string]Value, len(ctx.names)),
		maxDepth: ctx.maxDepth,
	}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	// Remove defaults first so that explicit functions survive regardless of
	// option order.
	for _, opt := range opts {
		if _, ok := opt.(nofuncsopt); ok {
			for k, v := range globalfuncs {
				if n.names[k] == Value(v) {
					delete(n.names, k)
				}
			}
			break
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.set(k, v)
			}
		case depthopt:
			n.maxDepth = int(opt)
		case funcopt:
			n.set(opt.name, NewBuiltin(opt.name, opt.fn))
		case nofuncsopt:
			// Already done. Do nothing.
		default:
			panic("xc: unknown option type")
		}
	}
	return &n
}

// Eval evaluates an expression and returns the result. The result is nil
// with a nil error if the expression has no value, e.g. it is an assignment
// or reads an undefined variable. If evaluation fails, the context is
// unchanged.
func (ctx *Context) Eval(e *Expr) (Value, error) {
	return e.n.eval(ctx)
}

// EvalString parses and evaluates one statement in the context.
func (ctx *Context) EvalString(src string) (Value, error) {
	e, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(e)
}

// Set sets the value of a variable. A nil value removes the variable.
// Returns ctx for chaining.
func (ctx *Context) Set(name string, value Value) *Context {
	ctx.set(name, value)
	return ctx
}

func (ctx *Context) set(name string, value Value) {
	if value == nil {
		delete(ctx.names, name)
		return
	}
	ctx.names[name] = value
}

// Lookup returns the value of a variable. If there is no such variable in
// the context, then the result is nil.
func (ctx *Context) Lookup(name string) Value {
	return ctx.names[name]
}

// Names returns the sorted names of the variables in the context.
func (ctx *Context) Names() []string {
	r := make([]string, 0, len(ctx.names))
	for k := range ctx.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// eval evaluates the node. A nil Value with a nil error means no value.
func (n *node) eval(ctx *Context) (Value, error) {
	switch n.kind {
	case nodeNum:
		return Number{n.num}, nil
	case nodeName:
		return ctx.names[n.name], nil
	case nodeAssign:
		v, err := n.right.eval(ctx)
		if err != nil {
			return nil, err
		}
		if v != nil {
			ctx.set(n.left.name, v)
		}
		return nil, nil
	case nodeFunc:
		return &Function{params: n.left.params, body: n.right}, nil
	case nodeCall:
		return n.call(ctx)
	case nodeOr, nodeXor, nodeAnd, nodeShl, nodeShr, nodeAdd, nodeSub,
		nodeMul, nodeDiv, nodeRem, nodePow, nodeNeg, nodeNot:
		l, err := n.left.eval(ctx)
		if err != nil {
			return nil, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return nil, err
		}
		x, ok := l.(Number)
		if !ok {
			return nil, nil
		}
		y, ok := r.(Number)
		if !ok {
			return nil, nil
		}
		z, err := arith(n.kind, x.big(), y.big())
		if err != nil {
			return nil, err
		}
		return Number{z}, nil
	default:
		panic("xc: invalid AST node " + n.kind.String())
	}
}

// call evaluates a call node.
func (n *node) call(ctx *Context) (Value, error) {
	callee, err := n.left.eval(ctx)
	if err != nil {
		return nil, err
	}
	switch f := callee.(type) {
	case *Function:
		args, err := evalargs(n.right, ctx)
		if err != nil {
			return nil, err
		}
		if ctx.depth >= ctx.maxDepth {
			return nil, &DepthError{Max: ctx.maxDepth}
		}
		c := Context{
			names:    make(map[string]Value, len(f.params)),
			depth:    ctx.depth + 1,
			maxDepth: ctx.maxDepth,
		}
		for i, p := range f.params {
			if i < len(args) && args[i] != nil {
				c.names[p] = args[i]
			}
		}
		return f.body.eval(&c)
	case *Builtin:
		args, err := evalargs(n.right, ctx)
		if err != nil {
			return nil, err
		}
		invoc := make([]*big.Int, len(args))
		for i, v := range args {
			x, ok := v.(Number)
			if !ok {
				return nil, nil
			}
			invoc[i] = x.Int()
		}
		if !f.fn.CanCall(len(invoc)) {
			return nil, &CallError{Func: f.name, Len: len(invoc)}
		}
		r, err := f.fn.Call(ctx, invoc)
		if err != nil {
			return nil, err
		}
		if !inRange(r) {
			err := &DomainError{Op: f.name, Reason: "overflow"}
			if len(args) > 0 {
				err.X = args[0].(Number).Int()
			}
			return nil, err
		}
		return Number{r}, nil
	default:
		return nil, nil
	}
}

// evalargs evaluates an argument list in order.
func evalargs(n *node, ctx *Context) ([]Value, error) {
	var args []Value
	for n.kind == nodeArg {
		v, err := n.left.eval(ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		n = n.right
	}
	if n.kind == nodeNoArgs {
		return args, nil
	}
	v, err := n.eval(ctx)
	if err != nil {
		return nil, err
	}
	return append(args, v), nil
}

// arith applies an arithmetic or bitwise operator. Unary operators ignore x.
func arith(k nodeKind, x, y *big.Int) (*big.Int, error) {
	z := new(big.Int)
	switch k {
	case nodeAdd:
		z.Add(x, y)
	case nodeSub:
		z.Sub(x, y)
	case nodeMul:
		z.Mul(x, y)
	case nodeDiv:
		if y.Sign() == 0 {
			return nil, domain(k, x, y, "division by zero")
		}
		z.Quo(x, y)
	case nodeRem:
		if y.Sign() == 0 {
			return nil, domain(k, x, y, "division by zero")
		}
		z.Rem(x, y)
	case nodePow:
		return pow(x, y)
	case nodeNeg:
		z.Neg(y)
		if !inRange(z) {
			return nil, &DomainError{Op: opText[k], X: y, Reason: "overflow"}
		}
		return z, nil
	case nodeNot:
		return z.Not(y), nil
	case nodeXor:
		return z.Xor(x, y), nil
	case nodeOr:
		return z.Or(x, y), nil
	case nodeAnd:
		return z.And(x, y), nil
	case nodeShl:
		s, err := shift(k, x, y)
		if err != nil {
			return nil, err
		}
		return wrap(z.Lsh(x, s)), nil
	case nodeShr:
		s, err := shift(k, x, y)
		if err != nil {
			return nil, err
		}
		return z.Rsh(x, s), nil
	default:
		panic("xc: no arithmetic for " + k.String())
	}
	if !inRange(z) {
		return nil, domain(k, x, y, "overflow")
	}
	return z, nil
}

// shift checks a shift amount.
func shift(k nodeKind, x, y *big.Int) (uint, error) {
	if y.Sign() < 0 || y.Cmp(big.NewInt(Bits-1)) > 0 {
		return 0, domain(k, x, y, "shift amount out of range")
	}
	return uint(y.Uint64()), nil
}

// pow raises x to the power y by squaring, failing as soon as the result
// is known to overflow. y must be in [0, 2^32).
func pow(x, y *big.Int) (*big.Int, error) {
	if y.Sign() < 0 || y.BitLen() > 32 {
		return nil, domain(nodePow, x, y, "exponent out of range")
	}
	e := y.Uint64()
	r := big.NewInt(1)
	b := new(big.Int).Set(x)
	for e > 0 {
		if e&1 != 0 {
			r.Mul(r, b)
			if !inRange(r) {
				return nil, domain(nodePow, x, y, "overflow")
			}
		}
		e >>= 1
		if e > 0 {
			// Once the base alone is out of range, multiplying it into the
			// result later must overflow too.
			b.Mul(b, b)
			if !inRange(b) {
				return nil, domain(nodePow, x, y, "overflow")
			}
		}
	}
	return r, nil
}

func domain(k nodeKind, x, y *big.Int, reason string) error {
	return &DomainError{Op: opText[k], X: x, Y: y, Reason: reason}
}

// Eval is a shortcut to parse an expression and return its result in a new
// context.
func Eval(src io.RuneScanner, opts ...ContextOption) (Value, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return ctx.Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return Eval(strings.NewReader(src), opts...)
}
