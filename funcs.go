package xc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from integers to an integer, implemented in Go.
type Func interface {
	// Call evaluates the function. The function arguments are passed in
	// invoc, which has a length for which CanCall returned true. Call may
	// modify the elements of invoc. A result outside the 128-bit range is
	// reported as an overflow.
	Call(ctx *Context, invoc []*big.Int) (*big.Int, error)

	// CanCall returns whether the function can be called with n arguments.
	CanCall(n int) bool
}

// fprec is the precision of floating-point approximations.
const fprec = 2 * Bits

var globalfuncs = map[string]*Builtin{
	"sqrt": NewBuiltin("sqrt", Monadic(isqrt)),
	"abs":  NewBuiltin("abs", Monadic(func(x *big.Int) (*big.Int, error) { return x.Abs(x), nil })),
	"ln":   NewBuiltin("ln", Monadic(ln)),
	"exp":  NewBuiltin("exp", Monadic(exp)),
	"log":  NewBuiltin("log", logfn{}),
}

// DefaultFuncs returns the names of the builtin functions bound by
// NewContext.
func DefaultFuncs() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

type monadic struct {
	f func(x *big.Int) (*big.Int, error)
}

func (m monadic) Call(ctx *Context, invoc []*big.Int) (*big.Int, error) {
	return m.f(invoc[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f may modify its
// argument.
func Monadic(f func(x *big.Int) (*big.Int, error)) Func {
	return monadic{f}
}

func isqrt(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, &DomainError{Op: "sqrt", X: x, Reason: "outside domain"}
	}
	return x.Sqrt(x), nil
}

// lnf computes the natural logarithm of a positive integer.
func lnf(x *big.Int) *big.Float {
	f := new(big.Float).SetPrec(fprec).SetInt(x)
	return bigfloat.Log(new(big.Float).SetPrec(fprec), f)
}

// ln computes the floor of the natural logarithm of x.
func ln(x *big.Int) (*big.Int, error) {
	if x.Sign() <= 0 {
		return nil, &DomainError{Op: "ln", X: x, Reason: "outside domain"}
	}
	// ln x >= 0 for integers x >= 1, so truncation is the floor.
	r, _ := lnf(x).Int(nil)
	return r, nil
}

// expmax is the largest argument to exp whose result fits in 128 bits.
const expmax = 88

// exp computes the floor of e^x.
func exp(x *big.Int) (*big.Int, error) {
	switch {
	case x.Sign() < 0:
		// 0 < e^x < 1
		return zero(), nil
	case x.Sign() == 0:
		return big.NewInt(1), nil
	case x.Cmp(big.NewInt(expmax)) > 0:
		return nil, &DomainError{Op: "exp", X: x, Reason: "overflow"}
	}
	f := new(big.Float).SetPrec(fprec).SetInt(x)
	r, _ := bigfloat.Exp(new(big.Float).SetPrec(fprec), f).Int(nil)
	return r, nil
}

// logfn computes the floor of a logarithm: log(x) in base 10 or log(x, b) in
// base b.
type logfn struct{}

func (logfn) Call(ctx *Context, invoc []*big.Int) (*big.Int, error) {
	x := invoc[0]
	b := big.NewInt(10)
	if len(invoc) == 2 {
		b = invoc[1]
	}
	if x.Sign() <= 0 {
		return nil, &DomainError{Op: "log", X: x, Y: b, Reason: "outside domain"}
	}
	if b.Cmp(big.NewInt(2)) < 0 {
		return nil, &DomainError{Op: "log", X: x, Y: b, Reason: "invalid base"}
	}
	q := lnf(x)
	q.Quo(q, lnf(b))
	k, _ := q.Int64()
	if k < 0 {
		k = 0
	}
	// The approximation can be off by one near exact powers. Fix it with
	// integer arithmetic so that b^k <= x < b^(k+1).
	p := new(big.Int)
	for p.Exp(b, big.NewInt(k+1), nil).Cmp(x) <= 0 {
		k++
	}
	for k > 0 && p.Exp(b, big.NewInt(k), nil).Cmp(x) > 0 {
		k--
	}
	return big.NewInt(k), nil
}

func (logfn) CanCall(n int) bool {
	return n == 1 || n == 2
}
