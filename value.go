package xc

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is the result of evaluating an expression. It is a Number, a
// *Function, or a *Builtin.
type Value interface {
	fmt.Stringer
	isValue()
}

// Number is a signed 128-bit integer value. The zero Number is 0.
type Number struct {
	x *big.Int
}

// NewNumber creates a Number from a copy of x. Panics if x does not fit in
// 128 bits.
func NewNumber(x *big.Int) Number {
	if !inRange(x) {
		panic("xc: " + x.String() + " out of range")
	}
	return Number{new(big.Int).Set(x)}
}

// Int64 creates a Number from an int64.
func Int64(x int64) Number {
	return Number{big.NewInt(x)}
}

// Int returns a copy of the number's value.
func (n Number) Int() *big.Int {
	return new(big.Int).Set(n.big())
}

// big returns the number's value without copying. The result must not be
// modified.
func (n Number) big() *big.Int {
	if n.x == nil {
		return zero()
	}
	return n.x
}

func (n Number) String() string {
	return n.big().String()
}

func (Number) isValue() {}

// Function is a user-defined function. Calling it evaluates its body in a
// new context holding only its parameters.
type Function struct {
	params []string
	body   *node
}

// Params returns the function's parameter names.
func (f *Function) Params() []string {
	return append(([]string)(nil), f.params...)
}

// String returns the function's signature and fully parenthesized body, e.g.
// "($x, $y) -> ($x + $y)".
func (f *Function) String() string {
	var b strings.Builder
	b.WriteByte('(')
	fmtparams(&b, f.params)
	b.WriteString(") -> ")
	f.body.fmt(&b)
	return b.String()
}

func (*Function) isValue() {}

// Builtin is a function implemented in Go.
type Builtin struct {
	name string
	fn   Func
}

// NewBuiltin wraps a Func as a Value.
func NewBuiltin(name string, fn Func) *Builtin {
	return &Builtin{name: name, fn: fn}
}

// Name returns the name the builtin was created with.
func (b *Builtin) Name() string {
	return b.name
}

func (b *Builtin) String() string {
	return "<builtin " + b.name + ">"
}

func (*Builtin) isValue() {}
