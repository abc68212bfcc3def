package xc

import (
	"math/big"
	"strconv"
)

// DomainError is an error returned when an operator or function is applied
// to arguments outside its domain, or when the result does not fit in 128
// bits.
type DomainError struct {
	// Op is the operator or function name.
	Op string
	// X is the left or only argument. It may be nil for functions of no
	// arguments.
	X *big.Int
	// Y is the right argument of a binary operator, or nil.
	Y *big.Int
	// Reason describes the failure, e.g. "overflow" or "division by zero".
	Reason string
}

func (err *DomainError) Error() string {
	r := err.Reason + " in "
	switch {
	case err.Y != nil:
		r += err.X.String() + " " + err.Op + " " + err.Y.String()
	case err.X != nil:
		r += err.Op + "(" + err.X.String() + ")"
	default:
		r += err.Op
	}
	return r
}

// CallError is an error indicating a builtin function call with the wrong
// number of arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call passed.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// DepthError is an error indicating that function calls nested too deeply,
// usually because a function was passed itself.
type DepthError struct {
	// Max is the depth limit of the context.
	Max int
}

func (err *DepthError) Error() string {
	return "function calls nested deeper than " + strconv.Itoa(err.Max)
}
