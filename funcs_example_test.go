package xc_test

import (
	"fmt"
	"math/big"

	"github.com/zephyrtronium/xc"
)

type nargin struct{}

func (nargin) CanCall(n int) bool {
	return true
}

func (nargin) Call(ctx *xc.Context, invoc []*big.Int) (*big.Int, error) {
	return big.NewInt(int64(len(invoc))), nil
}

func ExampleFunc() {
	ctx := xc.NewContext(xc.WithFunc("nargin", nargin{}))

	a, _ := xc.ParseString("$nargin()")
	b, _ := xc.ParseString("$nargin(100)")
	c, _ := xc.ParseString("$nargin(3, 2, 1)")
	for _, e := range []*xc.Expr{a, b, c} {
		v, _ := ctx.Eval(e)
		fmt.Println(v, e)
	}

	// Output:
	// 0 ($nargin())
	// 1 ($nargin(100))
	// 3 ($nargin(3, 2, 1))
}

func ExampleMonadic() {
	double := xc.Monadic(func(x *big.Int) (*big.Int, error) {
		return x.Lsh(x, 1), nil
	})
	ctx := xc.NewContext(xc.WithFunc("double", double))
	v, err := ctx.EvalString("$double($double(0x10))")
	fmt.Println(v, err)

	// Output:
	// 64 <nil>
}
