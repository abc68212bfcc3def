//go:build go1.18
// +build go1.18

package xc_test

import (
	"testing"

	"github.com/zephyrtronium/xc"
)

func FuzzEval(f *testing.F) {
	f.Add("$x")
	f.Add("$f = |$x| $x * $x")
	f.Add("(|$i, $j| (|$x, $y, $z| $x*$y + $z)($i, 2, $j))(3, 1)")
	f.Add("~5 * ~8 - -0x10 * -12")
	f.Add("$log(1 << 100, 3)")
	f.Fuzz(func(t *testing.T, s string) {
		xc.EvalString(s, xc.SetVar("x", xc.Int64(1)), xc.MaxDepth(100))
	})
}
