//go:build go1.18
// +build go1.18

package xc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/xc"
)

func FuzzParse(f *testing.F) {
	f.Add("$x")
	f.Add("1 000 + 0xff - 0b11")
	f.Add("$f = |$x, $y| $f($x)(-$y)")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := xc.Parse(strings.NewReader(s))
		if err != nil {
			return
		}
		// Formatting must be a fixed point.
		b, err := xc.ParseString(a.String())
		if err != nil {
			t.Fatalf("%q formatted as %q, which doesn't parse: %v", s, a, err)
		}
		if a.String() != b.String() {
			t.Errorf("%q formatted as %q, then %q", s, a, b)
		}
	})
}
