package xc_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/xc"
)

func TestBuiltins(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"sqrt", "$sqrt(16)", "4"},
		{"sqrt-floor", "$sqrt(17)", "4"},
		{"sqrt-zero", "$sqrt(0)", "0"},
		{"sqrt-max", "$sqrt(" + maxInt + ")", "13043817825332782212"},

		{"abs", "$abs(-5)", "5"},
		{"abs-pos", "$abs(5)", "5"},

		{"ln-one", "$ln(1)", "0"},
		{"ln-two", "$ln(2)", "0"},
		{"ln-three", "$ln(3)", "1"},
		{"ln-eight", "$ln(8)", "2"},
		{"ln-max", "$ln(" + maxInt + ")", "88"},

		{"exp-zero", "$exp(0)", "1"},
		{"exp-one", "$exp(1)", "2"},
		{"exp-two", "$exp(2)", "7"},
		{"exp-ten", "$exp(10)", "22026"},
		{"exp-neg", "$exp(-5)", "0"},
		{"exp-max", "$exp(88)", "165163625499400185552832979626485876706"},

		{"log", "$log(1000)", "3"},
		{"log-below", "$log(999)", "2"},
		{"log-one", "$log(1)", "0"},
		{"log-max", "$log(" + maxInt + ")", "38"},
		{"log2", "$log(1024, 2)", "10"},
		{"log2-below", "$log(1023, 2)", "9"},
		{"log2-max", "$log(" + maxInt + ", 2)", "126"},
		{"log3", "$log(81, 3)", "4"},
		{"log3-below", "$log(80, 3)", "3"},
		{"log-bigbase", "$log(5, 1000)", "0"},

		{"expr-args", "$sqrt(4 ** 2) + $log(2 ** 10, 1 << 1)", "14"},
	}
	ctx := xc.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := ctx.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if v == nil || v.String() != c.r {
				t.Errorf("wrong result for %q: want %s, got %v", c.src, c.r, v)
			}
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"sqrt-neg", "$sqrt(-1)", new(xc.DomainError)},
		{"abs-min", "$abs(1 << 127)", new(xc.DomainError)},
		{"ln-zero", "$ln(0)", new(xc.DomainError)},
		{"ln-neg", "$ln(-3)", new(xc.DomainError)},
		{"exp-big", "$exp(89)", new(xc.DomainError)},
		{"log-zero", "$log(0)", new(xc.DomainError)},
		{"log-base-one", "$log(8, 1)", new(xc.DomainError)},
		{"log-base-neg", "$log(8, -2)", new(xc.DomainError)},

		{"sqrt-none", "$sqrt()", new(xc.CallError)},
		{"sqrt-two", "$sqrt(1, 2)", new(xc.CallError)},
		{"log-three", "$log(1, 2, 3)", new(xc.CallError)},
	}
	ctx := xc.NewContext()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := ctx.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q gave %v with no error", c.src, v)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("%q gave wrong error type: want %T, got %#v", c.src, c.err, err)
			}
		})
	}
}

func TestDefaultFuncs(t *testing.T) {
	want := []string{"abs", "exp", "ln", "log", "sqrt"}
	if got := xc.DefaultFuncs(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong default funcs: want %q, got %q", want, got)
	}
}
