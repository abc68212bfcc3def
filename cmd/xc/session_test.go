package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/zephyrtronium/xc"
)

func newSession(formats ...format) (*session, *strings.Builder, *strings.Builder) {
	var out, errs strings.Builder
	s := session{
		ctx:     xc.NewContext(),
		out:     &out,
		errs:    &errs,
		formats: formats,
	}
	return &s, &out, &errs
}

func TestSessionArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		out  string
		errs string
	}{
		{"one", []string{"1 + 2"}, "> 1 + 2\n3\n", ""},
		{"stmts", []string{"$x = 2; $x * 3;; "}, "> $x = 2\n> $x * 3\n6\n", ""},
		{"args", []string{"$x = 2", "$x << 4"}, "> $x = 2\n> $x << 4\n32\n", ""},
		{"error", []string{"1/0; 2"}, "> 1/0\n> 2\n2\n", "error: division by zero in 1 / 0\n"},
		{"syntax", []string{"1 +; 2"}, "> 1 +\n> 2\n2\n", "error: 3: cannot apply operator \"+\"\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, out, errs := newSession(formatDec)
			for _, arg := range c.args {
				s.args(arg)
			}
			if out.String() != c.out {
				t.Errorf("wrong output:\nwant %q\ngot  %q", c.out, out.String())
			}
			if errs.String() != c.errs {
				t.Errorf("wrong errors:\nwant %q\ngot  %q", c.errs, errs.String())
			}
		})
	}
}

func TestSessionStream(t *testing.T) {
	cases := []struct {
		name string
		src  string
		out  string
		errs []string
	}{
		{"lines", "1\n2\n", "1\n2\n", nil},
		{"semis", "$x = 5; $x + 1;$x", "6\n5\n", nil},
		{"blank", "\n\n;\n1\n\n", "1\n", nil},
		{"continued", "1 +\n2\n", "3\n", nil},
		{"undef", "$nope\n1\n", "1\n", nil},
		{"skip", "1 ++ 2; 3\n", "3\n", []string{`unknown operator "++"`}},
		{"skipline", "1 ++ 2 + 4\n5", "5\n", []string{`unknown operator "++"`}},
		{"terms", "1 $x\n4\n", "4\n", []string{"2 terms"}},
		{"end", "4\n1 +", "4\n", []string{`cannot apply operator "+"`}},
		{"eval", "1 / 0\n7\n", "7\n", []string{"division by zero"}},
		{"parens", "() + 1; 2\n", "2\n", []string{"no expression"}},
		{"params", "$f = |$x\n2\n", "2\n", []string{"open bracket |"}},
		{"paramsnext", "$f = |$x, $y\n$y = 2\n$y\n", "2\n", []string{"open bracket |"}},
		{"two", "1 ++ 2\n3 $x\n6", "6\n", []string{`"++"`, "2 terms"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, out, errs := newSession(formatDec)
			if err := s.stream(strings.NewReader(c.src)); err != nil {
				t.Fatal(err)
			}
			if out.String() != c.out {
				t.Errorf("wrong output:\nwant %q\ngot  %q", c.out, out.String())
			}
			lines := strings.Split(strings.TrimSuffix(errs.String(), "\n"), "\n")
			if len(c.errs) == 0 {
				if errs.Len() != 0 {
					t.Errorf("unexpected errors: %q", errs.String())
				}
				return
			}
			if len(lines) != len(c.errs) {
				t.Fatalf("wrong number of errors: want %d, got %q", len(c.errs), errs.String())
			}
			for i, want := range c.errs {
				if !strings.Contains(lines[i], want) {
					t.Errorf("error %d %q doesn't mention %q", i, lines[i], want)
				}
			}
		})
	}
}

type failReader struct {
	*strings.Reader
}

var errRead = errors.New("read failed")

func (r failReader) ReadRune() (rune, int, error) {
	c, sz, err := r.Reader.ReadRune()
	if err == io.EOF {
		return 0, 0, errRead
	}
	return c, sz, err
}

func TestSessionStreamReadError(t *testing.T) {
	s, out, _ := newSession(formatDec)
	err := s.stream(failReader{strings.NewReader("1\n2 + ")})
	if !errors.Is(err, errRead) {
		t.Errorf("wrong error: want %v, got %v", errRead, err)
	}
	if out.String() != "1\n" {
		t.Errorf("wrong output before failure: %q", out.String())
	}
}
