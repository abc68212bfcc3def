package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/xc"
)

type format int

const (
	formatDec format = iota
	formatHex
	formatBin
)

var formatNames = map[string]format{
	"dec": formatDec,
	"hex": formatHex,
	"bin": formatBin,
}

// show writes a value to w. Numbers are written in each of formats in order,
// or in all three with a bit ruler if formats is empty.
func show(w io.Writer, v xc.Value, formats []format) error {
	n, ok := v.(xc.Number)
	if !ok {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	x := n.Int()
	if len(formats) == 0 {
		bin, ruler := showBin(x)
		lines := []string{showDec(x) + "  ", showHex(x), bin, ruler}
		width := 0
		for _, l := range lines {
			if len(l) > width {
				width = len(l)
			}
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "%*s\n", width, l); err != nil {
				return err
			}
		}
		return nil
	}
	for _, f := range formats {
		var s string
		switch f {
		case formatDec:
			s = showDec(x)
		case formatHex:
			s = showHex(x)
		case formatBin:
			s, _ = showBin(x)
		default:
			panic("xc: unknown format " + strconv.Itoa(int(f)))
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// group splits digits into runs of n from the right.
func group(digits string, n int) []string {
	var r []string
	for len(digits) > n {
		r = append(r, digits[len(digits)-n:])
		digits = digits[:len(digits)-n]
	}
	r = append(r, digits)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// showDec formats x in decimal with digits in groups of three.
func showDec(x *big.Int) string {
	s := x.String()
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	return sign + strings.Join(group(s, 3), " ")
}

// showHex formats the two's complement bits of x in hexadecimal, one group
// per byte.
func showHex(x *big.Int) string {
	return strings.Join(group(xc.Unsigned(x).Text(16), 2), " ") + " h"
}

// showBin formats the two's complement bits of x in binary, in groups of four.
// The ruler has the index of the low bit of each group under its last digit.
func showBin(x *big.Int) (line, ruler string) {
	g := group(xc.Unsigned(x).Text(2), 4)
	marks := make([]string, len(g))
	for i, digits := range g {
		label := strconv.Itoa(4 * (len(g) - 1 - i))
		if len(label) < len(digits) {
			label = strings.Repeat("-", len(digits)-len(label)) + label
		}
		marks[i] = label
	}
	return strings.Join(g, " ") + " b", strings.Join(marks, "-") + "  "
}
