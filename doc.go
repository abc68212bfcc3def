// Package xc implements a pocket calculator for 128-bit integers.
//
// Numbers are written in decimal, in hexadecimal with a 0x prefix or h suffix,
// or in binary with a 0b prefix or b suffix. Text that is not decimal but is
// valid hexadecimal, like "cafe", is hexadecimal. Spaces between digits are
// ignored, so "1 000 000" is a million.
//
// Operators, from loosest to tightest binding, are | ^ & (bitwise), << >>,
// + -, * / %, ** (power), and the unary - and ~. Operators of equal
// precedence group left to right, including **. Stacked unary operators
// apply right to left, so ~-5 is ~(-5).
//
// Variables start with $ and are assigned with "=", e.g. "$x = 0xff". An
// assignment has no value. "|$a, $b| $a * $b" is a function, which can be
// assigned to a variable and called like "$f(2, 3)". A function body sees only
// its own parameters, never the variables of the context that calls it.
//
// Division and remainder truncate toward zero. Results that do not fit in 128
// bits are errors, except for << which discards the bits shifted out. A
// leading - negates the literal after it, so the smallest integer, -2^127,
// has no literal form. Write it as 1 << 127 instead.
//
package xc
