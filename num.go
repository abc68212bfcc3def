package xc

import (
	"math/big"
	"strings"
)

// Bits is the width of the integers xc computes with.
const Bits = 128

var (
	// maxInt and minInt bound the representable range.
	maxInt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Bits-1), big.NewInt(1))
	minInt = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), Bits-1))
	// modulus is 2^Bits, used to wrap bit patterns.
	modulus = new(big.Int).Lsh(big.NewInt(1), Bits)
)

// inRange reports whether x fits in a signed 128-bit integer.
func inRange(x *big.Int) bool {
	return x.Cmp(minInt) >= 0 && x.Cmp(maxInt) <= 0
}

// wrap reduces x to the signed 128-bit integer with the same low bits.
func wrap(x *big.Int) *big.Int {
	x.Mod(x, modulus)
	if x.Cmp(maxInt) > 0 {
		x.Sub(x, modulus)
	}
	return x
}

// Unsigned returns the 128-bit two's complement bit pattern of x as a
// non-negative integer. x must be in range.
func Unsigned(x *big.Int) *big.Int {
	r := new(big.Int).Set(x)
	if r.Sign() < 0 {
		r.Add(r, modulus)
	}
	return r
}

// ParseInt decodes a numeric literal. A 0x prefix or h suffix selects
// hexadecimal, and a 0b prefix or b suffix selects binary. Unmarked text is
// decimal if it can be, otherwise hexadecimal, so "cafe" is 0xcafe. The result
// must fit in 128 bits. In expressions, a minus sign is an operator rather
// than part of the literal, so -2^127 cannot be written as one.
func ParseInt(text string) (*big.Int, error) {
	s := text
	base := 0
	switch {
	case strings.HasPrefix(s, "0x"):
		s, base = s[2:], 16
	case strings.HasSuffix(s, "h"):
		s, base = s[:len(s)-1], 16
	case strings.HasPrefix(s, "0b"):
		s, base = s[2:], 2
	case strings.HasSuffix(s, "b"):
		s, base = s[:len(s)-1], 2
	}
	if base != 0 {
		r, ok := parseBase(s, base)
		if !ok {
			return nil, &NumberError{Text: text}
		}
		return r, nil
	}
	for _, base := range [...]int{10, 16} {
		if r, ok := parseBase(s, base); ok {
			return r, nil
		}
	}
	return nil, &NumberError{Text: text}
}

// parseBase parses s in the given base. big.Int accepts a leading sign but
// not underscores or prefixes when the base is explicit.
func parseBase(s string, base int) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	r, ok := new(big.Int).SetString(s, base)
	if !ok || !inRange(r) {
		return nil, false
	}
	return r, true
}
