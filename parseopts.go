package xc

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	s  bool
	ws string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// seof indicates whether semicolons end the statement.
	seof bool
}

// StopOn tells the parser to treat a list of characters as ending the
// statement. Each rune must be a semicolon or whitespace codepoint.
// Whitespace does not end a statement where a term is expected, e.g. at the
// beginning of a statement or following an operator or bracket, so a long
// expression may continue on the next line after an operator.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		switch {
		case r == ';':
			o.s = true
		case unicode.IsSpace(r):
			if have(r) {
				continue
			}
			v = append(v, r)
		default:
			panic("xc: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(v)
	return &o
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.seof = o.s
	p.wseof = o.ws
	return p
}
