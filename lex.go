package xc

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int

	// num is the value of a tokenNum.
	num *big.Int
	// op is the operator of a tokenOp.
	op nodeKind
	// params are the names in a tokenParams.
	params []string
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input or statement.
	tokenEOF
	// tokenNum is a decoded numeric literal.
	tokenNum
	// tokenVar is a variable name following the $ sigil.
	tokenVar
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket that groups a subexpression.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
	// tokenCall is an open bracket directly after an operand, which begins
	// an argument list.
	tokenCall
	// tokenParams is a function parameter list, e.g. |$x, $y|.
	tokenParams
)

var tokenKindNames = [...]string{
	tokenNone:   "None",
	tokenEOF:    "EOF",
	tokenNum:    "Num",
	tokenVar:    "Var",
	tokenOp:     "Op",
	tokenOpen:   "Open",
	tokenClose:  "Close",
	tokenCall:   "Call",
	tokenParams: "Params",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

const (
	// Sigil introduces a variable name.
	Sigil = '$'
	// ParamDelim brackets a function parameter list. After an operand it is
	// the bitwise or operator instead.
	ParamDelim = '|'
)

// operators maps each operator spelling to its binary kind. "-" is
// subtraction here; the lexer turns it into negation where no operand
// precedes it.
var operators = map[string]nodeKind{
	"=":  nodeAssign,
	",":  nodeArg,
	"|":  nodeOr,
	"^":  nodeXor,
	"&":  nodeAnd,
	"<<": nodeShl,
	">>": nodeShr,
	"+":  nodeAdd,
	"-":  nodeSub,
	"*":  nodeMul,
	"/":  nodeDiv,
	"%":  nodeRem,
	"**": nodePow,
	"~":  nodeNot,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
	// operand is whether the last token was an operand: a number, a
	// variable, or a close bracket.
	operand bool
	// wseof is a string containing the whitespace characters that end the
	// statement after an operand.
	wseof string
	// semieof is whether a semicolon ends the statement.
	semieof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time the statement
// ends, the result is an EOF token with a nil error. Subsequent times, the
// result is an empty token with io.EOF. The caller must stop at the first
// non-nil error.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.end(tok), nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if l.operand && strings.ContainsRune(l.wseof, r) {
				return l.end(tok), nil
			}
			tok.pos++
			continue
		case r == ';' && l.semieof:
			return l.end(tok), nil
		case isAlnum(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			n, err := ParseInt(tok.text)
			if err != nil {
				return tok, &NumberError{Col: tok.pos, Text: tok.text}
			}
			tok.kind = tokenNum
			tok.num = n
			l.operand = true
			return tok, nil
		case r == Sigil:
			l.scanIdent()
			tok.text = l.buf.String()
			if tok.text == "" {
				return tok, &OperatorError{Col: tok.pos, Operator: string(Sigil)}
			}
			tok.kind = tokenVar
			l.operand = true
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			if l.operand {
				tok.kind = tokenCall
			}
			l.operand = false
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			l.operand = true
			return tok, nil
		case r == ParamDelim && !l.operand:
			params, err := l.scanParams(tok.pos)
			if err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenParams
			tok.params = params
			return tok, nil
		default:
			l.unreadRune()
			l.scanOp()
			tok.text = l.buf.String()
			op, ok := operators[tok.text]
			if !ok {
				return tok, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if op == nodeSub && !l.operand {
				op = nodeNeg
			}
			tok.kind = tokenOp
			tok.op = op
			l.operand = false
			return tok, nil
		}
	}
}

// end marks the end of the statement.
func (l *lexer) end(tok lexToken) lexToken {
	tok.kind = tokenEOF
	l.eof = true
	return tok
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanNum scans a numeric literal. Whitespace between alphanumeric runs does
// not split the literal, so "1 000 000" scans as "1000000".
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isAlnum(r):
			l.buf.WriteRune(r)
		case unicode.IsSpace(r):
			if strings.ContainsRune(l.wseof, r) {
				l.unreadRune()
				return nil
			}
			// Look past the whitespace for another run. Whitespace is
			// insignificant to every token, so it's fine to lose it.
			ok, err := l.skipSpace()
			if err != nil || !ok {
				return err
			}
		default:
			l.unreadRune()
			return nil
		}
	}
}

// skipSpace consumes whitespace that does not end the statement. The result
// is whether an alphanumeric rune follows. The rune after the whitespace is
// left unread.
func (l *lexer) skipSpace() (bool, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		if unicode.IsSpace(r) && !strings.ContainsRune(l.wseof, r) {
			continue
		}
		l.unreadRune()
		return isAlnum(r), nil
	}
}

// scanIdent scans a variable name after the sigil.
func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// Errors other than EOF surface on the next read.
			return
		}
		if r != '_' && !isAlnum(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

// scanParams scans a parameter list after its opening delimiter through the
// closing one. Each parameter must be a variable.
func (l *lexer) scanParams(pos int) ([]string, error) {
	l.buf.WriteRune(ParamDelim)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &BracketError{Col: pos, Left: string(ParamDelim)}
			}
			return nil, err
		}
		if strings.ContainsRune(l.wseof, r) || (r == ';' && l.semieof) {
			// The statement ends inside the list.
			l.unreadRune()
			return nil, &BracketError{Col: pos, Left: string(ParamDelim)}
		}
		l.buf.WriteRune(r)
		if r == ParamDelim {
			break
		}
	}
	text := l.buf.String()
	inner := strings.TrimSpace(text[1 : len(text)-1])
	if inner == "" {
		return []string{}, nil
	}
	pieces := strings.Split(inner, ",")
	params := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if !validParam(p) {
			return nil, &ParamError{Col: pos, Param: p}
		}
		params = append(params, p[1:])
	}
	return params, nil
}

func validParam(p string) bool {
	if len(p) < 2 || p[0] != Sigil {
		return false
	}
	for _, r := range p[1:] {
		if r != '_' && !isAlnum(r) {
			return false
		}
	}
	return true
}

// scanOp scans a run of one repeated symbol rune.
func (l *lexer) scanOp() {
	first, _ := l.readRune()
	l.buf.WriteRune(first)
	for {
		r, err := l.readRune()
		if err != nil {
			return
		}
		if r != first {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}
