package xc

import "strconv"

// NumberError is an error indicating a numeric literal that could not be
// decoded, either because its digits are invalid for its radix or because it
// does not fit in 128 bits. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the complete literal, including any radix markers.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "could not parse number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a symbol run that is not an operator.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating an operator that could not be
// applied, either because it lacks operands or because its operands have a
// shape it does not accept, like assigning to a number. It implements
// InputError.
type ExpressionError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's spelling.
	Operator string
}

func (err *ExpressionError) Error() string {
	return errpos(err.Col, "cannot apply operator "+strconv.Quote(err.Operator))
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// TermCountError is an error indicating that an expression did not reduce to
// exactly one term, e.g. two variables with no operator between them. It
// implements InputError.
type TermCountError struct {
	// Col is the position of the end of the expression.
	Col int
	// Count is the number of terms that remained.
	Count int
}

func (err *TermCountError) Error() string {
	return errpos(err.Col, "expression has "+strconv.Itoa(err.Count)+" terms, not 1")
}

func (err *TermCountError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, if it is the unmatched one.
	Left string
	// Right is the closing bracket, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ParamError is an error indicating a function parameter that is not a
// variable name. It implements InputError.
type ParamError struct {
	// Col is the position of the parameter list.
	Col int
	// Param is the offending parameter text.
	Param string
}

func (err *ParamError) Error() string {
	return errpos(err.Col, "invalid parameter "+strconv.Quote(err.Param))
}

func (err *ParamError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a statement with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the statement.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*TermCountError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ParamError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
