package exprtree

import "strconv"

// EmptyExpressionError is an error indicating an input with no tokens. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position at the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingOperatorError is an error indicating an expression that ends while
// an operand is still required, e.g. "1+". It implements InputError.
type TrailingOperatorError struct {
	// Col is the position at the end of the input.
	Col int
}

func (err *TrailingOperatorError) Error() string {
	return errpos(err.Col, "expression ends with an operator")
}

func (err *TrailingOperatorError) Pos() int {
	return err.Col
}

// MissingOperandError is an error indicating that an operand was required but
// not found. It implements InputError.
type MissingOperandError struct {
	// Col is the position of the token that required the operand.
	Col int
	// Near is the token encountered instead: ")" for an empty group, "-" for
	// a unary minus with nothing after it, a binary operator symbol, or the
	// empty string when the surrounding context is unknown.
	Near string
}

func (err *MissingOperandError) Error() string {
	switch err.Near {
	case ")":
		return errpos(err.Col, "missing operand before ')'")
	case "-":
		return errpos(err.Col, "missing operand after unary minus")
	default:
		return errpos(err.Col, "missing operand")
	}
}

func (err *MissingOperandError) Pos() int {
	return err.Col
}

// MissingOperatorError is an error indicating two adjacent operands with no
// operator between them. It implements InputError.
type MissingOperatorError struct {
	// Col is the position of the second operand.
	Col int
}

func (err *MissingOperatorError) Error() string {
	return errpos(err.Col, "missing operator between operands")
}

func (err *MissingOperatorError) Pos() int {
	return err.Col
}

// InvalidCharError is an error indicating a character outside the expression
// grammar. It implements InputError.
type InvalidCharError struct {
	// Col is the position of the character.
	Col int
	// Char is the character.
	Char rune
}

func (err *InvalidCharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char)+" in expression")
}

func (err *InvalidCharError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" when an open parenthesis was never closed.
	Left string
	// Right is ")" when a close parenthesis had no matching open.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NumberError is an error indicating an integer literal that could not be
// scanned. It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the scanned text.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// LitOverflowError is an error indicating an integer literal whose magnitude
// does not fit in an int64. It implements InputError.
type LitOverflowError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal's digits.
	Text string
}

func (err *LitOverflowError) Error() string {
	return errpos(err.Col, "integer literal overflow: "+err.Text)
}

func (err *LitOverflowError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating a token sequence that did
// not reduce to a single tree. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the offending token, or 0 when the problem is
	// only detectable at the end of the sequence.
	Col int
}

func (err *MalformedExpressionError) Error() string {
	if err.Col == 0 {
		return "malformed expression"
	}
	return errpos(err.Col, "malformed expression")
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from scanning or parsing invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based column of the
	// character or token that caused it.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingOperatorError)(nil)
	_ InputError = (*MissingOperandError)(nil)
	_ InputError = (*MissingOperatorError)(nil)
	_ InputError = (*InvalidCharError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*LitOverflowError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)

// NameError is an error from a lookup for a variable that is missing from the
// bindings supplied to evaluation.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// OverflowError is an error indicating that an arithmetic result does not fit
// in an int64.
type OverflowError struct {
	// Op is the operator symbol of the operation that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	switch err.Op {
	case "+":
		return "overflow in addition"
	case "-":
		return "overflow in subtraction"
	case "*":
		return "overflow in multiplication"
	case "/":
		return "overflow in division"
	default:
		return "arithmetic overflow"
	}
}

// DivZeroError is an error indicating division by zero.
type DivZeroError struct{}

func (err *DivZeroError) Error() string {
	return "division by zero"
}

// MalformedTreeError is an error indicating a structurally invalid tree: an
// operator node missing a child or a node of unknown kind. The builder never
// produces such trees, so any occurrence is a bug in this package rather than
// a problem with user input.
type MalformedTreeError struct {
	// Kind is the node kind that failed validation.
	Kind string
}

func (err *MalformedTreeError) Error() string {
	return "malformed tree at " + err.Kind + " node"
}

// BadTokenError is an error indicating a preorder leaf token that is neither
// a valid int64 literal nor a variable name.
type BadTokenError struct {
	// Tok is the offending token.
	Tok string
}

func (err *BadTokenError) Error() string {
	return "bad integer token: " + strconv.Quote(err.Tok)
}

// PreorderError is an error indicating a preorder stream that ended before a
// complete tree was read.
type PreorderError struct{}

func (err *PreorderError) Error() string {
	return "truncated preorder stream"
}

// TrailingTokenError is an error indicating tokens left over after a complete
// preorder tree was read.
type TrailingTokenError struct {
	// Tok is the first trailing token.
	Tok string
}

func (err *TrailingTokenError) Error() string {
	return "trailing garbage in preorder stream: " + strconv.Quote(err.Tok)
}

// BindingError is an error indicating an invalid line in a variable bindings
// file.
type BindingError struct {
	// Line is the 1-based line number.
	Line int
	// Reason describes the problem with the line.
	Reason string
}

func (err *BindingError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Reason
}
