package listenrechner

import "strconv"

// UnrecognizedTokenError is an error indicating an input word that is not a
// number, operator, or parenthesis. It implements InputError.
type UnrecognizedTokenError struct {
	// Col is the position of the word in its input, or 0 if the word did not
	// come from a Reader.
	Col int
	// Text is the word that was not understood.
	Text string
	// Kind is "number" if the word looked like an integer that does not fit
	// in an int, otherwise the empty string.
	Kind string
}

func (err *UnrecognizedTokenError) Error() string {
	msg := "unrecognized token " + strconv.Quote(err.Text)
	if err.Kind != "" {
		msg = "invalid " + err.Kind + " token " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *UnrecognizedTokenError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating a sequence that cannot be
// reduced to a single number: an operator without an operand, an unmatched
// parenthesis, leftover tokens, or an empty expression. It implements
// InputError.
type MalformedExpressionError struct {
	// Index is the 1-based position in the sequence of the offending token at
	// the time the problem was found, or 0 for an empty expression.
	Index int
	// Token is the text of the offending token, if any.
	Token string
	// Reason describes the problem.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	msg := "malformed expression: " + err.Reason
	if err.Token != "" {
		msg += " at " + strconv.Quote(err.Token)
	}
	if err.Index <= 0 {
		return msg
	}
	return errpos(err.Index, msg)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Index
}

// DivisionByZeroError is an error indicating a division by zero. It only
// occurs when evaluating with StrictDivision. It implements InputError.
type DivisionByZeroError struct {
	// Index is the 1-based position of the / operator in the sequence.
	Index int
	// Dividend is the left operand of the division.
	Dividend int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Index, "division by zero: "+strconv.Itoa(err.Dividend)+"/0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Index
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the token that caused the error. For
	// errors from reading input, this is the column in runes; for errors
	// from evaluation, it is the token's position in the sequence.
	Pos() int
}

var (
	_ InputError = (*UnrecognizedTokenError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
