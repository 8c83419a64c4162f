package listenrechner

import "strconv"

// Kind is the variant of a Token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is an integer.
	KindNumber
	// KindOperator is one of Operators.
	KindOperator
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the bytes which are binary operators.
const Operators = "+-*/"

// Terminator is the input word which ends an expression.
const Terminator = "="

// Token is a single element of an expression. Only the Value of a number
// token ever changes, when it receives the result of a reduction.
type Token struct {
	Kind Kind
	// Value is the number of a KindNumber token.
	Value int
	// Op is the operator byte of a KindOperator token.
	Op byte
}

// NumberToken returns a number token.
func NumberToken(v int) Token {
	return Token{Kind: KindNumber, Value: v}
}

// OperatorToken returns an operator token. Panics if op is not one of
// Operators.
func OperatorToken(op byte) Token {
	if !isOperator(op) {
		panic("listenrechner: invalid operator " + strconv.QuoteRune(rune(op)))
	}
	return Token{Kind: KindOperator, Op: op}
}

// OpenToken returns an open parenthesis.
func OpenToken() Token {
	return Token{Kind: KindOpen}
}

// CloseToken returns a close parenthesis.
func CloseToken() Token {
	return Token{Kind: KindClose}
}

func isOperator(op byte) bool {
	switch op {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// Multiplicative reports whether t is * or /.
func (t Token) Multiplicative() bool {
	return t.Kind == KindOperator && (t.Op == '*' || t.Op == '/')
}

// Additive reports whether t is + or -.
func (t Token) Additive() bool {
	return t.Kind == KindOperator && (t.Op == '+' || t.Op == '-')
}

// String returns the canonical text of t, as used in trace steps.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.Itoa(t.Value)
	case KindOperator:
		return string(t.Op)
	case KindOpen:
		return "("
	case KindClose:
		return ")"
	}
	return "$"
}

// ParseToken converts one input word to a token. Numbers are decimal integers
// with an optional sign, so "-5" is a number while "-" is an operator. Any
// other text results in an *UnrecognizedTokenError.
func ParseToken(text string) (Token, error) {
	switch text {
	case "(":
		return OpenToken(), nil
	case ")":
		return CloseToken(), nil
	case "+", "-", "*", "/":
		return OperatorToken(text[0]), nil
	}
	if !numeric(text) {
		return Token{}, &UnrecognizedTokenError{Text: text}
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		// Only range errors get here.
		return Token{}, &UnrecognizedTokenError{Text: text, Kind: "number"}
	}
	return NumberToken(v), nil
}

// numeric reports whether s has the form [+-]?[0-9]+.
func numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
