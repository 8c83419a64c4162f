package listenrechner

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenEnd is the terminator word.
	tokenEnd
	// tokenWord is any other whitespace-delimited word.
	tokenWord
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenEnd:
		return "End"
	case tokenWord:
		return "Word"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// lexer splits its input into whitespace-separated words.
type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
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

// next scans the next word from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, the result is an empty token with io.EOF.
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
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		if unicode.IsSpace(r) {
			tok.pos++
			continue
		}
		l.unreadRune()
		if err := l.scanWord(); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenWord
		if tok.text == Terminator {
			tok.kind = tokenEnd
		}
		return tok, nil
	}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the first rune of the word before calling
				// scanWord, so the word is not empty.
				return nil
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// ParseTerm parses the rendering of a sequence, as produced by
// Sequence.String, back into tokens. Spaces are ignored. A - immediately
// followed by a digit is the sign of a number when it begins the term or
// follows an operator or open parenthesis. A negative number directly after
// a number or close parenthesis, which only a malformed sequence holds, parses
// back as a - operator followed by a number.
func ParseTerm(s string) ([]Token, error) {
	var r []Token
	signed := func() bool {
		if len(r) == 0 {
			return true
		}
		k := r[len(r)-1].Kind
		return k == KindOperator || k == KindOpen
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c == '(':
			r = append(r, OpenToken())
			i++
		case c == ')':
			r = append(r, CloseToken())
			i++
		case isDigit(c), c == '-' && i+1 < len(s) && isDigit(s[i+1]) && signed():
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			v, err := strconv.Atoi(s[i:j])
			if err != nil {
				return r, &UnrecognizedTokenError{Col: i + 1, Text: s[i:j], Kind: "number"}
			}
			r = append(r, NumberToken(v))
			i = j
		case isOperator(c):
			r = append(r, OperatorToken(c))
			i++
		default:
			_, sz := utf8.DecodeRuneInString(s[i:])
			return r, &UnrecognizedTokenError{Col: i + 1, Text: s[i : i+sz]}
		}
	}
	return r, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
