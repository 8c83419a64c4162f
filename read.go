package listenrechner

import (
	"errors"
	"io"
)

// Reader reads tokens one at a time from input text.
type Reader struct {
	l    *lexer
	term bool
}

// NewReader creates a reader over src.
func NewReader(src io.RuneScanner) *Reader {
	return &Reader{l: lex(src)}
}

// Next returns the next token. At the terminator or at the end of the input,
// the error is io.EOF; Terminated distinguishes the two. A word which is not a
// token results in an *UnrecognizedTokenError with its column set. The word
// is consumed, so reading can continue after any InputError.
func (r *Reader) Next() (Token, error) {
	r.term = false
	tok, err := r.l.next()
	if err != nil {
		return Token{}, err
	}
	switch tok.kind {
	case tokenEOF:
		return Token{}, io.EOF
	case tokenEnd:
		r.term = true
		return Token{}, io.EOF
	}
	t, err := ParseToken(tok.text)
	if err != nil {
		var u *UnrecognizedTokenError
		if errors.As(err, &u) {
			u.Col = tok.pos
		}
		return Token{}, err
	}
	return t, nil
}

// Terminated reports whether the last io.EOF from Next was due to the
// terminator, meaning more expressions may follow.
func (r *Reader) Terminated() bool {
	return r.term
}

// ReadSequence reads tokens up to the terminator or the end of the input.
// The first unrecognized word ends reading with an error.
func ReadSequence(src io.RuneScanner) (*Sequence, error) {
	rd := NewReader(src)
	seq := NewSequence()
	for {
		tok, err := rd.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return seq, nil
			}
			seq.Release()
			return nil, err
		}
		seq.Append(tok)
	}
}
