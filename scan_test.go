package listenrechner

import (
	"errors"
	"testing"
)

// seq builds a sequence from a compact term.
func seq(t *testing.T, term string) *Sequence {
	t.Helper()
	toks, err := ParseTerm(term)
	if err != nil {
		t.Fatalf("bad term %q: %v", term, err)
	}
	return NewSequence(toks...)
}

func TestLastOpen(t *testing.T) {
	cases := []struct {
		term string
		want ID
	}{
		{"1+2", None},
		{"(1+2)", 0},
		{"(1)+(2)", 4},
		{"((1+2)*(3+4))", 7},
		{"((1))", 1},
	}
	for _, c := range cases {
		if got := seq(t, c.term).lastOpen(); got != c.want {
			t.Errorf("%q: last open is %d, want %d", c.term, got, c.want)
		}
	}
}

func TestFirstOperators(t *testing.T) {
	cases := []struct {
		term     string
		from     ID
		mul, add ID
	}{
		{"1+2*3", 0, 3, 1},
		{"1+2*3", 2, 3, None},
		{"1*2/3-4", 0, 1, 5},
		{"1*2/3-4", 2, 3, 5},
		{"4", 0, None, None},
		{"4", None, None, None},
	}
	for _, c := range cases {
		s := seq(t, c.term)
		if got := s.firstMultiplicative(c.from); got != c.mul {
			t.Errorf("%q from %d: first multiplicative is %d, want %d", c.term, c.from, got, c.mul)
		}
		if got := s.firstAdditive(c.from); got != c.add {
			t.Errorf("%q from %d: first additive is %d, want %d", c.term, c.from, got, c.add)
		}
	}
}

func TestMatchClose(t *testing.T) {
	cases := []struct {
		term string
		open ID
		want ID
		bad  bool
	}{
		{"(1)", 0, 2, false},
		{"()", 0, 1, false},
		{"((1+2)*(3))", 0, 10, false},
		{"((1+2)*(3))", 1, 5, false},
		{"((1+2)*(3))", 7, 9, false},
		{"(1+2", 0, None, true},
		{"((1)", 0, None, true},
	}
	for _, c := range cases {
		got, err := seq(t, c.term).matchClose(c.open)
		if c.bad {
			var m *MalformedExpressionError
			if !errors.As(err, &m) {
				t.Errorf("%q: wanted MalformedExpressionError, got %v", c.term, err)
				continue
			}
			if m.Index != int(c.open)+1 || m.Token != "(" {
				t.Errorf("%q: error names %q at %d, want \"(\" at %d", c.term, m.Token, m.Index, c.open+1)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.term, err)
		}
		if got != c.want {
			t.Errorf("%q: close for %d is %d, want %d", c.term, c.open, got, c.want)
		}
	}
}
