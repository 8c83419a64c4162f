package listenrechner_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	lr "github.com/goldfishcode/Zwischentest3-LeeroyderListenrechner"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		r     int
		steps []string
	}{
		{"single", "7 =", 7, nil},
		{"negative-literal", "-7 =", -7, nil},
		{"precedence", "2 + 3 * 4 =", 14, []string{"2+12", "14"}},
		{"sub-left-to-right", "20 - 5 - 3 =", 12, []string{"15-3", "12"}},
		{"div-left-to-right", "100 / 10 / 2 =", 5, []string{"10/2", "5"}},
		{"div-chain", "8 / 2 / 2", 2, []string{"4/2", "2"}},
		{"negative-result", "1 - 5 - 3 =", -7, []string{"-4-3", "-7"}},
		{"truncate", "7 / 2 =", 3, []string{"3"}},
		{"truncate-negative", "-7 / 2 =", -3, []string{"-3"}},
		{"div-zero", "6 / 0 =", 6, []string{"6"}},
		{"div-zero-chain", "6 / 0 * 2 =", 12, []string{"6*2", "12"}},
		{"mixed", "2 + 3 * 4 - 10 / 5 =", 12, []string{"2+12-10/5", "2+12-2", "14-2", "12"}},
		{"group", "( 2 + 3 ) * 4 =", 20, []string{"(5)*4", "20"}},
		{"group-right", "4 * ( 2 + 3 ) =", 20, []string{"4*(5)", "20"}},
		{"group-middle", "2 * ( 3 + 4 ) * 5 =", 70, []string{"2*(7)*5", "14*5", "70"}},
		{"group-only", "( 5 ) =", 5, nil},
		{"group-nested-only", "( ( ( 5 ) ) ) =", 5, nil},
		{"groups", "( 1 + 2 ) * ( 3 + 4 ) =", 21, []string{"(1+2)*(7)", "(3)*7", "21"}},
		{"nested", "( ( 1 + 2 ) * ( 3 + 4 ) ) =", 21, []string{"((1+2)*(7))", "((3)*7)", "(21)"}},
		{"group-precedence", "( 1 + 2 * 3 ) - 4 =", 3, []string{"(1+6)-4", "(7)-4", "3"}},
		{"deep", "10 - ( 2 * ( 3 - ( 4 / 2 ) ) ) =", 8, []string{"10-(2*(3-(2)))", "10-(2*(1))", "10-(2)", "8"}},
		{"empty-group", "( ) 4 =", 4, nil},
		{"no-terminator", "1 + 1", 2, []string{"2"}},
		{"after-terminator", "3 * 3 = 1 + 1", 9, []string{"9"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := lr.EvalString(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r.Value != c.r {
				t.Errorf("%q: want %d, got %d", c.src, c.r, r.Value)
			}
			if diff := cmp.Diff(c.steps, r.Steps); diff != "" {
				t.Errorf("%q: wrong steps (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		pos    int
		reason string
		steps  []string
	}{
		{"empty", "", 0, "empty", nil},
		{"terminator-only", "=", 0, "empty", nil},
		{"only-empty-group", "( ) =", 0, "empty", nil},
		{"no-right", "2 + =", 2, "right", nil},
		{"no-left", "+ 2 =", 1, "left", nil},
		{"operator-pair", "2 * / 3 =", 2, "right", nil},
		{"empty-group-operand", "2 + ( ) =", 2, "right", nil},
		{"unmatched-open", "( 2 + 3 =", 1, "unmatched open", nil},
		{"unmatched-open-outer", "( ( 2 + 3 ) =", 1, "unmatched open", []string{"((5)"}},
		{"unmatched-close", "2 + 3 ) =", 4, "unmatched close", nil},
		{"unmatched-close-after-group", "( 1 ) ) =", 2, "unmatched close", nil},
		{"no-operator", "1 2 =", 2, "operator", nil},
		{"no-operator-in-group", "( 1 2 ) =", 3, "operator", nil},
		{"no-operator-after-group", "( 1 + 1 ) 3 =", 2, "operator", []string{"(2)3"}},
		{"after-steps", "2 * 3 + =", 2, "right", []string{"6+"}},
		{"lone-operator-in-group", "( + ) =", 2, "left", nil},
		{"operator-group-between-numbers", "2 ( + ) 3 =", 3, "left", nil},
		{"multiplicative-group-between-numbers", "3 ( * ) 4 =", 3, "left", nil},
		{"operator-group-nested", "( 2 ( - ) 1 ) =", 4, "left", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq, err := lr.ReadSequence(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("reading %q: %v", c.src, err)
			}
			r, err := lr.NewContext().Eval(seq)
			var m *lr.MalformedExpressionError
			if !errors.As(err, &m) {
				t.Fatalf("%q: wanted MalformedExpressionError, got %v (result %d)", c.src, err, r.Value)
			}
			if m.Pos() != c.pos {
				t.Errorf("%q: error at %d, want %d: %v", c.src, m.Pos(), c.pos, err)
			}
			if !strings.Contains(m.Reason, c.reason) {
				t.Errorf("%q: %q does not mention %q", c.src, m.Reason, c.reason)
			}
			if diff := cmp.Diff(c.steps, r.Steps); diff != "" {
				t.Errorf("%q: wrong steps (-want +got):\n%s", c.src, diff)
			}
			if seq.Len() != 0 {
				t.Errorf("%q: %d tokens left after error: %q", c.src, seq.Len(), seq.String())
			}
		})
	}
}

func TestEvalStrictDivision(t *testing.T) {
	r, err := lr.EvalString("1 + 6 / 0 =", lr.StrictDivision())
	var d *lr.DivisionByZeroError
	if !errors.As(err, &d) {
		t.Fatalf("wanted DivisionByZeroError, got %v (result %d)", err, r.Value)
	}
	if d.Dividend != 6 || d.Pos() != 4 {
		t.Errorf("wrong error contents: %+v", d)
	}
	if r, err := lr.EvalString("6 / 2 =", lr.StrictDivision()); err != nil || r.Value != 3 {
		t.Errorf("strict division broke 6/2: %d, %v", r.Value, err)
	}
}

func TestEvalUnrecognized(t *testing.T) {
	_, err := lr.EvalString("2 + x =")
	var u *lr.UnrecognizedTokenError
	if !errors.As(err, &u) {
		t.Fatalf("wanted UnrecognizedTokenError, got %v", err)
	}
	if u.Text != "x" || u.Pos() != 5 {
		t.Errorf("wrong error contents: %+v", u)
	}
	var ie lr.InputError
	if !errors.As(err, &ie) {
		t.Errorf("%T does not implement InputError", err)
	}
}

// TestEvalTrace checks that every step is the rendering of the sequence as it
// is at that moment, and that the sequence holds only the result afterward.
func TestEvalTrace(t *testing.T) {
	srcs := []string{
		"2 + 3 * 4 =",
		"( ( 1 + 2 ) * ( 3 + 4 ) ) =",
		"10 - ( 2 * ( 3 - ( 4 / 2 ) ) ) =",
		"1 - 5 - 3 * -2 / ( 7 - 8 ) =",
		"( 6 / 0 ) - ( -3 ) * ( 2 - ( 5 ) ) =",
	}
	for _, src := range srcs {
		seq, err := lr.ReadSequence(strings.NewReader(src))
		if err != nil {
			t.Fatalf("reading %q: %v", src, err)
		}
		var seen []string
		ctx := lr.NewContext(lr.OnStep(func(step string) {
			seen = append(seen, step)
			toks, err := lr.ParseTerm(step)
			if err != nil {
				t.Errorf("%q: step %q does not parse: %v", src, step, err)
				return
			}
			if diff := cmp.Diff(seq.Tokens(), toks); diff != "" {
				t.Errorf("%q: step %q differs from the sequence (-seq +step):\n%s", src, step, diff)
			}
		}))
		r, err := ctx.Eval(seq)
		if err != nil {
			t.Fatalf("evaluating %q: %v", src, err)
		}
		if diff := cmp.Diff(r.Steps, seen); diff != "" {
			t.Errorf("%q: OnStep saw different steps (-result +seen):\n%s", src, diff)
		}
		if seq.Len() != 1 {
			t.Errorf("%q: %d tokens left after evaluation: %q", src, seq.Len(), seq.String())
		}
		if diff := cmp.Diff([]lr.Token{lr.NumberToken(r.Value)}, seq.Tokens()); diff != "" {
			t.Errorf("%q: sequence does not hold the result (-want +got):\n%s", src, diff)
		}
	}
}
