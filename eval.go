package listenrechner

import (
	"io"
	"strings"
)

// Context is a context for evaluating sequences. It is not safe to use a
// Context concurrently.
type Context struct {
	strict bool
	onstep func(string)
	steps  []string
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	strictopt struct{}
	stepopt   func(string)
)

func (strictopt) ctxOption() {}
func (stepopt) ctxOption()   {}

// StrictDivision makes division by zero a *DivisionByZeroError instead of
// leaving the dividend unchanged.
func StrictDivision() ContextOption {
	return strictopt{}
}

// OnStep sets a function called with the rendering of the sequence after
// every reduction, as the reduction happens.
func OnStep(fn func(step string)) ContextOption {
	return stepopt(fn)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case strictopt:
			ctx.strict = true
		case stepopt:
			ctx.onstep = opt
		default:
			panic("listenrechner: unknown option type")
		}
	}
	return &ctx
}

// Evaluation is the outcome of evaluating a sequence.
type Evaluation struct {
	// Value is the final number.
	Value int
	// Steps holds the rendering of the whole sequence after each reduction,
	// in order. A sequence that needs no reduction has no steps.
	Steps []string
}

// Eval reduces seq to a single number. On success, seq holds exactly that
// number afterward. On error, seq is released, and the returned Evaluation
// holds the steps performed before the error.
func (ctx *Context) Eval(seq *Sequence) (Evaluation, error) {
	ctx.steps = nil
	err := ctx.evalAll(seq)
	r := Evaluation{Steps: ctx.steps}
	ctx.steps = nil
	if err != nil {
		seq.Release()
		return r, err
	}
	r.Value = seq.Token(seq.Head()).Value
	return r, nil
}

func (ctx *Context) evalAll(seq *Sequence) error {
	if seq.Len() == 0 {
		return &MalformedExpressionError{Reason: "empty expression"}
	}
	start := seq.Head()
	if err := ctx.eval(seq, &start, None); err != nil {
		return err
	}
	switch h := seq.Head(); {
	case h == None:
		return &MalformedExpressionError{Reason: "empty expression"}
	case seq.Len() > 1:
		return seq.malformed(seq.Next(h), "missing operator")
	case seq.kind(h) != KindNumber:
		return seq.malformed(h, "no number")
	}
	return nil
}

// eval reduces the sequence from *start. If end is None, parenthesized groups
// are resolved first, right-most first, each by a recursive call bounded by
// the group's close parenthesis. Then * and / are reduced left to right,
// then + and -, in each case only those strictly before end.
func (ctx *Context) eval(seq *Sequence, start *ID, end ID) error {
	if end == None {
		for open := seq.lastOpen(); open != None; open = seq.lastOpen() {
			cl, err := seq.matchClose(open)
			if err != nil {
				return err
			}
			if n := seq.Next(open); n == cl || seq.Next(n) == cl {
				if n != cl && seq.kind(n) != KindNumber {
					// A lone operator has no operands inside its group.
					return seq.malformed(n, "missing left operand")
				}
				// Nothing left to do in the group. Unwrap it.
				seq.Remove(open)
				seq.Remove(cl)
				*start = seq.Head()
				continue
			}
			inner := open
			if err := ctx.eval(seq, &inner, cl); err != nil {
				return err
			}
			if n := seq.Next(seq.Next(open)); n != cl {
				return seq.malformed(n, "missing operator")
			}
		}
		if cl := seq.firstClose(); cl != None {
			return seq.malformed(cl, "unmatched close parenthesis")
		}
	}
	for _, first := range [...]func(ID) ID{seq.firstMultiplicative, seq.firstAdditive} {
		for op := first(*start); op != None; op = first(*start) {
			if end != None && !seq.Before(op, end) {
				// The operator belongs to an enclosing expression.
				break
			}
			if err := ctx.reduce(seq, op, start); err != nil {
				return err
			}
			ctx.step(seq)
		}
	}
	return nil
}

// step records the current rendering of seq.
func (ctx *Context) step(seq *Sequence) {
	s := seq.String()
	ctx.steps = append(ctx.steps, s)
	if ctx.onstep != nil {
		ctx.onstep(s)
	}
}

// Eval is a shortcut to read one expression and evaluate it.
func Eval(src io.RuneScanner, opts ...ContextOption) (Evaluation, error) {
	seq, err := ReadSequence(src)
	if err != nil {
		return Evaluation{}, err
	}
	return NewContext(opts...).Eval(seq)
}

// EvalString is a shortcut to read and evaluate an expression from a string.
// The terminator is optional.
func EvalString(src string, opts ...ContextOption) (Evaluation, error) {
	return Eval(strings.NewReader(src), opts...)
}
