package listenrechner

// reduce performs the operation op on its neighbors. Each operand is either a
// number or a group "( n )" holding only a number, in which case the
// parentheses are dropped. The result replaces the left number, and the
// operator and right operand leave the sequence. If the left group's open
// parenthesis was *start, start is moved to the head afterward.
//
// Operands are checked before anything is removed, so a failed reduction
// leaves the sequence untouched.
func (ctx *Context) reduce(seq *Sequence, op ID, start *ID) error {
	prev, rnum := seq.Prev(op), seq.Next(op)
	lopen, lclose := None, None
	ropen, rclose := None, None
	var a, b int
	switch seq.kind(prev) {
	case KindNumber:
		a = seq.Token(prev).Value
	case KindClose:
		num := seq.Prev(prev)
		open := seq.Prev(num)
		if seq.kind(num) != KindNumber || seq.kind(open) != KindOpen {
			return seq.malformed(op, "missing left operand")
		}
		a = seq.Token(num).Value
		lopen, lclose = open, prev
	default:
		return seq.malformed(op, "missing left operand")
	}
	switch seq.kind(rnum) {
	case KindNumber:
		b = seq.Token(rnum).Value
	case KindOpen:
		num := seq.Next(rnum)
		cl := seq.Next(num)
		if seq.kind(num) != KindNumber || seq.kind(cl) != KindClose {
			return seq.malformed(op, "missing right operand")
		}
		ropen, rnum, rclose = rnum, num, cl
		b = seq.Token(num).Value
	default:
		return seq.malformed(op, "missing right operand")
	}

	o := seq.Token(op).Op
	if o == '/' && b == 0 && ctx.strict {
		return &DivisionByZeroError{Index: seq.Pos(op), Dividend: a}
	}

	rebase := false
	if lopen != None {
		rebase = lopen == *start
		seq.Remove(lopen)
		seq.Remove(lclose)
	}
	if ropen != None {
		seq.Remove(ropen)
		seq.Remove(rclose)
	}
	seq.Remove(rnum)

	switch o {
	case '+':
		a += b
	case '-':
		a -= b
	case '*':
		a *= b
	case '/':
		// Division by zero leaves a as it is.
		if b != 0 {
			a /= b
		}
	}
	seq.SetValue(seq.Prev(op), a)
	seq.Remove(op)

	if rebase {
		*start = seq.Head()
	}
	return nil
}
