package listenrechner

// lastOpen returns the right-most open parenthesis in the sequence. No open
// parenthesis follows it, so its group never contains another group.
func (s *Sequence) lastOpen() ID {
	r := None
	for c := s.Head(); c != None; c = s.Next(c) {
		if s.kind(c) == KindOpen {
			r = c
		}
	}
	return r
}

// firstClose returns the left-most close parenthesis in the sequence.
func (s *Sequence) firstClose() ID {
	for c := s.Head(); c != None; c = s.Next(c) {
		if s.kind(c) == KindClose {
			return c
		}
	}
	return None
}

// firstMultiplicative returns the first * or / at or after from.
func (s *Sequence) firstMultiplicative(from ID) ID {
	for c := from; s.live(c); c = s.Next(c) {
		if s.Token(c).Multiplicative() {
			return c
		}
	}
	return None
}

// firstAdditive returns the first + or - at or after from.
func (s *Sequence) firstAdditive(from ID) ID {
	for c := from; s.live(c); c = s.Next(c) {
		if s.Token(c).Additive() {
			return c
		}
	}
	return None
}

// matchClose finds the close parenthesis matching open.
func (s *Sequence) matchClose(open ID) (ID, error) {
	depth := 1
	c := open
	for depth > 0 {
		c = s.Next(c)
		switch s.kind(c) {
		case KindNone:
			return None, s.malformed(open, "unmatched open parenthesis")
		case KindOpen:
			depth++
		case KindClose:
			depth--
		}
	}
	return c, nil
}

// malformed creates an error describing a problem with the token id.
func (s *Sequence) malformed(id ID, reason string) error {
	err := &MalformedExpressionError{Reason: reason}
	if s.live(id) {
		err.Index = s.Pos(id)
		err.Token = s.Token(id).String()
	}
	return err
}
