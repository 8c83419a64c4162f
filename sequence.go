package listenrechner

import (
	"strconv"
	"strings"
)

// ID identifies a token in a Sequence. IDs are stable while the token is in
// the sequence; once the token is removed, its ID may be reused by a later
// Append.
type ID int

// None is the ID of no token.
const None ID = -1

// slot is an arena cell. prev and next link live slots in list order.
type slot struct {
	tok        Token
	prev, next ID
	live       bool
}

// Sequence is an ordered, mutable list of tokens. It is not safe to use a
// Sequence concurrently.
type Sequence struct {
	slots []slot
	free  []ID
	head  ID
	tail  ID
	n     int
}

// NewSequence creates a sequence holding toks in order.
func NewSequence(toks ...Token) *Sequence {
	s := &Sequence{head: None, tail: None}
	for _, t := range toks {
		s.Append(t)
	}
	return s
}

// Append adds tok at the tail and returns its ID.
func (s *Sequence) Append(tok Token) ID {
	if s.slots == nil {
		s.head, s.tail = None, None
	}
	var id ID
	if k := len(s.free); k > 0 {
		id = s.free[k-1]
		s.free = s.free[:k-1]
	} else {
		id = ID(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	s.slots[id] = slot{tok: tok, prev: s.tail, next: None, live: true}
	if s.tail == None {
		s.head = id
	} else {
		s.slots[s.tail].next = id
	}
	s.tail = id
	s.n++
	return id
}

// live reports whether id names a token in the sequence.
func (s *Sequence) live(id ID) bool {
	return id >= 0 && int(id) < len(s.slots) && s.slots[id].live
}

// Head returns the first token's ID, or None if the sequence is empty.
func (s *Sequence) Head() ID {
	if s.n == 0 {
		return None
	}
	return s.head
}

// Next returns the ID after id, or None.
func (s *Sequence) Next(id ID) ID {
	if !s.live(id) {
		return None
	}
	return s.slots[id].next
}

// Prev returns the ID immediately before id. The result is None if id is the
// head or is not in the sequence.
func (s *Sequence) Prev(id ID) ID {
	if !s.live(id) {
		return None
	}
	return s.slots[id].prev
}

// Token returns the token with the given ID. Panics if id is not in the
// sequence.
func (s *Sequence) Token(id ID) Token {
	if !s.live(id) {
		panic("listenrechner: no token with ID " + strconv.Itoa(int(id)))
	}
	return s.slots[id].tok
}

// kind is like Token(id).Kind, but gives KindNone for None and removed IDs.
func (s *Sequence) kind(id ID) Kind {
	if !s.live(id) {
		return KindNone
	}
	return s.slots[id].tok.Kind
}

// SetValue overwrites the value of a number token. Panics if id is not a
// number in the sequence.
func (s *Sequence) SetValue(id ID, v int) {
	if s.kind(id) != KindNumber {
		panic("listenrechner: SetValue on non-number ID " + strconv.Itoa(int(id)))
	}
	s.slots[id].tok.Value = v
}

// Remove unlinks id and releases its slot. It returns the head of the
// sequence afterward, which differs from the previous head only if id was the
// head. Removing an ID that is not in the sequence does nothing.
func (s *Sequence) Remove(id ID) ID {
	if !s.live(id) {
		return s.Head()
	}
	c := s.slots[id]
	if c.prev == None {
		s.head = c.next
	} else {
		s.slots[c.prev].next = c.next
	}
	if c.next == None {
		s.tail = c.prev
	} else {
		s.slots[c.next].prev = c.prev
	}
	s.slots[id] = slot{prev: None, next: None}
	s.free = append(s.free, id)
	s.n--
	return s.Head()
}

// Len returns the number of tokens in the sequence.
func (s *Sequence) Len() int {
	return s.n
}

// Pos returns the 1-based position of id in the sequence, or 0 if it is not
// in the sequence.
func (s *Sequence) Pos(id ID) int {
	k := 1
	for c := s.Head(); c != None; c = s.slots[c].next {
		if c == id {
			return k
		}
		k++
	}
	return 0
}

// Before reports whether a comes strictly before b in list order. Both must
// be in the sequence, otherwise the result is false.
func (s *Sequence) Before(a, b ID) bool {
	if !s.live(a) || !s.live(b) {
		return false
	}
	for c := s.slots[a].next; c != None; c = s.slots[c].next {
		if c == b {
			return true
		}
	}
	return false
}

// Tokens returns a copy of the tokens in order.
func (s *Sequence) Tokens() []Token {
	r := make([]Token, 0, s.n)
	for c := s.Head(); c != None; c = s.slots[c].next {
		r = append(r, s.slots[c].tok)
	}
	return r
}

// String renders the sequence as the concatenation of its tokens' texts.
func (s *Sequence) String() string {
	var b strings.Builder
	for c := s.Head(); c != None; c = s.slots[c].next {
		b.WriteString(s.slots[c].tok.String())
	}
	return b.String()
}

// Release removes every token. The sequence is empty and reusable afterward.
func (s *Sequence) Release() {
	s.slots = nil
	s.free = nil
	s.head, s.tail = None, None
	s.n = 0
}
