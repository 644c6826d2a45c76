package views

// Sequence is the capability every view consumes and exposes.
// P is the position (cursor) type, T the element type.
// Positions are plain values: advancing returns a new position and never
// modifies the one passed in.
type Sequence[P, T any] interface {
	// Begin returns the first position, or a terminal position if the sequence is empty.
	Begin() P

	// End returns the terminal marker, the position "one past the last element".
	// Unbounded sequences return a sentinel that Next never produces.
	End() P

	// Done reports whether p compares equal to the terminal marker.
	// Use Done rather than Equal(p, End()) to test for termination: composite
	// views can reach termination through more than one position.
	Done(p P) bool

	// Next returns the position following p.
	// Calling Next on a terminal position is a contract violation.
	Next(p P) P

	// At returns the element at p.
	// Calling At on a terminal position is a contract violation.
	At(p P) T

	// Equal reports whether a and b denote the same position.
	Equal(a, b P) bool
}

// Bidirectional is a Sequence that can also move backwards.
type Bidirectional[P, T any] interface {
	Sequence[P, T]

	// Prev returns the position preceding p.
	// Calling Prev on the first position is a contract violation.
	// Prev of the terminal marker of a finite sequence is its last position.
	Prev(p P) P
}

// Reversible is a Bidirectional sequence whose last position can be reached
// without walking the whole sequence.
type Reversible[P, T any] interface {
	Bidirectional[P, T]

	// Last returns the position of the last element, or a terminal position if
	// the sequence is empty.
	Last() P
}

// Sized is implemented by sequences that may know their length in advance.
type Sized interface {
	// Len returns the number of elements and whether that number is known.
	Len() (n int, ok bool)
}

// capabilities is implemented by views whose Prev and Last methods are only
// usable when their inputs support them.
type capabilities interface {
	bidirectional() bool
	reversible() bool
}

// IsBidirectional reports whether s supports Prev.
func IsBidirectional[P, T any](s Sequence[P, T]) bool {
	if c, ok := s.(capabilities); ok {
		return c.bidirectional()
	}
	_, ok := s.(Bidirectional[P, T])
	return ok
}

// IsReversible reports whether s supports both Prev and Last.
func IsReversible[P, T any](s Sequence[P, T]) bool {
	if c, ok := s.(capabilities); ok {
		return c.reversible()
	}
	_, ok := s.(Reversible[P, T])
	return ok
}

// LenOf returns the length of s if s reports one.
func LenOf(s any) (int, bool) {
	if sz, ok := s.(Sized); ok {
		return sz.Len()
	}
	return 0, false
}

// asBidirectional returns s as a Bidirectional if it truly supports retreating, nil otherwise.
func asBidirectional[P, T any](s Sequence[P, T]) Bidirectional[P, T] {
	b, ok := s.(Bidirectional[P, T])
	if !ok || !IsBidirectional(s) {
		return nil
	}
	return b
}

// asReversible returns s as a Reversible if it truly supports Last, nil otherwise.
func asReversible[P, T any](s Sequence[P, T]) Reversible[P, T] {
	r, ok := s.(Reversible[P, T])
	if !ok || !IsReversible(s) {
		return nil
	}
	return r
}

// lens collects the known lengths of seqs; known[i] is false where a length is unknown.
func lens[P, T any](seqs []Sequence[P, T]) (ns []int, known []bool) {
	ns = make([]int, len(seqs))
	known = make([]bool, len(seqs))
	for i, s := range seqs {
		ns[i], known[i] = LenOf(s)
	}
	return ns, known
}
