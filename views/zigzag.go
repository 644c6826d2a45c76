package views

// ZigzagPos is a cursor into a ZigzagView.
type ZigzagPos[PA, PB any] struct {
	A PA
	B PB
	// Up is set while the current diagonal is walked with A moving forward and
	// B moving backward. It flips each time a diagonal is finished.
	Up bool
}

// ZigzagView is the fair diagonal interleaving of two bidirectional sequences.
//
// Pairs (a[i], b[j]) are visited one anti-diagonal k = i+j at a time, in increasing
// order of k, so every pair is reached after finitely many steps even when both
// inputs are unbounded. Consecutive diagonals are walked in opposite directions,
// which keeps every step O(1):
//
//	(0,0) (0,1) (1,0) (2,0) (1,1) (0,2) (0,3) (1,2) ...
//
// The walking direction alternates between diagonals: odd diagonals run with i
// increasing, even diagonals with i decreasing, so callers must not assume i grows
// along every diagonal. When an input is finite the diagonals are clipped to the
// grid, and a traversal over inputs of lengths m and n visits all m*n pairs exactly
// once, ending after (m-1, n-1).
//
// A finite input paired with an unbounded one still never ends: every pair (i, j)
// with i < m is eventually visited. Bound All with seqs.Take or use CollectN.
type ZigzagView[PA, TA, PB, TB any] struct {
	a Bidirectional[PA, TA]
	b Bidirectional[PB, TB]
}

// Zigzag returns the diagonal interleaving of a and b. It panics if either
// input cannot retreat.
func Zigzag[PA, TA, PB, TB any](a Bidirectional[PA, TA], b Bidirectional[PB, TB]) *ZigzagView[PA, TA, PB, TB] {
	if !IsBidirectional[PA, TA](a) || !IsBidirectional[PB, TB](b) {
		violate("Zigzag", ErrNotBidirectional)
	}
	return &ZigzagView[PA, TA, PB, TB]{a: a, b: b}
}

func (v *ZigzagView[PA, TA, PB, TB]) Begin() ZigzagPos[PA, PB] {
	return ZigzagPos[PA, PB]{A: v.a.Begin(), B: v.b.Begin()}
}

func (v *ZigzagView[PA, TA, PB, TB]) End() ZigzagPos[PA, PB] {
	return ZigzagPos[PA, PB]{A: v.a.End(), B: v.b.End()}
}

// Done reports whether either side is at its terminal marker.
func (v *ZigzagView[PA, TA, PB, TB]) Done(p ZigzagPos[PA, PB]) bool {
	return v.a.Done(p.A) || v.b.Done(p.B)
}

func (v *ZigzagView[PA, TA, PB, TB]) Next(p ZigzagPos[PA, PB]) ZigzagPos[PA, PB] {
	if v.Done(p) {
		violate("Zigzag.Next", ErrPastEnd)
	}
	if p.Up {
		na := v.a.Next(p.A)
		switch {
		case !v.a.Done(na) && !v.b.Equal(p.B, v.b.Begin()):
			return ZigzagPos[PA, PB]{A: na, B: v.b.Prev(p.B), Up: true}
		case !v.a.Done(na):
			// b is at its first position: open the next diagonal along a
			return ZigzagPos[PA, PB]{A: na, B: p.B}
		default:
			// a is exhausted: open the next diagonal along b
			return ZigzagPos[PA, PB]{A: p.A, B: v.b.Next(p.B)}
		}
	}
	nb := v.b.Next(p.B)
	switch {
	case !v.b.Done(nb) && !v.a.Equal(p.A, v.a.Begin()):
		return ZigzagPos[PA, PB]{A: v.a.Prev(p.A), B: nb}
	case !v.b.Done(nb):
		return ZigzagPos[PA, PB]{A: p.A, B: nb, Up: true}
	default:
		return ZigzagPos[PA, PB]{A: v.a.Next(p.A), B: p.B, Up: true}
	}
}

// Prev is the exact inverse of Next. It also accepts the terminal cursors Next
// produces, so a finite traversal can be retraced from its end. End itself, where
// both sides are exhausted, steps back to Last and so needs a Reversible view.
func (v *ZigzagView[PA, TA, PB, TB]) Prev(p ZigzagPos[PA, PB]) ZigzagPos[PA, PB] {
	if v.a.Done(p.A) && v.b.Done(p.B) {
		if !v.reversible() {
			violate("Zigzag.Prev", ErrNotReversible)
		}
		last := v.Last()
		if v.Done(last) {
			violate("Zigzag.Prev", ErrBeforeBegin)
		}
		return last
	}
	if v.a.Equal(p.A, v.a.Begin()) && v.b.Equal(p.B, v.b.Begin()) {
		violate("Zigzag.Prev", ErrBeforeBegin)
	}
	if p.Up {
		switch {
		case v.a.Equal(p.A, v.a.Begin()):
			// entered from the end of a descending diagonal along b
			return ZigzagPos[PA, PB]{A: p.A, B: v.b.Prev(p.B)}
		case v.b.Done(v.b.Next(p.B)):
			// entered after b was exhausted
			return ZigzagPos[PA, PB]{A: v.a.Prev(p.A), B: p.B}
		default:
			return ZigzagPos[PA, PB]{A: v.a.Prev(p.A), B: v.b.Next(p.B), Up: true}
		}
	}
	switch {
	case v.b.Equal(p.B, v.b.Begin()):
		return ZigzagPos[PA, PB]{A: v.a.Prev(p.A), B: p.B, Up: true}
	case v.a.Done(v.a.Next(p.A)):
		return ZigzagPos[PA, PB]{A: p.A, B: v.b.Prev(p.B), Up: true}
	default:
		return ZigzagPos[PA, PB]{A: v.a.Next(p.A), B: v.b.Prev(p.B)}
	}
}

// Last returns the cursor at (m-1, n-1). It requires both inputs to be Reversible
// and Sized, since the walking direction there depends on the parity of m+n.
func (v *ZigzagView[PA, TA, PB, TB]) Last() ZigzagPos[PA, PB] {
	if !v.reversible() {
		violate("Zigzag.Last", ErrNotReversible)
	}
	m, _ := LenOf(v.a)
	n, _ := LenOf(v.b)
	if m == 0 || n == 0 {
		return v.End()
	}
	ra, rb := v.a.(Reversible[PA, TA]), v.b.(Reversible[PB, TB])
	return ZigzagPos[PA, PB]{A: ra.Last(), B: rb.Last(), Up: (m+n)%2 == 1}
}

func (v *ZigzagView[PA, TA, PB, TB]) At(p ZigzagPos[PA, PB]) Pair[TA, TB] {
	if v.Done(p) {
		violate("Zigzag.At", ErrPastEnd)
	}
	return Pair[TA, TB]{V1: v.a.At(p.A), V2: v.b.At(p.B)}
}

// Equal compares positions only; the turning flag is derived state.
func (v *ZigzagView[PA, TA, PB, TB]) Equal(x, y ZigzagPos[PA, PB]) bool {
	return v.a.Equal(x.A, y.A) && v.b.Equal(x.B, y.B)
}

// Len returns m*n when both inputs are sized: the number of pairs enumerated,
// even though they are visited diagonally.
func (v *ZigzagView[PA, TA, PB, TB]) Len() (int, bool) {
	m, okA := LenOf(v.a)
	n, okB := LenOf(v.b)
	if !okA || !okB {
		return 0, false
	}
	return m * n, true
}

func (v *ZigzagView[PA, TA, PB, TB]) bidirectional() bool { return true }

func (v *ZigzagView[PA, TA, PB, TB]) reversible() bool {
	if !IsReversible[PA, TA](v.a) || !IsReversible[PB, TB](v.b) {
		return false
	}
	_, okA := LenOf(v.a)
	_, okB := LenOf(v.b)
	return okA && okB
}
