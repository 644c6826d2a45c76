package views

import "fmt"

// CyclePos is a cursor into a CycleView: a position in the underlying sequence
// plus the number of completed laps.
type CyclePos[P any] struct {
	Pos P
	// Lap counts wrap-arounds: +1 each time Next wraps, -1 each time Prev wraps.
	Lap int

	unreachable bool
}

func (p CyclePos[P]) String() string {
	if p.unreachable {
		return "Cycle[end]"
	}
	return fmt.Sprintf("Cycle[%v lap %d]", p.Pos, p.Lap)
}

// CycleView repeats a finite sequence forever.
//
// The view is logically infinite: Next never produces a terminal cursor, so the
// caller bounds consumption (CollectN, seqs.Take). Two cursors are equal only when
// both their positions and their lap counts match, so a cursor that went round
// once is never mistaken for one that made no progress.
type CycleView[P, T any] struct {
	s   Sequence[P, T]
	rev Reversible[P, T]
}

// Cycle returns the unbounded repetition of s. If s is empty the cycle is empty too.
func Cycle[P, T any](s Sequence[P, T]) *CycleView[P, T] {
	return &CycleView[P, T]{s: s, rev: asReversible(s)}
}

func (v *CycleView[P, T]) Begin() CyclePos[P] {
	return CyclePos[P]{Pos: v.s.Begin()}
}

// End returns the unreachable marker. No cursor obtained from Begin, Next or Prev
// ever equals it.
func (v *CycleView[P, T]) End() CyclePos[P] {
	return CyclePos[P]{unreachable: true}
}

// Done reports whether p is the unreachable marker, or p belongs to the cycle of an
// empty sequence.
func (v *CycleView[P, T]) Done(p CyclePos[P]) bool {
	return p.unreachable || v.s.Done(p.Pos)
}

func (v *CycleView[P, T]) Next(p CyclePos[P]) CyclePos[P] {
	if v.Done(p) {
		violate("Cycle.Next", ErrPastEnd)
	}
	if p.Pos = v.s.Next(p.Pos); v.s.Done(p.Pos) {
		p.Pos = v.s.Begin()
		p.Lap++
	}
	return p
}

// Prev steps back once, wrapping from the first position to the last and
// decrementing the lap count. It requires the underlying sequence to be Reversible,
// not merely Bidirectional: the wrap needs Last, and stepping back from End is not
// safe on every bidirectional view (a Zip of a Slice and an Iota, for one).
func (v *CycleView[P, T]) Prev(p CyclePos[P]) CyclePos[P] {
	if v.rev == nil {
		violate("Cycle.Prev", ErrNotBidirectional)
	}
	if v.Done(p) {
		violate("Cycle.Prev", ErrPastEnd)
	}
	if v.rev.Equal(p.Pos, v.rev.Begin()) {
		p.Pos = v.rev.Last()
		p.Lap--
		return p
	}
	p.Pos = v.rev.Prev(p.Pos)
	return p
}

// Last always panics: a cycle has no last element.
func (v *CycleView[P, T]) Last() CyclePos[P] {
	violate("Cycle.Last", ErrUnbounded)
	return v.End()
}

func (v *CycleView[P, T]) At(p CyclePos[P]) T {
	if v.Done(p) {
		violate("Cycle.At", ErrPastEnd)
	}
	return v.s.At(p.Pos)
}

func (v *CycleView[P, T]) Equal(a, b CyclePos[P]) bool {
	if a.unreachable || b.unreachable {
		return a.unreachable == b.unreachable
	}
	return a.Lap == b.Lap && v.s.Equal(a.Pos, b.Pos)
}

// Len always reports an unknown length.
func (v *CycleView[P, T]) Len() (int, bool) { return 0, false }

func (v *CycleView[P, T]) bidirectional() bool { return v.rev != nil }

func (v *CycleView[P, T]) reversible() bool { return false }
