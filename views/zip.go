package views

import "slices"

// ZipView advances N sequences in lock-step and stops at the shortest one.
type ZipView[P, T any] struct {
	dims []Sequence[P, T]
	bi   []Bidirectional[P, T]
	rev  []Reversible[P, T]
}

// Zip returns the lock-step combination of dims. It panics if dims is empty.
func Zip[P, T any](dims ...Sequence[P, T]) *ZipView[P, T] {
	if len(dims) == 0 {
		violate("Zip", ErrNoSequences)
	}
	v := &ZipView[P, T]{dims: slices.Clone(dims)}
	bi := make([]Bidirectional[P, T], len(dims))
	for i, d := range dims {
		if bi[i] = asBidirectional(d); bi[i] == nil {
			return v
		}
	}
	v.bi = bi

	rev := make([]Reversible[P, T], len(dims))
	for i, d := range dims {
		if rev[i] = asReversible(d); rev[i] == nil {
			return v
		}
		if _, ok := LenOf(d); !ok {
			return v
		}
	}
	v.rev = rev
	return v
}

// Dim returns the number of zipped sequences.
func (v *ZipView[P, T]) Dim() int { return len(v.dims) }

func (v *ZipView[P, T]) Begin() Tuple[P] {
	return tupleOf(len(v.dims), func(i int) P { return v.dims[i].Begin() })
}

// End returns the cursor with every sequence at its terminal marker.
// Traversal of sequences of unequal length reaches termination without
// reaching this exact cursor; test with Done. Prev still maps it to Last.
func (v *ZipView[P, T]) End() Tuple[P] {
	return tupleOf(len(v.dims), func(i int) P { return v.dims[i].End() })
}

// Done reports whether any sequence is exhausted.
func (v *ZipView[P, T]) Done(p Tuple[P]) bool {
	for i, d := range v.dims {
		if d.Done(p.ps[i]) {
			return true
		}
	}
	return false
}

func (v *ZipView[P, T]) Next(p Tuple[P]) Tuple[P] {
	if v.Done(p) {
		violate("Zip.Next", ErrPastEnd)
	}
	ps := p.with()
	for i, d := range v.dims {
		ps[i] = d.Next(ps[i])
	}
	return Tuple[P]{ps: ps}
}

// Prev steps every sequence back once. It requires every sequence to be Bidirectional.
// When the view is Reversible, any terminal cursor (End included) steps back to Last,
// since inputs of unequal length end at different positions.
func (v *ZipView[P, T]) Prev(p Tuple[P]) Tuple[P] {
	if v.bi == nil {
		violate("Zip.Prev", ErrNotBidirectional)
	}
	if v.rev != nil && v.Done(p) {
		last := v.Last()
		if v.Done(last) {
			violate("Zip.Prev", ErrBeforeBegin)
		}
		return last
	}
	ps := p.with()
	for i, d := range v.bi {
		if d.Equal(ps[i], d.Begin()) {
			violate("Zip.Prev", ErrBeforeBegin)
		}
		ps[i] = d.Prev(ps[i])
	}
	return Tuple[P]{ps: ps}
}

// Last returns the cursor of the final zipped element. Every sequence is placed at
// index min-1, where min is the shortest length, so the result stays aligned with
// forward traversal even when lengths differ. It requires every sequence to be
// Reversible and Sized.
func (v *ZipView[P, T]) Last() Tuple[P] {
	if v.rev == nil {
		violate("Zip.Last", ErrNotReversible)
	}
	shortest, _ := v.Len()
	if shortest == 0 {
		return v.End()
	}
	return tupleOf(len(v.rev), func(i int) P {
		d := v.rev[i]
		n, _ := LenOf(d)
		p := d.Last()
		for range n - shortest {
			p = d.Prev(p)
		}
		return p
	})
}

// At returns the elements under p, one per sequence.
func (v *ZipView[P, T]) At(p Tuple[P]) []T {
	if v.Done(p) {
		violate("Zip.At", ErrPastEnd)
	}
	vals := make([]T, len(v.dims))
	for i, d := range v.dims {
		vals[i] = d.At(p.ps[i])
	}
	return vals
}

func (v *ZipView[P, T]) Equal(a, b Tuple[P]) bool {
	for i, d := range v.dims {
		if !d.Equal(a.ps[i], b.ps[i]) {
			return false
		}
	}
	return true
}

// Len returns the smallest length among the sequences that report one.
// Sequences of unknown length are left out of the minimum, but may still end
// the traversal early.
func (v *ZipView[P, T]) Len() (int, bool) {
	return minLen(lens(v.dims))
}

func (v *ZipView[P, T]) bidirectional() bool { return v.bi != nil }

func (v *ZipView[P, T]) reversible() bool { return v.rev != nil }

func minLen(ns []int, known []bool) (int, bool) {
	shortest, found := 0, false
	for i, n := range ns {
		if !known[i] {
			continue
		}
		if !found || n < shortest {
			shortest, found = n, true
		}
	}
	return shortest, found
}

// Zip2View advances two sequences of different types in lock-step.
type Zip2View[P1, T1, P2, T2 any] struct {
	a  Sequence[P1, T1]
	b  Sequence[P2, T2]
	ba Bidirectional[P1, T1]
	bb Bidirectional[P2, T2]
}

// Zip2 returns the lock-step combination of a and b.
func Zip2[P1, T1, P2, T2 any](a Sequence[P1, T1], b Sequence[P2, T2]) *Zip2View[P1, T1, P2, T2] {
	return &Zip2View[P1, T1, P2, T2]{a: a, b: b, ba: asBidirectional(a), bb: asBidirectional(b)}
}

func (v *Zip2View[P1, T1, P2, T2]) Begin() Pair[P1, P2] {
	return Pair[P1, P2]{V1: v.a.Begin(), V2: v.b.Begin()}
}

func (v *Zip2View[P1, T1, P2, T2]) End() Pair[P1, P2] {
	return Pair[P1, P2]{V1: v.a.End(), V2: v.b.End()}
}

func (v *Zip2View[P1, T1, P2, T2]) Done(p Pair[P1, P2]) bool {
	return v.a.Done(p.V1) || v.b.Done(p.V2)
}

func (v *Zip2View[P1, T1, P2, T2]) Next(p Pair[P1, P2]) Pair[P1, P2] {
	if v.Done(p) {
		violate("Zip2.Next", ErrPastEnd)
	}
	return Pair[P1, P2]{V1: v.a.Next(p.V1), V2: v.b.Next(p.V2)}
}

// Prev steps both sequences back once. Like ZipView.Prev it maps every terminal
// cursor to Last when the view is Reversible.
func (v *Zip2View[P1, T1, P2, T2]) Prev(p Pair[P1, P2]) Pair[P1, P2] {
	if !v.bidirectional() {
		violate("Zip2.Prev", ErrNotBidirectional)
	}
	if v.Done(p) && v.reversible() {
		last := v.Last()
		if v.Done(last) {
			violate("Zip2.Prev", ErrBeforeBegin)
		}
		return last
	}
	if v.ba.Equal(p.V1, v.ba.Begin()) || v.bb.Equal(p.V2, v.bb.Begin()) {
		violate("Zip2.Prev", ErrBeforeBegin)
	}
	return Pair[P1, P2]{V1: v.ba.Prev(p.V1), V2: v.bb.Prev(p.V2)}
}

func (v *Zip2View[P1, T1, P2, T2]) Last() Pair[P1, P2] {
	if !v.reversible() {
		violate("Zip2.Last", ErrNotReversible)
	}
	ra, rb := v.a.(Reversible[P1, T1]), v.b.(Reversible[P2, T2])
	na, _ := LenOf(v.a)
	nb, _ := LenOf(v.b)
	shortest := min(na, nb)
	if shortest == 0 {
		return v.End()
	}
	p := Pair[P1, P2]{V1: ra.Last(), V2: rb.Last()}
	for range na - shortest {
		p.V1 = ra.Prev(p.V1)
	}
	for range nb - shortest {
		p.V2 = rb.Prev(p.V2)
	}
	return p
}

func (v *Zip2View[P1, T1, P2, T2]) At(p Pair[P1, P2]) Pair[T1, T2] {
	if v.Done(p) {
		violate("Zip2.At", ErrPastEnd)
	}
	return Pair[T1, T2]{V1: v.a.At(p.V1), V2: v.b.At(p.V2)}
}

func (v *Zip2View[P1, T1, P2, T2]) Equal(x, y Pair[P1, P2]) bool {
	return v.a.Equal(x.V1, y.V1) && v.b.Equal(x.V2, y.V2)
}

func (v *Zip2View[P1, T1, P2, T2]) Len() (int, bool) {
	na, okA := LenOf(v.a)
	nb, okB := LenOf(v.b)
	return minLen([]int{na, nb}, []bool{okA, okB})
}

func (v *Zip2View[P1, T1, P2, T2]) bidirectional() bool { return v.ba != nil && v.bb != nil }

func (v *Zip2View[P1, T1, P2, T2]) reversible() bool {
	if !IsReversible(v.a) || !IsReversible(v.b) {
		return false
	}
	_, okA := LenOf(v.a)
	_, okB := LenOf(v.b)
	return okA && okB
}
