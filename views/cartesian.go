package views

import "slices"

// ProductView is the cartesian product of N sequences sharing position and element types.
// Dimension N-1 varies fastest and dimension 0 slowest, exactly like N nested loops with
// dimension 0 outermost.
type ProductView[P, T any] struct {
	dims []Sequence[P, T]
	// rev holds the dimensions as Reversible when all of them are, so Prev can carry.
	rev []Reversible[P, T]
}

// Product returns the cartesian product of dims. It panics if dims is empty.
func Product[P, T any](dims ...Sequence[P, T]) *ProductView[P, T] {
	if len(dims) == 0 {
		violate("Product", ErrNoSequences)
	}
	v := &ProductView[P, T]{dims: slices.Clone(dims)}
	rev := make([]Reversible[P, T], len(dims))
	for i, d := range dims {
		if rev[i] = asReversible(d); rev[i] == nil {
			return v
		}
	}
	v.rev = rev
	return v
}

// Dim returns the number of dimensions.
func (v *ProductView[P, T]) Dim() int { return len(v.dims) }

func (v *ProductView[P, T]) Begin() Tuple[P] {
	return tupleOf(len(v.dims), func(i int) P { return v.dims[i].Begin() })
}

// End returns the cursor Next produces when dimension 0 overflows:
// dimension 0 at its terminal marker, every other dimension at its first position.
func (v *ProductView[P, T]) End() Tuple[P] {
	return tupleOf(len(v.dims), func(i int) P {
		if i == 0 {
			return v.dims[0].End()
		}
		return v.dims[i].Begin()
	})
}

// Done reports whether any dimension is at its terminal marker.
// Checking every dimension, not only dimension 0, makes a product with an empty
// dimension terminate at Begin.
func (v *ProductView[P, T]) Done(p Tuple[P]) bool {
	for i, d := range v.dims {
		if d.Done(p.ps[i]) {
			return true
		}
	}
	return false
}

func (v *ProductView[P, T]) Next(p Tuple[P]) Tuple[P] {
	if v.Done(p) {
		violate("Product.Next", ErrPastEnd)
	}
	ps := p.with()
	for i := len(ps) - 1; ; i-- {
		ps[i] = v.dims[i].Next(ps[i])
		if i == 0 || !v.dims[i].Done(ps[i]) {
			break
		}
		// carry into the next slower dimension
		ps[i] = v.dims[i].Begin()
	}
	return Tuple[P]{ps: ps}
}

// Prev steps back one element, resetting underflowing dimensions to their last
// position. It requires every dimension to be Reversible.
func (v *ProductView[P, T]) Prev(p Tuple[P]) Tuple[P] {
	if v.rev == nil {
		violate("Product.Prev", ErrNotBidirectional)
	}
	ps := p.with()
	for i := len(ps) - 1; i >= 0; i-- {
		d := v.rev[i]
		if !d.Equal(ps[i], d.Begin()) {
			ps[i] = d.Prev(ps[i])
			return Tuple[P]{ps: ps}
		}
		ps[i] = d.Last()
	}
	violate("Product.Prev", ErrBeforeBegin)
	return p
}

// Last returns the cursor with every dimension at its last position.
func (v *ProductView[P, T]) Last() Tuple[P] {
	if v.rev == nil {
		violate("Product.Last", ErrNotReversible)
	}
	return tupleOf(len(v.rev), func(i int) P { return v.rev[i].Last() })
}

// At returns the elements under p, one per dimension.
func (v *ProductView[P, T]) At(p Tuple[P]) []T {
	if v.Done(p) {
		violate("Product.At", ErrPastEnd)
	}
	vals := make([]T, len(v.dims))
	for i, d := range v.dims {
		vals[i] = d.At(p.ps[i])
	}
	return vals
}

func (v *ProductView[P, T]) Equal(a, b Tuple[P]) bool {
	for i, d := range v.dims {
		if !d.Equal(a.ps[i], b.ps[i]) {
			return false
		}
	}
	return true
}

// Len returns the product of the dimension lengths when every dimension reports one.
func (v *ProductView[P, T]) Len() (int, bool) {
	ns, known := lens(v.dims)
	total := 1
	for i, n := range ns {
		if !known[i] {
			return 0, false
		}
		total *= n
	}
	return total, true
}

func (v *ProductView[P, T]) bidirectional() bool { return v.rev != nil }

func (v *ProductView[P, T]) reversible() bool { return v.rev != nil }

// Product2View is the cartesian product of two sequences of different types.
// The second sequence varies fastest.
type Product2View[P1, T1, P2, T2 any] struct {
	a  Sequence[P1, T1]
	b  Sequence[P2, T2]
	ra Reversible[P1, T1]
	rb Reversible[P2, T2]
}

// Product2 returns the cartesian product of a and b.
func Product2[P1, T1, P2, T2 any](a Sequence[P1, T1], b Sequence[P2, T2]) *Product2View[P1, T1, P2, T2] {
	return &Product2View[P1, T1, P2, T2]{a: a, b: b, ra: asReversible(a), rb: asReversible(b)}
}

func (v *Product2View[P1, T1, P2, T2]) Begin() Pair[P1, P2] {
	return Pair[P1, P2]{V1: v.a.Begin(), V2: v.b.Begin()}
}

func (v *Product2View[P1, T1, P2, T2]) End() Pair[P1, P2] {
	return Pair[P1, P2]{V1: v.a.End(), V2: v.b.Begin()}
}

func (v *Product2View[P1, T1, P2, T2]) Done(p Pair[P1, P2]) bool {
	return v.a.Done(p.V1) || v.b.Done(p.V2)
}

func (v *Product2View[P1, T1, P2, T2]) Next(p Pair[P1, P2]) Pair[P1, P2] {
	if v.Done(p) {
		violate("Product2.Next", ErrPastEnd)
	}
	if p.V2 = v.b.Next(p.V2); v.b.Done(p.V2) {
		p.V1 = v.a.Next(p.V1)
		p.V2 = v.b.Begin()
	}
	return p
}

func (v *Product2View[P1, T1, P2, T2]) Prev(p Pair[P1, P2]) Pair[P1, P2] {
	if !v.bidirectional() {
		violate("Product2.Prev", ErrNotBidirectional)
	}
	if !v.rb.Equal(p.V2, v.rb.Begin()) {
		p.V2 = v.rb.Prev(p.V2)
		return p
	}
	if v.ra.Equal(p.V1, v.ra.Begin()) {
		violate("Product2.Prev", ErrBeforeBegin)
	}
	p.V1 = v.ra.Prev(p.V1)
	p.V2 = v.rb.Last()
	return p
}

func (v *Product2View[P1, T1, P2, T2]) Last() Pair[P1, P2] {
	if !v.reversible() {
		violate("Product2.Last", ErrNotReversible)
	}
	return Pair[P1, P2]{V1: v.ra.Last(), V2: v.rb.Last()}
}

func (v *Product2View[P1, T1, P2, T2]) At(p Pair[P1, P2]) Pair[T1, T2] {
	if v.Done(p) {
		violate("Product2.At", ErrPastEnd)
	}
	return Pair[T1, T2]{V1: v.a.At(p.V1), V2: v.b.At(p.V2)}
}

func (v *Product2View[P1, T1, P2, T2]) Equal(x, y Pair[P1, P2]) bool {
	return v.a.Equal(x.V1, y.V1) && v.b.Equal(x.V2, y.V2)
}

func (v *Product2View[P1, T1, P2, T2]) Len() (int, bool) {
	na, okA := LenOf(v.a)
	nb, okB := LenOf(v.b)
	if !okA || !okB {
		return 0, false
	}
	return na * nb, true
}

func (v *Product2View[P1, T1, P2, T2]) bidirectional() bool { return v.ra != nil && v.rb != nil }

func (v *Product2View[P1, T1, P2, T2]) reversible() bool { return v.ra != nil && v.rb != nil }
