package views

import (
	"fmt"
	"slices"

	"loom/seqs"
)

// Pair is the cursor and element type of the binary views.
type Pair[A, B any] = seqs.Pair[A, B]

// Tuple is the cursor of the N-ary views: one position per dimension.
// A Tuple is immutable; Next and Prev return a fresh Tuple.
type Tuple[P any] struct {
	ps []P
}

// Dim returns the number of positions in t.
func (t Tuple[P]) Dim() int { return len(t.ps) }

// At returns the position of dimension i.
func (t Tuple[P]) At(i int) P { return t.ps[i] }

// Positions returns a copy of the per-dimension positions.
func (t Tuple[P]) Positions() []P { return slices.Clone(t.ps) }

func (t Tuple[P]) String() string {
	return fmt.Sprintf("%v", t.ps)
}

func tupleOf[P any](n int, f func(i int) P) Tuple[P] {
	ps := make([]P, n)
	for i := range ps {
		ps[i] = f(i)
	}
	return Tuple[P]{ps: ps}
}

// with returns a copy of t that the caller may modify.
func (t Tuple[P]) with() []P {
	return slices.Clone(t.ps)
}
