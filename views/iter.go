package views

import (
	"iter"
	"slices"

	"loom/seqs"
)

// All returns an iterator over the elements of s from Begin until Done.
// It does not terminate for unbounded sequences unless the consumer stops.
func All[P, T any](s Sequence[P, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := s.Begin(); !s.Done(p); p = s.Next(p) {
			if !yield(s.At(p)) {
				return
			}
		}
	}
}

// Positions returns an iterator over the cursors of s.
func Positions[P, T any](s Sequence[P, T]) iter.Seq[P] {
	return func(yield func(P) bool) {
		for p := s.Begin(); !s.Done(p); p = s.Next(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Walk returns an iterator over (cursor, element) pairs of s.
func Walk[P, T any](s Sequence[P, T]) iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		for p := s.Begin(); !s.Done(p); p = s.Next(p) {
			if !yield(p, s.At(p)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of s from Last back to Begin.
// It panics if s is not Reversible.
func Backward[P, T any](s Reversible[P, T]) iter.Seq[T] {
	if !IsReversible[P, T](s) {
		violate("Backward", ErrNotReversible)
	}
	return func(yield func(T) bool) {
		p := s.Last()
		if s.Done(p) {
			return
		}
		first := s.Begin()
		for {
			if !yield(s.At(p)) || s.Equal(p, first) {
				return
			}
			p = s.Prev(p)
		}
	}
}

// Collect gathers every element of s. s must be finite.
func Collect[P, T any](s Sequence[P, T]) []T {
	return slices.Collect(All(s))
}

// CollectN gathers at most n elements of s. It is the usual way to sample an
// unbounded view.
func CollectN[P, T any](s Sequence[P, T], n int) []T {
	return slices.Collect(seqs.Take(All(s), n))
}

// Count walks s to its end and returns the number of elements visited, without
// dereferencing any of them. s must be finite.
func Count[P, T any](s Sequence[P, T]) int {
	return seqs.Count(Positions(s))
}

// Advance returns the position n steps after p. It panics if the traversal
// reaches the terminal marker before taking n steps.
func Advance[P, T any](s Sequence[P, T], p P, n int) P {
	for range n {
		if s.Done(p) {
			violate("Advance", ErrPastEnd)
		}
		p = s.Next(p)
	}
	return p
}
