package views

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SliceSeq is a Reversible view over a slice. Positions are indices and the
// terminal marker is len(xs).
type SliceSeq[T any] struct {
	xs []T
}

// Slice wraps xs without copying it.
func Slice[T any](xs []T) SliceSeq[T] {
	return SliceSeq[T]{xs: xs}
}

// Empty returns a sequence with no elements.
func Empty[T any]() SliceSeq[T] {
	return SliceSeq[T]{}
}

func (s SliceSeq[T]) Begin() int { return 0 }

func (s SliceSeq[T]) End() int { return len(s.xs) }

func (s SliceSeq[T]) Done(p int) bool { return p >= len(s.xs) }

func (s SliceSeq[T]) Next(p int) int {
	if p >= len(s.xs) {
		violate("Slice.Next", ErrPastEnd)
	}
	return p + 1
}

func (s SliceSeq[T]) Prev(p int) int {
	if p <= 0 {
		violate("Slice.Prev", ErrBeforeBegin)
	}
	return p - 1
}

// Last returns len(xs)-1, or the terminal marker when the slice is empty.
func (s SliceSeq[T]) Last() int {
	if len(s.xs) == 0 {
		return 0
	}
	return len(s.xs) - 1
}

func (s SliceSeq[T]) At(p int) T {
	if p < 0 || p >= len(s.xs) {
		violate("Slice.At", ErrPastEnd)
	}
	return s.xs[p]
}

func (s SliceSeq[T]) Equal(a, b int) bool { return a == b }

func (s SliceSeq[T]) Len() (int, bool) { return len(s.xs), true }

// RefSeq is a SliceSeq whose elements are pointers into the wrapped slice,
// so values dereferenced through a view can be written back.
type RefSeq[T any] struct {
	SliceSeq[T]
}

// Refs wraps xs so that At yields &xs[i].
func Refs[T any](xs []T) RefSeq[T] {
	return RefSeq[T]{SliceSeq: SliceSeq[T]{xs: xs}}
}

func (s RefSeq[T]) At(p int) *T {
	if p < 0 || p >= len(s.xs) {
		violate("Refs.At", ErrPastEnd)
	}
	return &s.xs[p]
}

// IotaSeq is the unbounded sequence start, start+1, start+2, ...
// Positions are offsets from start; the terminal marker is the offset -1,
// which Next never produces. It is Bidirectional but not Reversible.
type IotaSeq[T constraints.Integer] struct {
	start T
}

// Iota returns the unbounded sequence of integers counting up from start.
func Iota[T constraints.Integer](start T) IotaSeq[T] {
	return IotaSeq[T]{start: start}
}

func (s IotaSeq[T]) Begin() int { return 0 }

func (s IotaSeq[T]) End() int { return -1 }

func (s IotaSeq[T]) Done(p int) bool { return p < 0 }

func (s IotaSeq[T]) Next(p int) int {
	if p < 0 {
		violate("Iota.Next", ErrPastEnd)
	}
	return p + 1
}

func (s IotaSeq[T]) Prev(p int) int {
	if p <= 0 {
		violate("Iota.Prev", ErrBeforeBegin)
	}
	return p - 1
}

func (s IotaSeq[T]) At(p int) T {
	if p < 0 {
		violate("Iota.At", ErrPastEnd)
	}
	return s.start + T(p)
}

func (s IotaSeq[T]) Equal(a, b int) bool { return a == b }

// IntervalSeq is the half-open integer range [start, stop).
type IntervalSeq[T constraints.Integer] struct {
	start T
	n     int
}

// IotaTo returns the integers start, start+1, ..., stop-1.
// The interval is empty when stop <= start, and is truncated to math.MaxInt elements.
func IotaTo[T constraints.Integer](start, stop T) IntervalSeq[T] {
	n := 0
	if stop > start {
		// unsigned difference wraps correctly for every integer type
		d := uint64(stop) - uint64(start)
		if d > math.MaxInt {
			d = math.MaxInt
		}
		n = int(d)
	}
	return IntervalSeq[T]{start: start, n: n}
}

func (s IntervalSeq[T]) Begin() int { return 0 }

func (s IntervalSeq[T]) End() int { return s.n }

func (s IntervalSeq[T]) Done(p int) bool { return p >= s.n }

func (s IntervalSeq[T]) Next(p int) int {
	if p >= s.n {
		violate("IotaTo.Next", ErrPastEnd)
	}
	return p + 1
}

func (s IntervalSeq[T]) Prev(p int) int {
	if p <= 0 {
		violate("IotaTo.Prev", ErrBeforeBegin)
	}
	return p - 1
}

func (s IntervalSeq[T]) Last() int {
	if s.n == 0 {
		return 0
	}
	return s.n - 1
}

func (s IntervalSeq[T]) At(p int) T {
	if p < 0 || p >= s.n {
		violate("IotaTo.At", ErrPastEnd)
	}
	return s.start + T(p)
}

func (s IntervalSeq[T]) Equal(a, b int) bool { return a == b }

func (s IntervalSeq[T]) Len() (int, bool) { return s.n, true }
