package seqs

import "iter"

// Pair holds two values of possibly different types.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Enumerate pairs each element with its zero-based index.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
