package seqs

import "iter"

// First returns the first element of seq, if any.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Count consumes seq and returns how many elements it produced.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Any reports whether some element satisfies predicate. It stops at the first match.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. It stops at the first miss.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}
