package views

import (
	"slices"

	"loom/seqs"
)

// Find returns the position of the first element satisfying pred.
// On an unbounded sequence it only returns once a match exists.
func Find[P, T any](s Sequence[P, T], pred func(T) bool) (P, bool) {
	miss := func(p P) bool { return !pred(s.At(p)) }
	return seqs.First(seqs.DropWhile(Positions(s), miss))
}

// IndexOf returns the number of elements before the first one satisfying pred, or -1.
func IndexOf[P, T any](s Sequence[P, T], pred func(T) bool) int {
	for i, v := range seqs.Enumerate(All(s)) {
		if pred(v) {
			return i
		}
	}
	return -1
}

// AnyOf reports whether some element satisfies pred. It stops at the first match.
func AnyOf[P, T any](s Sequence[P, T], pred func(T) bool) bool {
	return seqs.Any(All(s), pred)
}

// Every reports whether every element satisfies pred. It stops at the first miss;
// s must be finite unless a miss is known to exist.
func Every[P, T any](s Sequence[P, T], pred func(T) bool) bool {
	return seqs.All(All(s), pred)
}

// CollectWhile gathers the leading elements of s that satisfy pred.
func CollectWhile[P, T any](s Sequence[P, T], pred func(T) bool) []T {
	return slices.Collect(seqs.TakeWhile(All(s), pred))
}

// CollectRange gathers at most n elements of s, starting at element from.
// Unlike Advance it never panics: a range past the end is simply short.
func CollectRange[P, T any](s Sequence[P, T], from, n int) []T {
	return slices.Collect(seqs.Take(seqs.Skip(All(s), from), n))
}
