package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"loom/seqs"
	"loom/views"
)

// requireViolation runs f and asserts it panics with a *views.ContractError wrapping want.
func requireViolation(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
		var ce *views.ContractError
		require.ErrorAs(t, err, &ce)
	}()
	f()
}

// requireRoundTrip checks Prev(Next(p)) == p for the first limit cursors of s, and
// Next(Prev(p)) == p for every one of them except Begin.
func requireRoundTrip[P, T any](t *testing.T, s views.Bidirectional[P, T], limit int) {
	t.Helper()
	first := s.Begin()
	for i, p := range seqs.Enumerate(seqs.Take(views.Positions[P, T](s), limit)) {
		require.Truef(t, s.Equal(s.Prev(s.Next(p)), p), "Prev(Next(p)) != p at step %d (%v)", i, p)
		if i == 0 {
			require.True(t, s.Equal(p, first))
			continue
		}
		require.Truef(t, s.Equal(s.Next(s.Prev(p)), p), "Next(Prev(p)) != p at step %d (%v)", i, p)
	}
}

// requireBackward checks that Backward(s) is the exact reverse of All(s).
func requireBackward[P, T any](t *testing.T, s views.Reversible[P, T]) {
	t.Helper()
	forward := views.Collect[P, T](s)
	slices.Reverse(forward)
	backward := slices.Collect(views.Backward(s))
	require.Equal(t, len(forward), len(backward))
	if len(forward) > 0 {
		require.Equal(t, forward, backward)
	}
}

// requireLen checks that Len is stable and agrees with an exhaustive count.
func requireLen[P, T any](t *testing.T, s views.Sequence[P, T], want int) {
	t.Helper()
	n, ok := views.LenOf(s)
	require.True(t, ok)
	require.Equal(t, want, n)
	again, _ := views.LenOf(s)
	require.Equal(t, n, again)
	require.Equal(t, n, views.Count(s))
}
