package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loom/seqs"
	"loom/views"
)

func TestAll_StopsEarly(t *testing.T) {
	var got []int
	for v := range views.All(views.Iota(0)) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestWalk(t *testing.T) {
	s := views.Slice([]string{"x", "y"})
	var ps []int
	var vs []string
	for p, v := range views.Walk(s) {
		ps = append(ps, p)
		vs = append(vs, v)
	}
	require.Equal(t, []int{0, 1}, ps)
	require.Equal(t, []string{"x", "y"}, vs)

	require.Equal(t, []int{0, 1}, slices.Collect(views.Positions(s)))
}

func TestBackward(t *testing.T) {
	s := views.Slice([]int{1, 2, 3, 4})
	require.Equal(t, []int{4, 3, 2, 1}, slices.Collect(views.Backward(s)))
	require.Equal(t, []int{4, 3}, slices.Collect(seqs.Take(views.Backward(s), 2)))
	require.Empty(t, slices.Collect(views.Backward(views.Empty[int]())))

	// capability is checked when the iterator is built, not when it runs
	grid := views.Product(views.Slice([]int{1}), views.Iota(0))
	requireViolation(t, views.ErrNotReversible, func() { views.Backward(grid) })
}

func TestCollectN(t *testing.T) {
	s := views.Slice([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2}, views.CollectN(s, 2))
	assert.Equal(t, []int{1, 2, 3}, views.CollectN(s, 10))
	assert.Empty(t, views.CollectN(s, 0))
	assert.Empty(t, views.CollectN(views.Iota(0), -1))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, views.Count(views.Empty[int]()))
	assert.Equal(t, 5, views.Count(views.IotaTo(10, 15)))
}

func TestAdvance(t *testing.T) {
	s := views.Slice([]int{1, 2, 3})
	assert.Equal(t, 0, views.Advance(s, s.Begin(), 0))
	assert.Equal(t, 3, views.Advance(s, s.Begin(), 3))
	requireViolation(t, views.ErrPastEnd, func() { views.Advance(s, s.Begin(), 4) })
}

func TestContractError(t *testing.T) {
	err := &views.ContractError{Op: "Slice.Next", Err: views.ErrPastEnd}
	assert.Equal(t, "views: Slice.Next: position is at the terminal marker", err.Error())
	assert.ErrorIs(t, err, views.ErrPastEnd)
}
