package lists_test

import (
	"errors"
	"slices"
	"testing"

	"loom/lists"
)

// mustPanicWith runs f and fails unless it panics with an error wrapping want.
func mustPanicWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("panic = %v, want %v", r, want)
		}
	}()
	f()
}

func TestView_Navigation(t *testing.T) {
	l := lists.NewLinkedList(1, 2, 3)
	v := l.View()

	m := v.Begin()
	if v.At(m) != 1 {
		t.Errorf("Expected 1, got %d", v.At(m))
	}
	m = v.Next(m)
	if v.At(m) != 2 {
		t.Errorf("Expected 2, got %d", v.At(m))
	}

	last := v.Last()
	if v.At(last) != 3 {
		t.Errorf("Last() = %d, want 3", v.At(last))
	}

	// Next of the last element is the tail sentinel, which is End
	end := v.Next(last)
	if !v.Done(end) || !v.Equal(end, v.End()) {
		t.Error("Next(Last) should be End")
	}
	if !v.Equal(v.Prev(end), last) {
		t.Error("Prev(End) should be Last")
	}

	if n, ok := v.Len(); !ok || n != 3 {
		t.Errorf("Len() = %d, %v; want 3, true", n, ok)
	}
}

func TestView_MarksAreValues(t *testing.T) {
	l := lists.NewLinkedList(1, 2, 3)
	v := l.View()

	m1 := v.Begin()
	m2 := v.Next(m1)
	if v.At(m1) != 1 {
		t.Error("advancing a copy must not move the mark it came from")
	}
	if v.Equal(m1, m2) {
		t.Error("distinct elements must have distinct marks")
	}
	if !v.Equal(v.Prev(m2), m1) {
		t.Error("Prev(Next(m)) should equal m")
	}
}

func TestView_Set(t *testing.T) {
	l := lists.NewLinkedList(1, 2, 3)
	v := l.View()
	for m := v.Begin(); !v.Done(m); m = v.Next(m) {
		v.Set(m, v.At(m)*10)
	}
	want := []int{10, 20, 30}
	if got := slices.Collect(l.Values()); !slices.Equal(got, want) {
		t.Errorf("After Set: got %v, want %v", got, want)
	}
}

func TestView_LiveList(t *testing.T) {
	l := lists.NewLinkedList(1, 3)
	v := l.View()
	first := v.Begin()

	// marks survive insertions around them
	if err := l.Insert(1, 2); err != nil {
		t.Fatal(err)
	}
	l.AddFirst(0)
	if got := v.At(v.Next(first)); got != 2 {
		t.Errorf("Next(first) after Insert = %d, want 2", got)
	}
	if n, _ := v.Len(); n != 4 {
		t.Errorf("Len() = %d, want 4", n)
	}
}

func TestView_Empty(t *testing.T) {
	v := lists.NewLinkedList[string]().View()
	if !v.Done(v.Begin()) {
		t.Error("Begin of an empty list should be Done")
	}
	if !v.Done(v.Last()) {
		t.Error("Last of an empty list should be Done")
	}

	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.Next(v.End()) })
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.At(v.End()) })
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.Prev(v.End()) })
}

func TestView_Misuse(t *testing.T) {
	l := lists.NewLinkedList(10, 20, 30)
	v := l.View()

	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.Prev(v.Begin()) })
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.At(lists.Mark[int]{}) })
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.Set(v.End(), 1) })

	// a mark on a removed element is invalid
	m := v.Next(v.Begin())
	if _, err := l.Remove(1); err != nil {
		t.Fatal(err)
	}
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.At(m) })
	mustPanicWith(t, lists.ErrInvalidPosition, func() { v.Next(m) })
}
