package lists

import "fmt"

// Mark is an opaque position inside a LinkedList. The zero Mark is invalid.
type Mark[T any] struct {
	n *node[T]
}

// View exposes a LinkedList through the position contract used by package views:
// Begin/End/Done/Next/Prev/Last/At/Equal/Len. Marks stay valid while the element
// they point at stays in the list.
type View[T any] struct {
	ll *LinkedList[T]
}

// View returns a position view over ll. The view reads the live list; it does
// not copy it.
func (ll *LinkedList[T]) View() View[T] {
	return View[T]{ll: ll}
}

func (v View[T]) Begin() Mark[T] { return Mark[T]{n: v.ll.headSentinel.next} }

// End returns the tail sentinel.
func (v View[T]) End() Mark[T] { return Mark[T]{n: v.ll.tailSentinel} }

func (v View[T]) Done(m Mark[T]) bool { return m.n == v.ll.tailSentinel }

func (v View[T]) Next(m Mark[T]) Mark[T] {
	if m.n == nil || m.n.next == nil || m.n == v.ll.tailSentinel {
		panic(fmt.Errorf("lists: next: %w", ErrInvalidPosition))
	}
	return Mark[T]{n: m.n.next}
}

func (v View[T]) Prev(m Mark[T]) Mark[T] {
	if m.n == nil || m.n.prev == nil || m.n.prev == v.ll.headSentinel {
		panic(fmt.Errorf("lists: prev: %w", ErrInvalidPosition))
	}
	return Mark[T]{n: m.n.prev}
}

// Last returns the final element, or End when the list is empty.
func (v View[T]) Last() Mark[T] {
	if v.ll.size == 0 {
		return v.End()
	}
	return Mark[T]{n: v.ll.tailSentinel.prev}
}

func (v View[T]) At(m Mark[T]) T {
	if m.n == nil || m.n == v.ll.tailSentinel || m.n == v.ll.headSentinel || m.n.next == nil {
		panic(fmt.Errorf("lists: at: %w", ErrInvalidPosition))
	}
	return m.n.val
}

// Set overwrites the element under m.
func (v View[T]) Set(m Mark[T], value T) {
	if m.n == nil || m.n == v.ll.tailSentinel || m.n == v.ll.headSentinel || m.n.next == nil {
		panic(fmt.Errorf("lists: set: %w", ErrInvalidPosition))
	}
	m.n.val = value
}

func (v View[T]) Equal(a, b Mark[T]) bool { return a.n == b.n }

func (v View[T]) Len() (int, bool) { return v.ll.size, true }
