package lists

import (
	"fmt"
	"iter"
	"strings"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	ErrInvalidPosition  = fmt.Errorf("invalid list position")
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list bracketed by two sentinel nodes.
// The tail sentinel doubles as the terminal marker of the list's View.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

// NewLinkedList returns a list holding values in order.
func NewLinkedList[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.Add(values...)
	return ll
}

// link inserts newNode right after at.
func (ll *LinkedList[T]) link(at, newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// unlink detaches n and returns its value.
func (ll *LinkedList[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	val := n.val
	// Help GC
	n.prev, n.next = nil, nil
	var zero T
	n.val = zero
	ll.size--
	return val
}

// nodeAt walks from the nearer end. index == size yields the tail sentinel.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index < ll.size/2 {
		cur := ll.headSentinel.next
		for range index {
			cur = cur.next
		}
		return cur
	}
	cur := ll.tailSentinel
	for range ll.size - index {
		cur = cur.prev
	}
	return cur
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.link(ll.tailSentinel.prev, &node[T]{val: v})
	}
}

// AddFirst prepends value.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.link(ll.headSentinel, &node[T]{val: value})
}

// Insert places value at index, shifting later elements back.
func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	ll.link(ll.nodeAt(index).prev, &node[T]{val: value})
	return nil
}

// Get returns the element at index.
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).val, nil
}

// Set replaces the element at index.
func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).val = value
	return nil
}

// Remove deletes and returns the element at index.
// Marks obtained from View that point at the removed element become invalid.
func (ll *LinkedList[T]) Remove(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.nodeAt(index)), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

// Values iterates front to back.
func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ll.headSentinel.next; cur != ll.tailSentinel; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ll.tailSentinel.prev; cur != ll.headSentinel; cur = cur.prev {
			if !yield(cur.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for cur := ll.headSentinel.next; cur != ll.tailSentinel; cur = cur.next {
		fmt.Fprintf(&sb, "%v", cur.val)
		if cur.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
