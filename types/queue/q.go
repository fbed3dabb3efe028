package queue

import "github.com/ef-ds/deque"

// Q is a generic double-ended queue. Items are taken from the front; items can be
// returned to the front (PushFront) so that they are seen again on the next Pop.
// All operations are O(1) (amortized for pushes).
type Q[T any] struct {
	items *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{items: deque.New()}
}

// From creates a new Q holding items in order (items[0] is the front)
func From[T any](items ...T) *Q[T] {
	q := New[T]()
	for _, item := range items {
		q.PushBack(item)
	}

	return q
}

// PushBack adds an item to the end of the queue
func (q *Q[T]) PushBack(item T) {
	q.items.PushBack(item)
}

// PushFront returns an item to the front of the queue
func (q *Q[T]) PushFront(item T) {
	q.items.PushFront(item)
}

// Pop removes and returns the front item
func (q *Q[T]) Pop() (T, bool) {
	v, ok := q.items.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Peek returns the front item without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.items.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Empty is true when no items remain
func (q *Q[T]) Empty() bool {
	return q.items.Len() == 0
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items.Init()
}
