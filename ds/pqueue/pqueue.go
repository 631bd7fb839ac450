// Package pqueue implements a double-ended priority queue: a linked list
// kept sorted by a priority comparator, with O(1) access to both the highest
// and lowest priority element. The sorted insert is O(n); for small
// frontiers and in-order collection that beats heap bookkeeping, which is
// the niche this structure serves.
//
// Queues are not safe for concurrent use.
package pqueue

import (
	"cmp"

	"github.com/joshuapare/dskit/ds/list"
	"github.com/joshuapare/dskit/ds/vector"
	"github.com/joshuapare/dskit/internal/assert"
)

// GreaterFunc reports whether priority a orders strictly after b. Elements
// are kept in ascending priority order from First to Last; ties keep
// insertion order (a new element goes before the first strictly greater
// one).
type GreaterFunc[P any] func(a, b P) bool

type pair[T, P any] struct {
	data     T
	priority P
}

// Queue is a double-ended priority queue of T prioritized by P.
type Queue[T, P any] struct {
	items   *list.List[pair[T, P]]
	greater GreaterFunc[P]
	release vector.ReleaseFunc[T]
}

// New returns an empty queue using the natural order of P.
func New[T any, P cmp.Ordered]() *Queue[T, P] {
	return NewFunc[T, P](func(a, b P) bool { return a > b }, nil)
}

// NewFunc returns an empty queue ordered by greater. release may be nil.
func NewFunc[T, P any](greater GreaterFunc[P], release vector.ReleaseFunc[T]) *Queue[T, P] {
	assert.That(greater != nil, "greater != nil")
	return &Queue[T, P]{
		items:   list.New[pair[T, P]](),
		greater: greater,
		release: release,
	}
}

// Copy returns a queue holding bitwise copies of the elements in order. The
// copy does not inherit the release callback.
func (q *Queue[T, P]) Copy() *Queue[T, P] {
	assert.That(q != nil, "q != nil")
	return &Queue[T, P]{
		items:   q.items.Copy(),
		greater: q.greater,
	}
}

// Len returns the number of elements.
func (q *Queue[T, P]) Len() int {
	assert.That(q != nil, "q != nil")
	return q.items.Len()
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T, P]) Empty() bool {
	return q.Len() == 0
}

// First returns a pointer to the lowest-priority element. The queue must not
// be empty.
func (q *Queue[T, P]) First() *T {
	assert.That(q != nil, "q != nil")
	assert.That(q.Len() > 0, "queue not empty")
	return &q.items.Head().Value.data
}

// Last returns a pointer to the highest-priority element. The queue must not
// be empty.
func (q *Queue[T, P]) Last() *T {
	assert.That(q != nil, "q != nil")
	assert.That(q.Len() > 0, "queue not empty")
	return &q.items.Tail().Value.data
}

// Push inserts data at the position its priority sorts to.
func (q *Queue[T, P]) Push(data T, priority P) {
	assert.That(q != nil, "q != nil")
	entry := pair[T, P]{data: data, priority: priority}
	if q.items.Empty() {
		q.items.PushFront(entry)
		return
	}
	for n := q.items.Head(); n != nil; n = n.Next() {
		if q.greater(n.Value.priority, priority) {
			q.items.InsertBefore(n, entry)
			return
		}
	}
	q.items.PushBack(entry)
}

// PopFirst removes and releases the lowest-priority element. The queue must
// not be empty.
func (q *Queue[T, P]) PopFirst() {
	assert.That(q != nil, "q != nil")
	assert.That(q.Len() > 0, "queue not empty")
	if q.release != nil {
		q.release(&q.items.Head().Value.data)
	}
	q.items.PopFront()
}

// PopLast removes and releases the highest-priority element. The queue must
// not be empty.
func (q *Queue[T, P]) PopLast() {
	assert.That(q != nil, "q != nil")
	assert.That(q.Len() > 0, "queue not empty")
	if q.release != nil {
		q.release(&q.items.Tail().Value.data)
	}
	q.items.PopBack()
}

// Clear releases every element and empties the queue.
func (q *Queue[T, P]) Clear() {
	assert.That(q != nil, "q != nil")
	if q.release != nil {
		q.items.ForEach(func(p pair[T, P]) {
			q.release(&p.data)
		})
	}
	q.items.Clear()
}

// ForEach calls action on every element in ascending priority order.
func (q *Queue[T, P]) ForEach(action func(T)) {
	assert.That(q != nil, "q != nil")
	assert.That(action != nil, "action != nil")
	q.items.ForEach(func(p pair[T, P]) {
		action(p.data)
	})
}

// Destroy releases every element and empties the queue. Alias of Clear.
func (q *Queue[T, P]) Destroy() {
	q.Clear()
}
