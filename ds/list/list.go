// Package list implements a doubly linked list with an exposed node type.
// Exposing Node is deliberate: holding a node gives O(1) ordered insertion
// and removal next to it, which is what the pqueue package builds on. A node
// belongs to exactly one list; splicing a node into a second list is a
// contract violation.
//
// Lists are not safe for concurrent use.
package list

import (
	"github.com/joshuapare/dskit/ds/vector"
	"github.com/joshuapare/dskit/internal/assert"
)

// Node is one link of a list. Value is the caller's payload; the links are
// maintained by the list and must not be modified directly.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
}

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	assert.That(n != nil, "n != nil")
	return n.prev
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	assert.That(n != nil, "n != nil")
	return n.next
}

// List is a doubly linked list of T.
type List[T any] struct {
	count   int
	head    *Node[T]
	tail    *Node[T]
	release vector.ReleaseFunc[T]
}

// New returns an empty list with no release callback.
func New[T any]() *List[T] {
	return NewWithRelease[T](nil)
}

// NewWithRelease returns an empty list that hands removed values to release.
func NewWithRelease[T any](release vector.ReleaseFunc[T]) *List[T] {
	return &List[T]{release: release}
}

// Copy returns a list holding bitwise copies of the values in order. The
// copy does not inherit the release callback.
func (l *List[T]) Copy() *List[T] {
	assert.That(l != nil, "l != nil")
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.Value)
	}
	assert.That(out.count == l.count, "copy preserves count")
	return out
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	assert.That(l != nil, "l != nil")
	return l.count
}

// Empty reports whether the list holds no nodes.
func (l *List[T]) Empty() bool {
	return l.Len() == 0
}

// Head returns the first node. The list must not be empty.
func (l *List[T]) Head() *Node[T] {
	assert.That(l != nil, "l != nil")
	assert.That(l.count > 0, "list not empty")
	return l.head
}

// Tail returns the last node. The list must not be empty.
func (l *List[T]) Tail() *Node[T] {
	assert.That(l != nil, "l != nil")
	assert.That(l.count > 0, "list not empty")
	return l.tail
}

// Get returns the node at index, walking from whichever end is nearer.
// index must be below Len.
func (l *List[T]) Get(index int) *Node[T] {
	assert.That(l != nil, "l != nil")
	assert.That(index >= 0 && index < l.count, "index < len")
	var n *Node[T]
	if index <= l.count/2 {
		n = l.head
		for i := 0; i != index; i++ {
			n = n.next
		}
	} else {
		n = l.tail
		for i := l.count - 1; i != index; i-- {
			n = n.prev
		}
	}
	return n
}

// InsertBefore links a new node holding data immediately before node and
// returns it. node must belong to this list.
func (l *List[T]) InsertBefore(node *Node[T], data T) *Node[T] {
	assert.That(l != nil, "l != nil")
	assert.That(node != nil, "node != nil")
	assert.That(l.count > 0, "list not empty")
	l.count++
	fresh := &Node[T]{Value: data, prev: node.prev, next: node}
	if node.prev != nil {
		node.prev.next = fresh
	}
	node.prev = fresh
	if l.head == node {
		l.head = fresh
	}
	return fresh
}

// InsertAfter links a new node holding data immediately after node and
// returns it. node must belong to this list.
func (l *List[T]) InsertAfter(node *Node[T], data T) *Node[T] {
	assert.That(l != nil, "l != nil")
	assert.That(node != nil, "node != nil")
	assert.That(l.count > 0, "list not empty")
	l.count++
	fresh := &Node[T]{Value: data, prev: node, next: node.next}
	if node.next != nil {
		node.next.prev = fresh
	}
	node.next = fresh
	if l.tail == node {
		l.tail = fresh
	}
	return fresh
}

// Remove unlinks node from the list and releases its value. node must belong
// to this list.
func (l *List[T]) Remove(node *Node[T]) {
	assert.That(l != nil, "l != nil")
	assert.That(node != nil, "node != nil")
	assert.That(l.count > 0, "list not empty")
	l.count--
	if l.head == node {
		l.head = node.next
	}
	if l.tail == node {
		l.tail = node.prev
	}
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	if l.release != nil {
		l.release(&node.Value)
	}
	node.prev, node.next = nil, nil
}

// PushFront prepends data and returns its node.
func (l *List[T]) PushFront(data T) *Node[T] {
	assert.That(l != nil, "l != nil")
	l.count++
	node := &Node[T]{Value: data}
	if l.head == nil {
		assert.That(l.tail == nil, "tail nil with nil head")
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
	}
	l.head = node
	return node
}

// PushBack appends data and returns its node.
func (l *List[T]) PushBack(data T) *Node[T] {
	assert.That(l != nil, "l != nil")
	l.count++
	node := &Node[T]{Value: data}
	if l.tail == nil {
		assert.That(l.head == nil, "head nil with nil tail")
		l.head = node
	} else {
		node.prev = l.tail
		l.tail.next = node
	}
	l.tail = node
	return node
}

// PopFront removes and releases the first node. The list must not be empty.
func (l *List[T]) PopFront() {
	assert.That(l != nil, "l != nil")
	assert.That(l.count > 0, "list not empty")
	l.Remove(l.head)
}

// PopBack removes and releases the last node. The list must not be empty.
func (l *List[T]) PopBack() {
	assert.That(l != nil, "l != nil")
	assert.That(l.count > 0, "list not empty")
	l.Remove(l.tail)
}

// Clear releases every value and empties the list.
func (l *List[T]) Clear() {
	assert.That(l != nil, "l != nil")
	for n := l.head; n != nil; {
		next := n.next
		if l.release != nil {
			l.release(&n.Value)
		}
		n.prev, n.next = nil, nil
		n = next
	}
	l.count = 0
	l.head = nil
	l.tail = nil
}

// ForEach calls action on every value, head to tail.
func (l *List[T]) ForEach(action func(T)) {
	assert.That(l != nil, "l != nil")
	assert.That(action != nil, "action != nil")
	for n := l.head; n != nil; n = n.next {
		action(n.Value)
	}
}

// Destroy releases every value and empties the list. Alias of Clear.
func (l *List[T]) Destroy() {
	l.Clear()
}
