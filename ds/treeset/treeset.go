package treeset

import (
	"cmp"

	"github.com/joshuapare/dskit/internal/assert"
)

// GreaterFunc reports whether a orders strictly after b.
type GreaterFunc[T any] func(a, b T) bool

// EqualFunc reports whether a and b are the same value.
type EqualFunc[T any] func(a, b T) bool

// ReleaseFunc disposes of a value the set is done with.
type ReleaseFunc[T any] func(*T)

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Set is a sorted binary tree set of T.
type Set[T any] struct {
	count   int
	root    *node[T]
	greater GreaterFunc[T]
	equal   EqualFunc[T]
	release ReleaseFunc[T]
}

// New returns an empty set ordered by the natural order of T.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](func(a, b T) bool { return a > b }, func(a, b T) bool { return a == b }, nil)
}

// NewFunc returns an empty set ordered by greater, with equality per equal.
// release may be nil.
func NewFunc[T any](greater GreaterFunc[T], equal EqualFunc[T], release ReleaseFunc[T]) *Set[T] {
	assert.That(greater != nil, "greater != nil")
	assert.That(equal != nil, "equal != nil")
	return &Set[T]{greater: greater, equal: equal, release: release}
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	assert.That(s != nil, "s != nil")
	return s.count
}

// Empty reports whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.Len() == 0
}

// Least returns a pointer to the smallest value. The set must not be empty.
func (s *Set[T]) Least() *T {
	assert.That(s != nil, "s != nil")
	assert.That(s.count > 0, "set not empty")
	current := s.root
	for current.left != nil {
		current = current.left
	}
	return &current.value
}

// Greatest returns a pointer to the largest value. The set must not be empty.
func (s *Set[T]) Greatest() *T {
	assert.That(s != nil, "s != nil")
	assert.That(s.count > 0, "set not empty")
	current := s.root
	for current.right != nil {
		current = current.right
	}
	return &current.value
}

// Find returns a pointer to the stored value equal to data, or nil.
func (s *Set[T]) Find(data T) *T {
	assert.That(s != nil, "s != nil")
	assert.That((s.root == nil) == (s.count == 0), "root/count agree")
	current := s.root
	for current != nil {
		if s.equal(data, current.value) {
			return &current.value
		}
		if s.greater(data, current.value) {
			current = current.right
		} else {
			current = current.left
		}
	}
	return nil
}

// Contains reports whether the set holds a value equal to data.
func (s *Set[T]) Contains(data T) bool {
	return s.Find(data) != nil
}

// Insert adds data to the set and reports whether an equal value was
// replaced. A replacement releases the old payload and stores the new one in
// the existing node; the tree shape does not change.
func (s *Set[T]) Insert(data T) bool {
	assert.That(s != nil, "s != nil")
	if s.root == nil {
		assert.That(s.count == 0, "count == 0 with empty root")
		s.count++
		s.root = &node[T]{value: data}
		return false
	}
	current := s.root
	for {
		if s.equal(data, current.value) {
			if s.release != nil {
				s.release(&current.value)
			}
			current.value = data
			return true
		}
		if s.greater(data, current.value) {
			if current.right == nil {
				s.count++
				current.right = &node[T]{value: data}
				return false
			}
			current = current.right
		} else {
			if current.left == nil {
				s.count++
				current.left = &node[T]{value: data}
				return false
			}
			current = current.left
		}
	}
}

// Erase removes the value equal to data, releasing its payload, and reports
// whether a value was found. The removed node is replaced by its in-order
// predecessor (the greatest node of its left subtree), or by its right child
// if it has no left subtree.
func (s *Set[T]) Erase(data T) bool {
	assert.That(s != nil, "s != nil")
	if s.root == nil {
		assert.That(s.count == 0, "count == 0 with empty root")
		return false
	}
	var parent *node[T]
	current := s.root
	for {
		if s.equal(data, current.value) {
			s.count--
			replaceParent := current
			replace := current.left
			if replace != nil {
				for replace.right != nil {
					replaceParent = replace
					replace = replace.right
				}
				if replaceParent == current {
					replaceParent.left = replace.left
				} else {
					replaceParent.right = replace.left
				}
				if current.left != replace {
					replace.left = current.left
				}
				replace.right = current.right
			} else {
				replace = current.right
			}
			if parent == nil {
				s.root = replace
			} else if parent.left == current {
				parent.left = replace
			} else {
				parent.right = replace
			}
			if s.release != nil {
				s.release(&current.value)
			}
			current.left, current.right = nil, nil
			return true
		}
		parent = current
		if s.greater(data, current.value) {
			if current.right == nil {
				return false
			}
			current = current.right
		} else {
			if current.left == nil {
				return false
			}
			current = current.left
		}
	}
}

// Copy returns a new set holding bitwise copies of the values, rebuilt by
// re-inserting every value post-order into a fresh tree. The copy keeps the
// comparator callbacks but not the release callback.
func (s *Set[T]) Copy() *Set[T] {
	assert.That(s != nil, "s != nil")
	assert.That((s.root == nil) == (s.count == 0), "root/count agree")
	out := &Set[T]{greater: s.greater, equal: s.equal}
	if s.root != nil {
		copyInto(out, s.root)
	}
	assert.That(out.count == s.count, "copy preserves count")
	return out
}

func copyInto[T any](dst *Set[T], n *node[T]) {
	if n.left != nil {
		copyInto(dst, n.left)
	}
	if n.right != nil {
		copyInto(dst, n.right)
	}
	dst.Insert(n.value)
}

// Subset reports whether every value of s is contained in other. With
// orEqual false, equal sets (same cardinality) do not count as subsets.
func (s *Set[T]) Subset(other *Set[T], orEqual bool) bool {
	assert.That(s != nil, "s != nil")
	assert.That(other != nil, "other != nil")
	if s.root == nil {
		return true
	}
	return subsetWalk(other, s.root) && (orEqual || s.count != other.count)
}

func subsetWalk[T any](other *Set[T], n *node[T]) bool {
	if n.left != nil && !subsetWalk(other, n.left) {
		return false
	}
	if !other.Contains(n.value) {
		return false
	}
	if n.right != nil && !subsetWalk(other, n.right) {
		return false
	}
	return true
}

// Union inserts every value of other into s and returns s.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	assert.That(s != nil, "s != nil")
	assert.That(other != nil, "other != nil")
	if other.root != nil {
		unionWalk(s, other.root)
	}
	return s
}

func unionWalk[T any](dst *Set[T], n *node[T]) {
	if n.left != nil {
		unionWalk(dst, n.left)
	}
	dst.Insert(n.value)
	if n.right != nil {
		unionWalk(dst, n.right)
	}
}

// Intersect removes from s every value not contained in other and returns s.
// The walk runs over s's own tree post-order while erasing from it; see the
// package comment for why that is sound.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	assert.That(s != nil, "s != nil")
	assert.That(other != nil, "other != nil")
	if s.root != nil {
		intersectWalk(s, s.root, other)
	}
	return s
}

func intersectWalk[T any](s *Set[T], n *node[T], other *Set[T]) {
	if n.left != nil {
		intersectWalk(s, n.left, other)
	}
	if n.right != nil {
		intersectWalk(s, n.right, other)
	}
	if !other.Contains(n.value) {
		s.Erase(n.value)
	}
}

// Difference removes from s every value contained in other and returns s.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	assert.That(s != nil, "s != nil")
	assert.That(other != nil, "other != nil")
	if other.root != nil {
		differenceWalk(s, other.root)
	}
	return s
}

func differenceWalk[T any](s *Set[T], n *node[T]) {
	if n.left != nil {
		differenceWalk(s, n.left)
	}
	s.Erase(n.value)
	if n.right != nil {
		differenceWalk(s, n.right)
	}
}

// Clear releases every value and empties the set.
func (s *Set[T]) Clear() {
	assert.That(s != nil, "s != nil")
	assert.That((s.root == nil) == (s.count == 0), "root/count agree")
	if s.root != nil {
		clearWalk(s, s.root)
	}
	s.count = 0
	s.root = nil
}

func clearWalk[T any](s *Set[T], n *node[T]) {
	if n.left != nil {
		clearWalk(s, n.left)
	}
	right := n.right
	if s.release != nil {
		s.release(&n.value)
	}
	n.left, n.right = nil, nil
	if right != nil {
		clearWalk(s, right)
	}
}

// ForEach calls action on every value in ascending order.
func (s *Set[T]) ForEach(action func(T)) {
	assert.That(s != nil, "s != nil")
	assert.That(action != nil, "action != nil")
	assert.That((s.root == nil) == (s.count == 0), "root/count agree")
	if s.root != nil {
		forEachWalk(s.root, action)
	}
}

func forEachWalk[T any](n *node[T], action func(T)) {
	if n.left != nil {
		forEachWalk(n.left, action)
	}
	action(n.value)
	if n.right != nil {
		forEachWalk(n.right, action)
	}
}

// Destroy releases every value and empties the set. Alias of Clear kept for
// symmetry with the buffer-owning containers.
func (s *Set[T]) Destroy() {
	s.Clear()
}
