package vector

import (
	"math"

	"github.com/joshuapare/dskit/internal/assert"
)

// growthFactor is the rate capacity expands at when an insert needs room.
const growthFactor = 2

// ReleaseFunc disposes of an element the container is done with. Containers
// call it exactly once per owned element, right before the slot is
// overwritten, compacted away or dropped.
type ReleaseFunc[T any] func(*T)

// Vector is a growable contiguous buffer of T.
type Vector[T any] struct {
	elems   []T
	release ReleaseFunc[T]
}

// New returns a vector with the given initial capacity and no release
// callback. capacity must be positive.
func New[T any](capacity int) *Vector[T] {
	return NewWithRelease[T](capacity, nil)
}

// NewWithRelease returns a vector that hands removed elements to release
// before discarding them. capacity must be positive.
func NewWithRelease[T any](capacity int, release ReleaseFunc[T]) *Vector[T] {
	assert.That(capacity > 0, "capacity > 0")
	return &Vector[T]{
		elems:   make([]T, 0, capacity),
		release: release,
	}
}

// Copy returns a vector with fresh backing storage holding bitwise copies of
// the live elements. The copy does not inherit the release callback: the
// original remains the owner of anything the elements reference.
func (v *Vector[T]) Copy() *Vector[T] {
	assert.That(v != nil, "v != nil")
	elems := make([]T, len(v.elems), cap(v.elems))
	copy(elems, v.elems)
	return &Vector[T]{elems: elems}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	assert.That(v != nil, "v != nil")
	return len(v.elems)
}

// Cap returns the current capacity.
func (v *Vector[T]) Cap() int {
	assert.That(v != nil, "v != nil")
	return cap(v.elems)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Get returns a pointer to the element at index. index must be below Len.
// The pointer is valid until the next operation that relocates storage.
func (v *Vector[T]) Get(index int) *T {
	assert.That(v != nil, "v != nil")
	assert.That(index >= 0 && index < len(v.elems), "index < len")
	return &v.elems[index]
}

// Resize changes the capacity to newCap, relocating the backing storage.
// Shrinking below the current length releases the trailing elements first.
// Resizing to the current capacity is a no-op.
func (v *Vector[T]) Resize(newCap int) {
	assert.That(v != nil, "v != nil")
	assert.That(newCap > 0, "newCap > 0")
	if newCap == cap(v.elems) {
		return
	}
	if newCap < len(v.elems) {
		var zero T
		for i := newCap; i < len(v.elems); i++ {
			if v.release != nil {
				v.release(&v.elems[i])
			}
			v.elems[i] = zero
		}
		v.elems = v.elems[:newCap]
	}
	elems := make([]T, len(v.elems), newCap)
	copy(elems, v.elems)
	v.elems = elems
}

// grow doubles the capacity. The multiply is checked before it happens so an
// impossible request fails fast instead of wrapping.
func (v *Vector[T]) grow() {
	assert.That(cap(v.elems) <= math.MaxInt/growthFactor, "capacity growth overflows")
	v.Resize(cap(v.elems) * growthFactor)
}

// Insert places data at index, shifting the tail right by one slot. index may
// equal Len, which appends. Grows first if the vector is full.
func (v *Vector[T]) Insert(index int, data T) {
	assert.That(v != nil, "v != nil")
	assert.That(index >= 0 && index <= len(v.elems), "index <= len")
	if len(v.elems) == cap(v.elems) {
		v.grow()
	}
	v.elems = v.elems[:len(v.elems)+1]
	copy(v.elems[index+1:], v.elems[index:])
	v.elems[index] = data
}

// Remove releases the element at index and shifts the tail left. index must
// be below Len.
func (v *Vector[T]) Remove(index int) {
	assert.That(v != nil, "v != nil")
	assert.That(index >= 0 && index < len(v.elems), "index < len")
	if v.release != nil {
		v.release(&v.elems[index])
	}
	copy(v.elems[index:], v.elems[index+1:])
	var zero T
	v.elems[len(v.elems)-1] = zero
	v.elems = v.elems[:len(v.elems)-1]
}

// Push appends data, growing if full.
func (v *Vector[T]) Push(data T) {
	assert.That(v != nil, "v != nil")
	if len(v.elems) == cap(v.elems) {
		v.grow()
	}
	v.elems = append(v.elems, data)
}

// Pop releases and drops the last element. The vector must not be empty.
func (v *Vector[T]) Pop() {
	assert.That(v != nil, "v != nil")
	assert.That(len(v.elems) > 0, "len > 0")
	last := len(v.elems) - 1
	if v.release != nil {
		v.release(&v.elems[last])
	}
	var zero T
	v.elems[last] = zero
	v.elems = v.elems[:last]
}

// Reverse reverses the elements in place and returns the backing slice.
func (v *Vector[T]) Reverse() []T {
	assert.That(v != nil, "v != nil")
	for i, j := 0, len(v.elems)-1; i < j; i, j = i+1, j-1 {
		v.elems[i], v.elems[j] = v.elems[j], v.elems[i]
	}
	return v.elems
}

// Map replaces every element with transform(element) in place and returns the
// backing slice.
func (v *Vector[T]) Map(transform func(T) T) []T {
	assert.That(v != nil, "v != nil")
	assert.That(transform != nil, "transform != nil")
	for i := range v.elems {
		v.elems[i] = transform(v.elems[i])
	}
	return v.elems
}

// Filter keeps only the elements predicate accepts, compacting in place and
// releasing the rejected ones. Returns the new length.
func (v *Vector[T]) Filter(predicate func(T) bool) int {
	assert.That(v != nil, "v != nil")
	assert.That(predicate != nil, "predicate != nil")
	total := 0
	for i := range v.elems {
		if predicate(v.elems[i]) {
			v.elems[total] = v.elems[i]
			total++
		} else if v.release != nil {
			v.release(&v.elems[i])
		}
	}
	var zero T
	for i := total; i < len(v.elems); i++ {
		v.elems[i] = zero
	}
	v.elems = v.elems[:total]
	return total
}

// Reduce folds the elements left to right starting from seed.
func (v *Vector[T]) Reduce(seed T, combine func(acc, elem T) T) T {
	assert.That(v != nil, "v != nil")
	assert.That(combine != nil, "combine != nil")
	for i := range v.elems {
		seed = combine(seed, v.elems[i])
	}
	return seed
}

// ForEach calls action on every element in index order.
func (v *Vector[T]) ForEach(action func(T)) {
	assert.That(v != nil, "v != nil")
	assert.That(action != nil, "action != nil")
	for i := range v.elems {
		action(v.elems[i])
	}
}

// Extend appends n zero-valued elements, growing as needed. Used by
// containers that address their storage as a fixed-size table.
func (v *Vector[T]) Extend(n int) {
	assert.That(v != nil, "v != nil")
	assert.That(n >= 0, "n >= 0")
	for len(v.elems)+n > cap(v.elems) {
		v.grow()
	}
	v.elems = v.elems[:len(v.elems)+n]
}

// Slice returns the live elements as a borrowed view of the backing storage.
// The view is invalidated by any operation that relocates storage.
func (v *Vector[T]) Slice() []T {
	assert.That(v != nil, "v != nil")
	return v.elems
}

// Clear releases every element and resets the length to zero. Capacity is
// retained.
func (v *Vector[T]) Clear() {
	assert.That(v != nil, "v != nil")
	var zero T
	for i := range v.elems {
		if v.release != nil {
			v.release(&v.elems[i])
		}
		v.elems[i] = zero
	}
	v.elems = v.elems[:0]
}

// Destroy releases every element and drops the backing storage. The vector
// must not be used afterwards.
func (v *Vector[T]) Destroy() {
	assert.That(v != nil, "v != nil")
	v.Clear()
	v.elems = nil
}
