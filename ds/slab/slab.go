package slab

import (
	"github.com/joshuapare/dskit/ds/vector"
	"github.com/joshuapare/dskit/internal/assert"
)

// Handle names a borrowed slot. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// Index returns the slot index the handle names. Only meaningful while the
// handle is valid.
func (h Handle) Index() int {
	return int(h.index)
}

type block[T any] struct {
	value T
	gen   uint32 // 0 = free
}

// Slab is a generational slot pool of T.
type Slab[T any] struct {
	count   int
	next    Handle // next slot to hand out; gen is the next generation to issue
	blocks  *vector.Vector[block[T]]
	release vector.ReleaseFunc[T]
}

// New returns a slab with the given initial capacity and no release
// callback. capacity must be positive.
func New[T any](capacity int) *Slab[T] {
	return NewWithRelease[T](capacity, nil)
}

// NewWithRelease returns a slab that hands returned values to release before
// freeing their slot.
func NewWithRelease[T any](capacity int, release vector.ReleaseFunc[T]) *Slab[T] {
	assert.That(capacity > 0, "capacity > 0")
	return &Slab[T]{
		next:    Handle{index: 0, gen: 1},
		blocks:  vector.New[block[T]](capacity),
		release: release,
	}
}

// Copy returns a slab with fresh block storage holding bitwise copies of the
// blocks. Handles issued by the original are valid on the copy, since slot
// generations are preserved. The copy does not inherit the release callback.
func (s *Slab[T]) Copy() *Slab[T] {
	assert.That(s != nil, "s != nil")
	return &Slab[T]{
		count:  s.count,
		next:   s.next,
		blocks: s.blocks.Copy(),
	}
}

// Len returns the number of live values.
func (s *Slab[T]) Len() int {
	assert.That(s != nil, "s != nil")
	return s.count
}

// Empty reports whether no values are borrowed.
func (s *Slab[T]) Empty() bool {
	return s.Len() == 0
}

// Valid reports whether handle names a live value.
func (s *Slab[T]) Valid(handle Handle) bool {
	assert.That(s != nil, "s != nil")
	assert.That(s.count <= s.blocks.Len(), "count <= blocks")
	if s.count == 0 || int(handle.index) >= s.blocks.Len() {
		return false
	}
	gen := s.blocks.Get(int(handle.index)).gen
	return gen != 0 && gen == handle.gen
}

// Get returns a pointer to the value handle names. handle must be valid. The
// pointer is invalidated by any Borrow that grows the buffer.
func (s *Slab[T]) Get(handle Handle) *T {
	assert.That(s != nil, "s != nil")
	assert.That(s.Valid(handle), "valid handle")
	return &s.blocks.Get(int(handle.index)).value
}

// Borrow stores value in the lowest free slot, or appends one, and returns
// its handle. The handle's generation strictly exceeds that of every handle
// previously issued for the slot.
func (s *Slab[T]) Borrow(value T) Handle {
	assert.That(s != nil, "s != nil")
	assert.That(s.count <= s.blocks.Len(), "count <= blocks")
	id := s.next
	if int(id.index) == s.blocks.Len() {
		// No reclaimable slot below the current length: append.
		s.blocks.Push(block[T]{value: value, gen: id.gen})
		s.next.index++
	} else {
		slot := s.blocks.Get(int(id.index))
		slot.value = value
		slot.gen = id.gen
		// Advance the hint to the next free slot, or one past the end to
		// signal "append next time".
		for {
			s.next.index++
			if int(s.next.index) >= s.blocks.Len() || s.blocks.Get(int(s.next.index)).gen == 0 {
				break
			}
		}
	}
	s.count++
	s.next.gen++
	assert.That(s.next.gen > 0, "generation counter wrapped")
	return id
}

// Return releases the value handle names and frees its slot. handle must be
// valid.
func (s *Slab[T]) Return(handle Handle) {
	assert.That(s != nil, "s != nil")
	assert.That(s.count > 0, "count > 0")
	assert.That(s.Valid(handle), "valid handle")
	s.count--
	if s.next.index > handle.index {
		s.next.index = handle.index
	}
	slot := s.blocks.Get(int(handle.index))
	if s.release != nil {
		s.release(&slot.value)
	}
	var zero T
	slot.value = zero
	slot.gen = 0
}

// Clear releases every live value and frees all slots. Generations keep
// counting from where they were, so stale handles stay detectable.
func (s *Slab[T]) Clear() {
	assert.That(s != nil, "s != nil")
	if s.count == 0 {
		s.next.index = 0
		return
	}
	blocks := s.blocks.Slice()
	for i := range blocks {
		if blocks[i].gen == 0 {
			continue
		}
		blocks[i].gen = 0
		if s.release != nil {
			s.release(&blocks[i].value)
		}
		var zero T
		blocks[i].value = zero
		s.count--
		if s.count == 0 {
			break
		}
	}
	assert.That(s.count == 0, "count == 0 after clear")
	s.count = 0
	s.next.index = 0
}

// ForEach calls action on every live value in index order.
func (s *Slab[T]) ForEach(action func(T)) {
	assert.That(s != nil, "s != nil")
	assert.That(action != nil, "action != nil")
	blocks := s.blocks.Slice()
	remaining := s.count
	for i := 0; remaining > 0 && i < len(blocks); i++ {
		if blocks[i].gen == 0 {
			continue
		}
		action(blocks[i].value)
		remaining--
	}
}

// Each walks the live blocks in index order, passing each block's handle and
// value pointer. Unlike ForEach, the callback may Borrow and Return on this
// slab during the walk: the loop re-reads the length every step and skips
// slots that are free when it reaches them, so values returned ahead of the
// cursor are not visited. The walk is bounded by the live count at entry —
// at most that many callbacks run, so a callback that borrows on every call
// cannot extend the walk indefinitely.
func (s *Slab[T]) Each(fn func(Handle, *T)) {
	assert.That(s != nil, "s != nil")
	assert.That(fn != nil, "fn != nil")
	remaining := s.count
	for i := 0; remaining > 0 && i < s.blocks.Len(); i++ {
		slot := s.blocks.Get(i)
		if slot.gen == 0 {
			continue
		}
		h := Handle{index: uint32(i), gen: slot.gen}
		fn(h, &slot.value)
		remaining--
	}
}

// Destroy releases every live value and drops the block storage. The slab
// must not be used afterwards.
func (s *Slab[T]) Destroy() {
	assert.That(s != nil, "s != nil")
	s.Clear()
	s.blocks.Destroy()
}
