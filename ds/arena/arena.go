package arena

import (
	"math"

	"github.com/joshuapare/dskit/ds/list"
	"github.com/joshuapare/dskit/internal/assert"
)

// blockAlign is the boundary every block size and offset rounds to.
const blockAlign = 8

// span is one contiguous run of free bytes. The free list keeps spans in
// ascending offset order with no two spans adjacent.
type span struct {
	off  int
	size int
}

// Arena allocates blocks out of a fixed byte region.
//
// The zero value is not usable; construct with New or NewFile.
type Arena struct {
	data []byte
	free *list.List[span]
	live map[int]int

	// set for file-backed arenas
	remap   func(newSize int) ([]byte, error)
	flush   func([]byte) error
	cleanup func() error
}

// alignUp rounds n to the next multiple of blockAlign.
func alignUp(n int) int {
	return (n + blockAlign - 1) &^ (blockAlign - 1)
}

// New returns an arena over a fresh in-memory region of at least size bytes.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return newArena(make([]byte, alignUp(size)), nil, nil, nil), nil
}

func newArena(data []byte, remap func(int) ([]byte, error), flush func([]byte) error, cleanup func() error) *Arena {
	a := &Arena{
		data:    data,
		free:    list.New[span](),
		live:    make(map[int]int),
		remap:   remap,
		flush:   flush,
		cleanup: cleanup,
	}
	a.free.PushBack(span{off: 0, size: len(data)})
	return a
}

// Size reports the total region size in bytes.
func (a *Arena) Size() int {
	assert.That(a != nil, "a != nil")
	return len(a.data)
}

// Live reports the number of allocated blocks.
func (a *Arena) Live() int {
	assert.That(a != nil, "a != nil")
	return len(a.live)
}

// FreeBytes reports the total bytes available across all free spans. A
// single allocation may still fail with ErrNoSpace if no one span is large
// enough.
func (a *Arena) FreeBytes() int {
	assert.That(a != nil, "a != nil")
	total := 0
	a.free.ForEach(func(s span) { total += s.size })
	return total
}

// firstFree returns the lowest-offset free span's node, or nil when every
// byte is allocated. A drained free list is an expected state here, not a
// contract violation, so the list's non-empty precondition must not trip.
func (a *Arena) firstFree() *list.Node[span] {
	if a.free.Empty() {
		return nil
	}
	return a.free.Head()
}

// Alloc carves a block of at least need bytes out of the first free span
// that fits, returning its offset and a view of its bytes. The contents are
// not zeroed; reused regions keep whatever was written before.
func (a *Arena) Alloc(need int) (int, []byte, error) {
	assert.That(a != nil, "a != nil")
	if need <= 0 {
		return 0, nil, ErrBadSize
	}
	need = alignUp(need)
	for n := a.firstFree(); n != nil; n = n.Next() {
		if n.Value.size < need {
			continue
		}
		off := n.Value.off
		n.Value.off += need
		n.Value.size -= need
		if n.Value.size == 0 {
			a.free.Remove(n)
		}
		a.live[off] = need
		return off, a.data[off : off+need], nil
	}
	return 0, nil, ErrNoSpace
}

// AllocZero carves a count*size block of zeroed bytes.
func (a *Arena) AllocZero(count, size int) (int, []byte, error) {
	assert.That(a != nil, "a != nil")
	if count <= 0 || size <= 0 {
		return 0, nil, ErrBadSize
	}
	if count > math.MaxInt/size {
		return 0, nil, ErrBadSize
	}
	off, buf, err := a.Alloc(count * size)
	if err != nil {
		return 0, nil, err
	}
	clear(buf)
	return off, buf, nil
}

// Resolve returns the byte view of the live block at off.
func (a *Arena) Resolve(off int) ([]byte, error) {
	assert.That(a != nil, "a != nil")
	size, ok := a.live[off]
	if !ok {
		return nil, ErrBadOffset
	}
	return a.data[off : off+size], nil
}

// Free returns the block at off to the free list, merging it with any free
// neighbor on either side.
func (a *Arena) Free(off int) error {
	assert.That(a != nil, "a != nil")
	size, ok := a.live[off]
	if !ok {
		return ErrBadOffset
	}
	delete(a.live, off)

	// Find the first free span past the block, keeping address order.
	var next *list.Node[span]
	for n := a.firstFree(); n != nil; n = n.Next() {
		if n.Value.off > off {
			next = n
			break
		}
	}

	var node *list.Node[span]
	switch {
	case next != nil:
		node = a.free.InsertBefore(next, span{off: off, size: size})
	default:
		node = a.free.PushBack(span{off: off, size: size})
	}

	if next != nil && node.Value.off+node.Value.size == next.Value.off {
		node.Value.size += next.Value.size
		a.free.Remove(next)
	}
	if prev := node.Prev(); prev != nil && prev.Value.off+prev.Value.size == node.Value.off {
		prev.Value.size += node.Value.size
		a.free.Remove(node)
	}
	return nil
}

// Realloc grows the block at off to at least need bytes, moving it if the
// block cannot satisfy the size in place. It returns the block's (possibly
// new) offset and byte view; the old contents are preserved up to the
// smaller of the two sizes.
func (a *Arena) Realloc(off, need int) (int, []byte, error) {
	assert.That(a != nil, "a != nil")
	if need <= 0 {
		return 0, nil, ErrBadSize
	}
	size, ok := a.live[off]
	if !ok {
		return 0, nil, ErrBadOffset
	}
	if size >= alignUp(need) {
		return off, a.data[off : off+size], nil
	}
	newOff, buf, err := a.Alloc(need)
	if err != nil {
		return 0, nil, err
	}
	copy(buf, a.data[off:off+size])
	if err := a.Free(off); err != nil {
		return 0, nil, err
	}
	return newOff, buf, nil
}

// Grow extends the region by at least extra bytes, merging the new bytes
// into the trailing free span when that span touches the old end. Growth
// relocates the region, so byte views from earlier Alloc and Resolve calls
// become stale; live offsets stay valid and Resolve returns fresh views.
func (a *Arena) Grow(extra int) error {
	assert.That(a != nil, "a != nil")
	if extra <= 0 {
		return ErrBadSize
	}
	extra = alignUp(extra)
	oldSize := len(a.data)

	if a.remap != nil {
		data, err := a.remap(oldSize + extra)
		if err != nil {
			return err
		}
		a.data = data
	} else {
		data := make([]byte, oldSize+extra)
		copy(data, a.data)
		a.data = data
	}

	if !a.free.Empty() {
		if tail := a.free.Tail(); tail.Value.off+tail.Value.size == oldSize {
			tail.Value.size += extra
			return nil
		}
	}
	a.free.PushBack(span{off: oldSize, size: extra})
	return nil
}

// Flush pushes a file-backed region's modified bytes to disk. It is a no-op
// for in-memory arenas.
func (a *Arena) Flush() error {
	assert.That(a != nil, "a != nil")
	if a.flush == nil {
		return nil
	}
	return a.flush(a.data)
}

// Destroy releases the region. It fails with ErrLeak, leaving the arena
// intact, if any block is still allocated.
func (a *Arena) Destroy() error {
	assert.That(a != nil, "a != nil")
	assert.That(a.data != nil, "arena not destroyed")
	if len(a.live) > 0 {
		return ErrLeak
	}
	// Full coalescing means a clean arena holds exactly one span.
	assert.That(a.free.Len() == 1, "free list fully coalesced")
	a.data = nil
	a.free.Destroy()
	a.live = nil
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
