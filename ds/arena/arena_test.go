package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocFirstFit(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)

	off1, buf1, err := a.Alloc(16)
	require.NoError(t, err)
	require.Equal(t, 0, off1)
	require.Len(t, buf1, 16)

	off2, _, err := a.Alloc(16)
	require.NoError(t, err)
	require.Equal(t, 16, off2)

	// Freeing the first block makes its span the first fit again.
	require.NoError(t, a.Free(off1))
	off3, _, err := a.Alloc(8)
	require.NoError(t, err)
	require.Equal(t, 0, off3)

	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Free(off3))
	require.NoError(t, a.Destroy())
}

func TestAlignmentRounding(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)

	off1, buf, err := a.Alloc(5)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	off2, _, err := a.Alloc(1)
	require.NoError(t, err)
	require.Equal(t, 8, off2)

	require.NoError(t, a.Free(off1))
	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Destroy())
}

func TestNoSpace(t *testing.T) {
	a, err := New(32)
	require.NoError(t, err)

	_, _, err = a.Alloc(64)
	require.ErrorIs(t, err, ErrNoSpace)

	// Two half-sized blocks fit; with one freed, a full-region block still
	// cannot fit because the free bytes are split.
	off1, _, err := a.Alloc(16)
	require.NoError(t, err)
	off2, _, err := a.Alloc(16)
	require.NoError(t, err)
	require.NoError(t, a.Free(off1))
	_, _, err = a.Alloc(32)
	require.ErrorIs(t, err, ErrNoSpace)
	require.Equal(t, 16, a.FreeBytes())

	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Destroy())
}

func TestDrainedFreeList(t *testing.T) {
	a, err := New(32)
	require.NoError(t, err)

	off, _, err := a.Alloc(32)
	require.NoError(t, err)
	require.Equal(t, 0, a.FreeBytes())

	// Exhaustion with no free span left is an error, not a violated
	// precondition.
	_, _, err = a.Alloc(1)
	require.ErrorIs(t, err, ErrNoSpace)

	// Freeing into the drained list rebuilds the single span.
	require.NoError(t, a.Free(off))
	require.Equal(t, 32, a.FreeBytes())

	// Growing while the list is drained appends the new bytes as a fresh
	// span.
	off, _, err = a.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, a.Grow(32))
	require.Equal(t, 32, a.FreeBytes())

	off2, _, err := a.Alloc(32)
	require.NoError(t, err)
	require.Equal(t, 32, off2)

	require.NoError(t, a.Free(off))
	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Destroy())
}

func TestCoalesceBothSides(t *testing.T) {
	a, err := New(48)
	require.NoError(t, err)

	off1, _, err := a.Alloc(16)
	require.NoError(t, err)
	off2, _, err := a.Alloc(16)
	require.NoError(t, err)
	off3, _, err := a.Alloc(16)
	require.NoError(t, err)

	// Free outer blocks, then the middle one; all three must merge into a
	// single span able to host a full-region block.
	require.NoError(t, a.Free(off1))
	require.NoError(t, a.Free(off3))
	require.NoError(t, a.Free(off2))

	off, _, err := a.Alloc(48)
	require.NoError(t, err)
	require.Equal(t, 0, off)
	require.NoError(t, a.Free(off))
	require.NoError(t, a.Destroy())
}

func TestAllocZero(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)

	off, buf, err := a.Alloc(16)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, a.Free(off))

	_, buf, err = a.AllocZero(4, 4)
	require.NoError(t, err)
	for _, b := range buf {
		require.Zero(t, b)
	}

	_, _, err = a.AllocZero(0, 8)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestReallocInPlaceAndMove(t *testing.T) {
	a, err := New(128)
	require.NoError(t, err)

	off, buf, err := a.Alloc(5)
	require.NoError(t, err)
	copy(buf, "hello")

	// Fits in the already-rounded block.
	same, _, err := a.Realloc(off, 8)
	require.NoError(t, err)
	require.Equal(t, off, same)

	// Needs a bigger block; contents move with it.
	moved, buf, err := a.Realloc(off, 32)
	require.NoError(t, err)
	require.NotEqual(t, off, moved)
	require.Equal(t, "hello", string(buf[:5]))

	_, err = a.Resolve(off)
	require.ErrorIs(t, err, ErrBadOffset)

	require.NoError(t, a.Free(moved))
	require.NoError(t, a.Destroy())
}

func TestResolve(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)

	off, buf, err := a.Alloc(8)
	require.NoError(t, err)
	buf[0] = 42

	view, err := a.Resolve(off)
	require.NoError(t, err)
	require.Equal(t, byte(42), view[0])

	_, err = a.Resolve(off + 1)
	require.ErrorIs(t, err, ErrBadOffset)
}

func TestFreeBadOffset(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)
	require.ErrorIs(t, a.Free(0), ErrBadOffset)

	off, _, err := a.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, a.Free(off))
	require.ErrorIs(t, a.Free(off), ErrBadOffset)
}

func TestDestroyLeakCheck(t *testing.T) {
	a, err := New(64)
	require.NoError(t, err)

	off, _, err := a.Alloc(8)
	require.NoError(t, err)
	require.ErrorIs(t, a.Destroy(), ErrLeak)

	// The failed destroy leaves the arena usable.
	require.Equal(t, 1, a.Live())
	require.NoError(t, a.Free(off))
	require.NoError(t, a.Destroy())
}

func TestGrowExtendsRegion(t *testing.T) {
	a, err := New(32)
	require.NoError(t, err)

	off1, _, err := a.Alloc(32)
	require.NoError(t, err)
	_, _, err = a.Alloc(8)
	require.ErrorIs(t, err, ErrNoSpace)

	// New bytes arrive as a fresh tail span; live offsets survive the move.
	require.NoError(t, a.Grow(32))
	require.Equal(t, 64, a.Size())
	off2, _, err := a.Alloc(32)
	require.NoError(t, err)
	require.Equal(t, 32, off2)

	require.NoError(t, a.Free(off1))
	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Destroy())
}

func TestGrowMergesTrailingSpan(t *testing.T) {
	a, err := New(32)
	require.NoError(t, err)

	off, _, err := a.Alloc(16)
	require.NoError(t, err)
	require.NoError(t, a.Grow(16))

	// The free 16 tail bytes and the grown 16 merge into one span.
	off2, _, err := a.Alloc(32)
	require.NoError(t, err)
	require.Equal(t, 16, off2)

	require.NoError(t, a.Free(off))
	require.NoError(t, a.Free(off2))
	require.NoError(t, a.Destroy())
}

func TestChurnStaysCoalesced(t *testing.T) {
	a, err := New(1 << 12)
	require.NoError(t, err)

	offsets := []int{}
	for i := 0; i < 64; i++ {
		off, _, err := a.Alloc(8 + (i%7)*8)
		require.NoError(t, err)
		offsets = append(offsets, off)
	}
	// Free every other block, then the rest in reverse.
	for i := 0; i < len(offsets); i += 2 {
		require.NoError(t, a.Free(offsets[i]))
	}
	for i := len(offsets) - 1; i >= 0; i -= 2 {
		require.NoError(t, a.Free(offsets[i]))
	}

	require.Equal(t, a.Size(), a.FreeBytes())
	require.NoError(t, a.Destroy())
}
