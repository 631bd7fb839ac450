// Package arena provides a block allocator over a fixed region of memory.
//
// # Overview
//
// An Arena owns one contiguous byte region and carves allocations out of it
// with an address-ordered first-fit free list. Freed blocks coalesce with
// adjacent free neighbors on both sides, so interleaved alloc/free churn does
// not fragment the region permanently. Allocation never touches the system
// heap after construction, which makes the arena a deterministic alternative
// to ordinary allocation for memory-budgeted workloads.
//
// # Blocks
//
// Alloc returns the block's offset within the region together with a byte
// slice view of it:
//
//	a, err := arena.New(1 << 16)
//	if err != nil {
//	    return err
//	}
//	off, buf, err := a.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//	// ...
//	err = a.Free(off)
//
// The offset is the durable handle: it stays meaningful across Grow and
// across Realloc of other blocks and, for file-backed arenas, across process
// restarts. Slice views stay valid until the region relocates: Grow moves
// it, so re-resolve any held views afterwards.
//
// # Alignment
//
// Block sizes round up to an 8-byte boundary, so every returned offset is
// 8-byte aligned.
//
// # File-backed arenas
//
// NewFile maps a file as the arena region. On Unix platforms the region is a
// shared memory map and Flush calls msync to push modified pages to disk; on
// other platforms the file is read into memory and Flush writes it back.
// Block bookkeeping is not persisted, so a reopened file-backed arena starts
// with a fresh free list over the mapped bytes.
//
// # Thread safety
//
// Arena instances are not safe for concurrent use. Callers must synchronize
// externally.
package arena
