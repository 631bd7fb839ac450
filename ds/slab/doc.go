// Package slab implements a generational slot pool: same-size values live in
// one growable buffer and are addressed by lightweight handles instead of
// pointers.
//
// # Handles
//
// A Handle is an (index, generation) pair. Each slot records the generation
// of its current occupant; generation zero marks a free slot. A handle is
// valid only while its generation matches the slot's, so a handle kept past
// Return is detected as stale even after the slot has been reused — the pool
// never lets an old handle alias an unrelated value.
//
// Generations increase monotonically across the slab's lifetime. The counter
// is 32 bits wide; wrapping it past the reserved zero takes 2^32-1 borrows
// and is an accepted, documented edge, not a checked one (dscheck builds
// trip an assertion).
//
// # Allocation policy
//
// Borrow reuses the lowest free index if one exists below the current length
// (a free-slot hint scans forward after every reuse), otherwise it appends a
// new block. Return frees the slot and pulls the hint back if the freed index
// is lower. This is first-fit-lowest-index, not LIFO.
//
// # Pointer stability
//
// Get returns a pointer into the block buffer. Borrow may grow the buffer and
// relocate it, so refresh pointers through the handle after any Borrow.
//
// # Thread safety
//
// Slabs are not safe for concurrent use.
package slab
