// Package signal implements a multicast dispatch registry: bindings of
// (target, callback) pairs that one Invoke call fans out to synchronously.
//
// # Overview
//
// Bindings live in a generational slab, and the handle returned by Bind is
// exactly the slab handle for the binding's slot. Unbinding a destroyed
// observer before its target goes away is the caller's job — an invoke
// through a binding whose target has been torn down dereferences whatever is
// left of it.
//
// # Mutation during invoke
//
// A bound callback may Bind and Unbind on the same signal while an Invoke is
// in progress; this is supported, not merely tolerated. The fan-out iterates
// the live slot storage directly, re-reading the length each step: slots
// freed ahead of the cursor are skipped, and a slot freed and reused behind
// the cursor is not revisited. The pass is capped at the number of bindings
// live when Invoke started, so a binding added during the fan-out waits for
// the next Invoke and a callback that binds on every call cannot keep the
// pass alive forever.
//
// # Thread safety
//
// Signals are not safe for concurrent use.
package signal
