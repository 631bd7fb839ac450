// Package vector implements a contiguous growable buffer, the building block
// under the hashmap, slab and strbuf packages.
//
// # Overview
//
// A Vector owns its backing storage exclusively. The element count and the
// capacity are tracked separately: capacity only changes through Resize (or
// through an insert that triggers growth), and growth always doubles the
// capacity. Elements removed from the vector are handed to the optional
// release callback before their slot is reused, mirroring how the other
// containers dispose of values they own.
//
// # Pointer stability
//
// Get returns a pointer into the backing storage. Any operation that can
// relocate the storage (Resize, Insert or Push at capacity) invalidates every
// previously obtained pointer, as does the slice returned by Slice and
// Reverse. Holding such a pointer across a mutation is a contract violation
// the package cannot detect.
//
// # Contract checks
//
// Preconditions (index in range, capacity positive, pop on non-empty) are
// checked through internal/assert: builds with the dscheck tag panic with a
// diagnostic, release builds compile the checks away.
//
// # Thread safety
//
// Vectors are not safe for concurrent use. This is library-wide policy, not
// an omission; callers needing sharing must synchronize externally.
package vector
