// Package hashmap implements an open-addressing hash table with linear
// probing and tombstone deletion.
//
// # Overview
//
// The table is a vector of buckets, each tagged empty, occupied or tombstone.
// A lookup probes linearly from hash(key) mod capacity: an empty bucket ends
// the probe, a tombstone is skipped (it marks a deleted entry that must not
// break probe sequences running through it), an occupied bucket is compared
// against the key. Probes are bounded by the capacity, and stop early once
// every live entry has been compared.
//
// # Load factor and rehashing
//
// The live count never exceeds half the capacity immediately after an insert.
// An insert that would cross the threshold doubles the capacity first,
// re-probing every occupied bucket into a fresh zeroed table. Tombstones are
// not carried across a rehash, so a rehash is also the mechanism that reclaims
// deleted slots.
//
// # Hashing and equality
//
// The map is parameterized by a hash function and an equality predicate
// supplied at construction. StringHash and BytesHash implement the library's
// default FNV-1a (offset basis 2166136261, prime 16777619, iterated one byte
// at a time); IntHash is the identity. NewString wires the string defaults.
//
// # Thread safety
//
// Maps are not safe for concurrent use.
package hashmap
