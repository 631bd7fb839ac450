package hashmap

import (
	"math"

	"github.com/joshuapare/dskit/ds/vector"
	"github.com/joshuapare/dskit/internal/assert"
)

// Load factor threshold: liveCount/capacity stays at or below 1/2 after
// every insert.
const (
	loadFactorNum = 1
	loadFactorDen = 2
)

// growthFactor is the rate the table expands at when the load factor would
// be exceeded.
const growthFactor = 2

// HashFunc maps a key to a 64-bit hash.
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

type bucketState uint8

const (
	stateEmpty bucketState = iota
	stateOccupied
	stateTombstone
)

type bucket[K, V any] struct {
	key   K
	value V
	state bucketState
}

// Map is an open-addressing hash table from K to V.
type Map[K, V any] struct {
	count   int
	buckets *vector.Vector[bucket[K, V]]
	hash    HashFunc[K]
	equal   EqualFunc[K]
	release vector.ReleaseFunc[V]
}

// New returns a map with the given initial capacity and key behavior.
// capacity must be positive; hash and equal must be non-nil.
func New[K, V any](capacity int, hash HashFunc[K], equal EqualFunc[K]) *Map[K, V] {
	return NewWithRelease[K, V](capacity, hash, equal, nil)
}

// NewWithRelease returns a map that hands evicted and erased values to
// release before discarding them.
func NewWithRelease[K, V any](capacity int, hash HashFunc[K], equal EqualFunc[K], release vector.ReleaseFunc[V]) *Map[K, V] {
	assert.That(capacity > 0, "capacity > 0")
	assert.That(hash != nil, "hash != nil")
	assert.That(equal != nil, "equal != nil")
	buckets := vector.New[bucket[K, V]](capacity)
	buckets.Extend(capacity)
	return &Map[K, V]{
		buckets: buckets,
		hash:    hash,
		equal:   equal,
		release: release,
	}
}

// NewString returns a map keyed by strings using the default FNV-1a hash.
func NewString[V any](capacity int) *Map[string, V] {
	return New[string, V](capacity, StringHash, Equals[string])
}

// NewInt returns a map keyed by ints using identity hashing.
func NewInt[V any](capacity int) *Map[int, V] {
	return New[int, V](capacity, IntHash[int], Equals[int])
}

// Copy returns a map with fresh bucket storage holding bitwise copies of the
// entries. The copy keeps the hash and equality callbacks but not the release
// callback: the original remains the owner of anything the values reference.
func (m *Map[K, V]) Copy() *Map[K, V] {
	assert.That(m != nil, "m != nil")
	return &Map[K, V]{
		count:   m.count,
		buckets: m.buckets.Copy(),
		hash:    m.hash,
		equal:   m.equal,
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	assert.That(m != nil, "m != nil")
	return m.count
}

// Cap returns the bucket table size.
func (m *Map[K, V]) Cap() int {
	assert.That(m != nil, "m != nil")
	return m.buckets.Len()
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// Find returns a pointer to the value stored under key, or nil if the key is
// absent. The pointer is valid until the next mutating operation.
func (m *Map[K, V]) Find(key K) *V {
	assert.That(m != nil, "m != nil")
	slots := m.buckets.Slice()
	capacity := len(slots)
	h := int(m.hash(key) % uint64(capacity))
	remaining := m.count
	for i := 0; remaining > 0 && i < capacity; i++ {
		b := &slots[(h+i)%capacity]
		if b.state == stateEmpty {
			return nil
		}
		if b.state == stateTombstone {
			continue
		}
		if m.equal(key, b.key) {
			return &b.value
		}
		remaining--
	}
	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.Find(key) != nil
}

// Resize rehashes the table into a fresh zeroed bucket array of newCap slots,
// re-probing every occupied bucket and dropping all tombstones. newCap must
// be at least the live count. Resizing to the current capacity is a no-op.
func (m *Map[K, V]) Resize(newCap int) {
	assert.That(m != nil, "m != nil")
	assert.That(newCap >= m.count, "newCap >= live count")
	if newCap == m.buckets.Len() {
		return
	}
	fresh := vector.New[bucket[K, V]](newCap)
	fresh.Extend(newCap)
	slots := fresh.Slice()
	old := m.buckets.Slice()
	remaining := m.count
	for i := 0; remaining > 0 && i < len(old); i++ {
		b := &old[i]
		if b.state != stateOccupied {
			continue
		}
		h := int(m.hash(b.key) % uint64(newCap))
		for j := 0; j < newCap; j++ {
			target := &slots[(h+j)%newCap]
			if target.state == stateOccupied {
				continue
			}
			*target = *b
			break
		}
		remaining--
	}
	m.buckets = fresh
}

// Insert stores value under key and reports whether an existing entry was
// overwritten. If the insert would push the load factor over 1/2 the table
// doubles first.
func (m *Map[K, V]) Insert(key K, value V) bool {
	assert.That(m != nil, "m != nil")
	if loadFactorDen*(m.count+1) > loadFactorNum*m.buckets.Len() {
		m.growTable()
	}
	h64 := m.hash(key)
	for {
		slots := m.buckets.Slice()
		capacity := len(slots)
		h := int(h64 % uint64(capacity))
		var target *bucket[K, V]
		for i := 0; i < capacity; i++ {
			b := &slots[(h+i)%capacity]
			if b.state == stateEmpty {
				if target == nil {
					target = b
				}
				m.count++
				*target = bucket[K, V]{key: key, value: value, state: stateOccupied}
				return false
			}
			if b.state == stateTombstone {
				if target == nil {
					target = b
				}
				continue
			}
			if m.equal(key, b.key) {
				if m.release != nil {
					m.release(&b.value)
				}
				b.value = value
				return true
			}
		}
		// No equal key anywhere; reuse the earliest tombstone if the probe
		// saw one, otherwise the table is saturated and must grow.
		if target != nil {
			m.count++
			*target = bucket[K, V]{key: key, value: value, state: stateOccupied}
			return false
		}
		m.growTable()
	}
}

func (m *Map[K, V]) growTable() {
	assert.That(m.buckets.Len() <= math.MaxInt/growthFactor, "capacity growth overflows")
	m.Resize(m.buckets.Len() * growthFactor)
}

// Erase removes the entry under key, releasing its value, and reports
// whether a key was found. The vacated slot becomes a tombstone.
func (m *Map[K, V]) Erase(key K) bool {
	assert.That(m != nil, "m != nil")
	slots := m.buckets.Slice()
	capacity := len(slots)
	h := int(m.hash(key) % uint64(capacity))
	remaining := m.count
	for i := 0; remaining > 0 && i < capacity; i++ {
		b := &slots[(h+i)%capacity]
		if b.state == stateEmpty {
			return false
		}
		if b.state == stateTombstone {
			continue
		}
		if m.equal(key, b.key) {
			m.count--
			if m.release != nil {
				m.release(&b.value)
			}
			var zero bucket[K, V]
			*b = zero
			b.state = stateTombstone
			return true
		}
		remaining--
	}
	return false
}

// Clear releases every live value and resets all buckets to empty. Capacity
// is retained.
func (m *Map[K, V]) Clear() {
	assert.That(m != nil, "m != nil")
	slots := m.buckets.Slice()
	for i := range slots {
		if slots[i].state == stateOccupied && m.release != nil {
			m.release(&slots[i].value)
		}
		var zero bucket[K, V]
		slots[i] = zero
	}
	m.count = 0
}

// ForEach calls action on every live entry, in bucket order.
func (m *Map[K, V]) ForEach(action func(K, V)) {
	assert.That(m != nil, "m != nil")
	assert.That(action != nil, "action != nil")
	slots := m.buckets.Slice()
	remaining := m.count
	for i := 0; remaining > 0 && i < len(slots); i++ {
		if slots[i].state != stateOccupied {
			continue
		}
		action(slots[i].key, slots[i].value)
		remaining--
	}
}

// ForEachKey calls action on every live key.
func (m *Map[K, V]) ForEachKey(action func(K)) {
	assert.That(action != nil, "action != nil")
	m.ForEach(func(k K, _ V) { action(k) })
}

// ForEachValue calls action on every live value.
func (m *Map[K, V]) ForEachValue(action func(V)) {
	assert.That(action != nil, "action != nil")
	m.ForEach(func(_ K, v V) { action(v) })
}

// Destroy releases every live value and drops the bucket storage. The map
// must not be used afterwards.
func (m *Map[K, V]) Destroy() {
	assert.That(m != nil, "m != nil")
	m.Clear()
	m.buckets.Destroy()
}
