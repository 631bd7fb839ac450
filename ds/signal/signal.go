package signal

import (
	"github.com/joshuapare/dskit/ds/slab"
	"github.com/joshuapare/dskit/internal/assert"
)

// Func is the callback signature a signal fans out to: the bound target and
// the invocation argument.
type Func[T, A any] func(target *T, arg A)

// Handle identifies one binding. It is the slab handle of the binding's slot.
type Handle = slab.Handle

type binding[T, A any] struct {
	target *T
	fn     Func[T, A]
}

// Signal is a multicast registry of (target, callback) bindings sharing the
// argument type A.
type Signal[T, A any] struct {
	bindings *slab.Slab[binding[T, A]]
}

// New returns a signal with room for capacity bindings before growing.
// capacity must be positive.
func New[T, A any](capacity int) *Signal[T, A] {
	return &Signal[T, A]{bindings: slab.New[binding[T, A]](capacity)}
}

// Copy returns a signal with an independent copy of the binding slab.
// Handles issued by the original are valid on the copy.
func (s *Signal[T, A]) Copy() *Signal[T, A] {
	assert.That(s != nil, "s != nil")
	return &Signal[T, A]{bindings: s.bindings.Copy()}
}

// Count returns the number of live bindings.
func (s *Signal[T, A]) Count() int {
	assert.That(s != nil, "s != nil")
	return s.bindings.Len()
}

// Empty reports whether no bindings exist.
func (s *Signal[T, A]) Empty() bool {
	return s.Count() == 0
}

// Bound reports whether handle names a live binding.
func (s *Signal[T, A]) Bound(handle Handle) bool {
	assert.That(s != nil, "s != nil")
	return s.bindings.Valid(handle)
}

// Bind registers fn against target and returns the handle to unbind with.
// target and fn must be non-nil.
func (s *Signal[T, A]) Bind(target *T, fn Func[T, A]) Handle {
	assert.That(s != nil, "s != nil")
	assert.That(target != nil, "target != nil")
	assert.That(fn != nil, "fn != nil")
	return s.bindings.Borrow(binding[T, A]{target: target, fn: fn})
}

// Unbind removes the binding handle names. handle must be bound.
func (s *Signal[T, A]) Unbind(handle Handle) {
	assert.That(s != nil, "s != nil")
	assert.That(s.Bound(handle), "handle bound")
	s.bindings.Return(handle)
}

// Invoke calls every live binding with arg, in slot order. Callbacks may
// Bind and Unbind on this signal mid-invoke; see the package comment for the
// exact visit semantics.
func (s *Signal[T, A]) Invoke(arg A) {
	assert.That(s != nil, "s != nil")
	s.bindings.Each(func(_ Handle, b *binding[T, A]) {
		assert.That(b.target != nil, "binding target != nil")
		assert.That(b.fn != nil, "binding fn != nil")
		b.fn(b.target, arg)
	})
}

// Clear removes every binding. Handles stay stale forever.
func (s *Signal[T, A]) Clear() {
	assert.That(s != nil, "s != nil")
	s.bindings.Clear()
}

// Destroy removes every binding and drops the slab storage. The signal must
// not be used afterwards.
func (s *Signal[T, A]) Destroy() {
	assert.That(s != nil, "s != nil")
	s.bindings.Destroy()
}
