// Package ref provides explicit ownership handles for values whose teardown
// must run at a well-defined point: a Unique owner, reference-counted Shared
// owners, and non-owning Weak observers.
//
// # Lifetime model
//
// A Shared value lives while at least one Shared handle holds it. Weak
// handles observe the same value without extending its life; Upgrade yields a
// new Shared handle only while the value is still alive. Counts are plain
// integers, so a single goroutine must own any one group of handles.
//
// Every handle must be destroyed exactly once. Destroying the last Shared
// handle runs the release callback; outstanding Weak handles keep only the
// bookkeeping alive, never the value.
package ref

import (
	"github.com/joshuapare/dskit/internal/assert"
)

// ReleaseFunc tears down a value when its last owner lets go.
type ReleaseFunc[T any] func(*T)

// Unique is a single-owner handle. It cannot be cloned; transferring
// ownership means handing over the Unique itself.
//
// The zero value is not usable; construct with NewUnique.
type Unique[T any] struct {
	value   *T
	release ReleaseFunc[T]
}

// NewUnique returns a sole-ownership handle for value. release may be nil.
func NewUnique[T any](value T, release ReleaseFunc[T]) *Unique[T] {
	return &Unique[T]{value: &value, release: release}
}

// Get returns the owned value. The handle must not have been destroyed.
func (u *Unique[T]) Get() *T {
	assert.That(u != nil, "u != nil")
	assert.That(u.value != nil, "handle still owns a value")
	return u.value
}

// Valid reports whether the handle still owns a value.
func (u *Unique[T]) Valid() bool {
	assert.That(u != nil, "u != nil")
	return u.value != nil
}

// Reset releases the current value and takes ownership of newValue.
func (u *Unique[T]) Reset(newValue T) {
	assert.That(u != nil, "u != nil")
	if u.value != nil && u.release != nil {
		u.release(u.value)
	}
	u.value = &newValue
}

// Destroy releases the owned value and invalidates the handle.
func (u *Unique[T]) Destroy() {
	assert.That(u != nil, "u != nil")
	if u.value != nil && u.release != nil {
		u.release(u.value)
	}
	u.value = nil
}

// control is the bookkeeping block shared by every handle to one value.
// shared counts owning handles, weak counts observers. The value is torn
// down when shared reaches zero, regardless of remaining observers.
type control[T any] struct {
	value   *T
	shared  int
	weak    int
	release ReleaseFunc[T]
}

func (c *control[T]) alive() bool {
	return c.shared > 0
}

func (c *control[T]) dropShared() {
	assert.That(c.shared > 0, "shared > 0")
	c.shared--
	if c.shared == 0 {
		if c.release != nil {
			c.release(c.value)
		}
		c.value = nil
	}
}

// Shared is a reference-counted owning handle.
//
// The zero value is not usable; construct with NewShared or Clone.
type Shared[T any] struct {
	ctl *control[T]
}

// NewShared returns the first owning handle for value. release may be nil.
func NewShared[T any](value T, release ReleaseFunc[T]) *Shared[T] {
	return &Shared[T]{ctl: &control[T]{
		value:   &value,
		shared:  1,
		release: release,
	}}
}

// Clone returns a new owning handle for the same value.
func (s *Shared[T]) Clone() *Shared[T] {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	s.ctl.shared++
	return &Shared[T]{ctl: s.ctl}
}

// Get returns the shared value.
func (s *Shared[T]) Get() *T {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	return s.ctl.value
}

// SharedCount reports the number of owning handles.
func (s *Shared[T]) SharedCount() int {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	return s.ctl.shared
}

// WeakCount reports the number of observing handles.
func (s *Shared[T]) WeakCount() int {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	return s.ctl.weak
}

// Reset detaches this handle from its current value and makes it the sole
// owner of newValue. The previous value is torn down if this was its last
// owner.
func (s *Shared[T]) Reset(newValue T) {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	release := s.ctl.release
	s.ctl.dropShared()
	s.ctl = &control[T]{
		value:   &newValue,
		shared:  1,
		release: release,
	}
}

// Downgrade returns a non-owning observer of the shared value.
func (s *Shared[T]) Downgrade() *Weak[T] {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	s.ctl.weak++
	return &Weak[T]{ctl: s.ctl}
}

// Destroy drops this handle's ownership. The value is torn down when the
// last owner is destroyed.
func (s *Shared[T]) Destroy() {
	assert.That(s != nil, "s != nil")
	assert.That(s.ctl != nil, "handle not destroyed")
	s.ctl.dropShared()
	s.ctl = nil
}

// Weak observes a shared value without keeping it alive.
//
// The zero value is not usable; construct with [Shared.Downgrade] or Clone.
type Weak[T any] struct {
	ctl *control[T]
}

// Clone returns another observer of the same value.
func (w *Weak[T]) Clone() *Weak[T] {
	assert.That(w != nil, "w != nil")
	assert.That(w.ctl != nil, "handle not destroyed")
	w.ctl.weak++
	return &Weak[T]{ctl: w.ctl}
}

// Valid reports whether the observed value is still alive.
func (w *Weak[T]) Valid() bool {
	assert.That(w != nil, "w != nil")
	assert.That(w.ctl != nil, "handle not destroyed")
	return w.ctl.alive()
}

// Upgrade returns a new owning handle if the value is still alive, or nil
// once the last owner has been destroyed.
func (w *Weak[T]) Upgrade() *Shared[T] {
	assert.That(w != nil, "w != nil")
	assert.That(w.ctl != nil, "handle not destroyed")
	if !w.ctl.alive() {
		return nil
	}
	w.ctl.shared++
	return &Shared[T]{ctl: w.ctl}
}

// Destroy drops the observer.
func (w *Weak[T]) Destroy() {
	assert.That(w != nil, "w != nil")
	assert.That(w.ctl != nil, "handle not destroyed")
	assert.That(w.ctl.weak > 0, "weak > 0")
	w.ctl.weak--
	w.ctl = nil
}
