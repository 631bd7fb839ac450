// Package strbuf provides a mutable byte-string buffer backed by a
// [vector.Vector]. It supports in-place editing operations (insert, erase,
// substring trimming) that the immutable built-in string cannot express
// without reallocating on every step.
//
// # Encoding
//
// The buffer holds raw bytes. Positions passed to At, Set, Insert, Erase and
// Substr are byte offsets, not rune offsets. Case-insensitive comparison via
// EqualFold applies full Unicode case folding to the UTF-8 interpretation of
// the bytes.
package strbuf

import (
	"bytes"

	"golang.org/x/text/cases"

	"github.com/joshuapare/dskit/ds/vector"
	"github.com/joshuapare/dskit/internal/assert"
)

// Buffer is a growable, mutable byte string.
//
// The zero value is not usable; construct with New.
type Buffer struct {
	data *vector.Vector[byte]
}

// New returns a buffer initialized with the contents of s.
func New(s string) *Buffer {
	capacity := len(s)
	if capacity == 0 {
		capacity = 1
	}
	b := &Buffer{data: vector.New[byte](capacity)}
	b.Append(s)
	return b
}

// Copy returns an independent duplicate of the buffer.
func (b *Buffer) Copy() *Buffer {
	assert.That(b != nil, "b != nil")
	return &Buffer{data: b.data.Copy()}
}

// Len reports the number of bytes stored.
func (b *Buffer) Len() int {
	assert.That(b != nil, "b != nil")
	return b.data.Len()
}

// Cap reports the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	assert.That(b != nil, "b != nil")
	return b.data.Cap()
}

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool {
	return b.Len() == 0
}

// At returns the byte at index. index must be below Len.
func (b *Buffer) At(index int) byte {
	assert.That(b != nil, "b != nil")
	return *b.data.Get(index)
}

// Set overwrites the byte at index. index must be below Len.
func (b *Buffer) Set(index int, c byte) {
	assert.That(b != nil, "b != nil")
	*b.data.Get(index) = c
}

// String returns a copy of the contents as a string.
func (b *Buffer) String() string {
	assert.That(b != nil, "b != nil")
	return string(b.data.Slice())
}

// Bytes returns the backing byte slice. The view stays valid until the next
// mutating call.
func (b *Buffer) Bytes() []byte {
	assert.That(b != nil, "b != nil")
	return b.data.Slice()
}

// Substr trims the buffer in place to the n bytes starting at start.
func (b *Buffer) Substr(start, n int) {
	assert.That(b != nil, "b != nil")
	assert.That(start >= 0 && n >= 0 && start+n <= b.Len(), "range within buffer")
	buf := b.data.Slice()
	copy(buf, buf[start:start+n])
	b.truncate(n)
}

// Compare orders the buffer against other bytewise, returning -1, 0, or +1.
func (b *Buffer) Compare(other *Buffer) int {
	assert.That(b != nil, "b != nil")
	assert.That(other != nil, "other != nil")
	return bytes.Compare(b.data.Slice(), other.data.Slice())
}

// Equal reports whether both buffers hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Compare(other) == 0
}

// EqualFold reports whether both buffers are equal under Unicode case
// folding.
func (b *Buffer) EqualFold(other *Buffer) bool {
	assert.That(b != nil, "b != nil")
	assert.That(other != nil, "other != nil")
	folder := cases.Fold()
	return folder.String(b.String()) == folder.String(other.String())
}

// Append writes s after the current contents.
func (b *Buffer) Append(s string) {
	assert.That(b != nil, "b != nil")
	for i := 0; i < len(s); i++ {
		b.data.Push(s[i])
	}
}

// Insert places s at byte offset index, shifting the tail right. index may
// equal Len, which appends.
func (b *Buffer) Insert(index int, s string) {
	assert.That(b != nil, "b != nil")
	assert.That(index >= 0 && index <= b.Len(), "index <= len")
	if len(s) == 0 {
		return
	}
	old := b.Len()
	b.data.Extend(len(s))
	buf := b.data.Slice()
	copy(buf[index+len(s):], buf[index:old])
	copy(buf[index:], s)
}

// Erase removes n bytes starting at byte offset index, shifting the tail
// left.
func (b *Buffer) Erase(index, n int) {
	assert.That(b != nil, "b != nil")
	assert.That(index >= 0 && n >= 0 && index+n <= b.Len(), "range within buffer")
	if n == 0 {
		return
	}
	buf := b.data.Slice()
	copy(buf[index:], buf[index+n:])
	b.truncate(b.Len() - n)
}

// Resize changes the capacity, truncating the contents if newCap is below
// Len.
func (b *Buffer) Resize(newCap int) {
	assert.That(b != nil, "b != nil")
	b.data.Resize(newCap)
}

// Clear drops the contents but keeps the allocation.
func (b *Buffer) Clear() {
	assert.That(b != nil, "b != nil")
	b.data.Clear()
}

// Destroy releases the buffer's storage.
func (b *Buffer) Destroy() {
	assert.That(b != nil, "b != nil")
	b.data.Destroy()
}

// truncate drops bytes past newLen without touching capacity.
func (b *Buffer) truncate(newLen int) {
	for b.data.Len() > newLen {
		b.data.Pop()
	}
}
