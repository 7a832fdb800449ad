// Package builder accumulates string fragments and materializes them
// into a single owned buffer. Appends store borrowed views as nodes of a
// singly linked list in append order; nothing is copied until Bytes or
// String walks the list once and flattens it with exactly one
// allocation. Appended fragments must stay valid and unmutated until
// materialization.
package builder

import (
	galloc "github.com/blong14/gmem/internal/alloc"
)

type node struct {
	frag []byte
	next *node
}

type Builder struct {
	head   *node
	tail   *node
	length int
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Append records a borrowed fragment. The fragment's bytes must remain
// valid and unmodified until the builder is materialized.
func (b *Builder) Append(frag []byte) {
	next := &node{frag: frag}
	if b.head == nil {
		b.head = next
	} else {
		b.tail.next = next
	}
	b.tail = next
	b.length += len(frag)
}

// AppendString records the bytes of s.
func (b *Builder) AppendString(s string) {
	b.Append([]byte(s))
}

// Len returns the total length of all appended fragments in O(1).
func (b *Builder) Len() int {
	return b.length
}

// Bytes materializes the fragments into one owned buffer: a single
// allocation of exactly Len bytes, one copy pass over the list.
func (b *Builder) Bytes() []byte {
	out := galloc.Bytes(b.length, 1)
	off := 0
	for n := b.head; n != nil; n = n.next {
		off += copy(out[off:], n.frag)
	}
	return out
}

// String materializes the fragments into an owned string.
func (b *Builder) String() string {
	return string(b.Bytes())
}

// Reset drops the fragment list and returns the builder to its empty
// state.
func (b *Builder) Reset() {
	b.head = nil
	b.tail = nil
	b.length = 0
}
