// Package buffer provides the growable contiguous storage shared by the
// vector and string containers: a length plus a backing array with
// grow-on-demand. Callers receive borrowed views into the storage; any
// growth-capable operation may relocate it, so views must not be retained
// across a Push or Append.
package buffer

import (
	galloc "github.com/blong14/gmem/internal/alloc"
)

const (
	// BaseCapacity is the smallest capacity a non-empty buffer is grown to.
	BaseCapacity = 8
	// GrowthFactor amortizes reallocation cost across repeated appends.
	GrowthFactor = 1.618
)

type Buffer[T any] struct {
	data   []T // len(data) is the capacity; zeroed beyond length
	length int
	grows  int
}

// New returns an empty buffer. The first append pays for the first
// allocation; an empty buffer costs nothing.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// WithLength returns a zero-initialized buffer of n elements with
// capacity exactly n.
func WithLength[T any](n int) *Buffer[T] {
	if n < 0 {
		panic("buffer: negative length")
	}
	return &Buffer[T]{data: galloc.Make[T](n), length: n}
}

func (b *Buffer[T]) Len() int { return b.length }
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Grows returns the number of reallocations performed so far. For N
// single-element pushes this stays O(log N).
func (b *Buffer[T]) Grows() int { return b.grows }

// fit grows the backing array so n more elements can be written.
func (b *Buffer[T]) fit(n int) {
	need := b.length + n
	if need <= len(b.data) {
		return
	}
	newCap := 1 + int(GrowthFactor*float64(len(b.data)))
	if newCap < need {
		newCap = need
	}
	if newCap < BaseCapacity {
		newCap = BaseCapacity
	}
	data := galloc.Make[T](newCap)
	copy(data, b.data[:b.length])
	b.data = data
	b.grows++
}

// Push appends a single element, growing first if needed.
func (b *Buffer[T]) Push(v T) {
	b.fit(1)
	b.data[b.length] = v
	b.length++
}

// Append appends a slice of elements, growing at most once.
func (b *Buffer[T]) Append(vs []T) {
	if len(vs) == 0 {
		return
	}
	b.fit(len(vs))
	copy(b.data[b.length:], vs)
	b.length += len(vs)
}

// Pop removes and returns the last element. Popping an empty buffer is
// a caller contract violation. Capacity is retained.
func (b *Buffer[T]) Pop() T {
	if b.length == 0 {
		panic("buffer: pop from empty buffer")
	}
	b.length--
	v := b.data[b.length]
	var zero T
	b.data[b.length] = zero
	return v
}

// At returns the element at index i. Out-of-range indices are a caller
// contract violation.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.length {
		panic("buffer: index out of range")
	}
	return b.data[i]
}

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.length {
		panic("buffer: index out of range")
	}
	b.data[i] = v
}

// View returns the live elements as a borrowed slice. The view is
// invalidated by any growth-capable operation.
func (b *Buffer[T]) View() []T {
	return b.data[:b.length]
}

// Free drops the storage and zeroes length and capacity, so use after
// free is at least observable through Len and Cap.
func (b *Buffer[T]) Free() {
	b.data = nil
	b.length = 0
	b.grows = 0
}
