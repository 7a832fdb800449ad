// Package vector is the typed growable array specialization of the
// buffer core. The growth algorithm lives in internal/buffer; this layer
// only fixes the element type and adds construction and iteration.
package vector

import (
	gbuf "github.com/blong14/gmem/internal/buffer"
)

type Vector[T any] struct {
	gbuf.Buffer[T]
}

// New returns an empty vector; the first push triggers its first
// allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithLength returns a zero-initialized vector of n elements.
func WithLength[T any](n int) *Vector[T] {
	return &Vector[T]{Buffer: *gbuf.WithLength[T](n)}
}

// Filled returns a vector of n copies of v.
func Filled[T any](v T, n int) *Vector[T] {
	vec := WithLength[T](n)
	for i := 0; i < n; i++ {
		vec.Set(i, v)
	}
	return vec
}

// Range iterates the vector in index order, applying f to each element.
// f returns true to continue, false to stop ranging.
func (v *Vector[T]) Range(f func(i int, val T) bool) {
	for i, val := range v.View() {
		if !f(i, val) {
			return
		}
	}
}
