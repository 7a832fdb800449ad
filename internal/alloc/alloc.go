// Package alloc is the checked allocation layer the containers are built
// on. Every allocation is zero-initialized and size-checked; a request
// that cannot be satisfied is reported and aborts via gerrors.Fatalf.
package alloc

import (
	gerrors "github.com/blong14/gmem/internal/errors"
)

const MaxArrayLen = 1<<50 - 1

// Size returns count*size after validating that the product is
// representable and non-negative. Impossible requests are fatal.
func Size(count, size int) int {
	if count < 0 || size < 0 {
		gerrors.Fatalf("allocation of %d elements of size %d failed", count, size)
	}
	if size != 0 && count > MaxArrayLen/size {
		gerrors.Fatalf("allocation of %d elements of size %d failed", count, size)
	}
	return count * size
}

// Make returns a zero-initialized slice of count elements.
func Make[T any](count int) []T {
	if count < 0 {
		gerrors.Fatalf("allocation of %d elements failed", count)
	}
	return make([]T, count)
}

// GrowSlice reallocates old to count elements, copying the existing
// contents. The new tail is zero-initialized. Must succeed or abort;
// the result is never nil for count > 0.
func GrowSlice[T any](old []T, count int) []T {
	s := Make[T](count)
	copy(s, old)
	return s
}

// Grow is the byte-block form of GrowSlice.
func Grow(old []byte, count, size int) []byte {
	b := Bytes(count, size)
	copy(b, old)
	return b
}
