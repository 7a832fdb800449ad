package arena

import (
	"unsafe"
)

// Typed helpers over the untyped byte API. Element size and alignment are
// fixed at instantiation, one algorithm serving many element types.
// Element types must not contain pointers; the backing block is untyped
// memory the collector does not scan.

// MakeNew returns a zeroed *T stored inside the arena.
func MakeNew[T any](a *Arena) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)), 1)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice returns a zeroed slice of count elements stored inside the
// arena. Returns nil when count is zero.
func MakeSlice[T any](a *Arena, count int) []T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)), count)
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), count)
}

// GrowSlice doubles the element count of a slice previously returned by
// MakeSlice (or allocates DefaultArraySize elements for an empty one) and
// returns the grown slice. The old region is not reclaimed.
func GrowSlice[T any](a *Arena, s []T) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	var ptr []byte
	if len(s) > 0 {
		ptr = unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
	}
	b, count := a.GrowArray(ptr, size, align, len(s))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), count)
}
