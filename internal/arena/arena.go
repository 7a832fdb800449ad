// Package arena implements a bump allocator over a single fixed backing
// block. Sub-allocations are aligned, never individually freed, and all
// become invalid together on Release. Not goroutine-safe; an arena has
// exactly one owner at a time.
package arena

import (
	"unsafe"

	galloc "github.com/blong14/gmem/internal/alloc"
	gerrors "github.com/blong14/gmem/internal/errors"
	glog "github.com/blong14/gmem/internal/logging"
)

// DefaultArraySize is the element count a nil or empty array grows to.
const DefaultArraySize = 8

type Arena struct {
	begin    []byte // backing block, allocated lazily on first use
	cursor   int
	capacity int
	last     int // offset of the most recent allocation, -1 when none
	lastEnd  int
}

// New records the requested capacity. The backing block is not allocated
// until the first Alloc, so unused arenas cost nothing.
func New(capacity int) *Arena {
	if capacity < 0 {
		panic("arena: negative capacity")
	}
	return &Arena{capacity: capacity, last: -1}
}

func checkAlign(align int) {
	if align <= 0 || align&(align-1) != 0 {
		panic("arena: alignment must be a power of two")
	}
}

// padding returns the bytes needed to align the cursor's real address.
// The backing block must already exist and be non-empty.
func (a *Arena) padding(align int) int {
	addr := uintptr(unsafe.Pointer(&a.begin[0])) + uintptr(a.cursor)
	return int(-addr & uintptr(align-1))
}

// Alloc returns a zeroed region of count elements of size bytes each,
// aligned to align. Exhausting the backing block is fatal.
func (a *Arena) Alloc(size, align, count int) []byte {
	checkAlign(align)
	need := galloc.Size(count, size)
	if need == 0 {
		return nil
	}
	if need > a.capacity {
		gerrors.Fatalf("arena allocation of size %d failed -- out of memory", need)
	}
	if a.begin == nil {
		glog.Track("arena: allocating %d byte backing block", a.capacity)
		a.begin = galloc.Bytes(a.capacity, 1)
	}
	pad := a.padding(align)
	if need+pad > a.capacity-a.cursor {
		gerrors.Fatalf("arena allocation of size %d failed -- out of memory", need)
	}
	p := a.cursor + pad
	a.cursor = p + need
	a.last = p
	a.lastEnd = a.cursor
	return a.begin[p:a.cursor:a.cursor]
}

// Realloc grows an array previously allocated from this arena. Shrinking
// is a no-op and returns ptr unchanged; capacity is never reclaimed. When
// ptr is the most recent allocation and room remains the region extends
// in place, otherwise a fresh region is allocated and the old contents
// copied. The old region is reclaimed only by Release.
func (a *Arena) Realloc(ptr []byte, size, align, count, newCount int) []byte {
	if newCount <= count {
		return ptr
	}
	need := galloc.Size(newCount, size)
	if a.isLast(ptr) && need <= a.capacity-a.last {
		a.cursor = a.last + need
		a.lastEnd = a.cursor
		return a.begin[a.last:a.cursor:a.cursor]
	}
	newPtr := a.Alloc(size, align, newCount)
	if len(ptr) > 0 {
		copy(newPtr, ptr[:count*size])
	}
	return newPtr
}

// GrowArray doubles count, or sets it to DefaultArraySize when ptr is nil
// or count is zero, then delegates to Realloc. Returns the new region and
// the new count.
func (a *Arena) GrowArray(ptr []byte, size, align, count int) ([]byte, int) {
	newCount := count * 2
	if ptr == nil || count == 0 {
		newCount = DefaultArraySize
	}
	return a.Realloc(ptr, size, align, count, newCount), newCount
}

// Release frees the backing block if one was allocated and resets the
// arena to its pre-use state. Every pointer ever returned by this arena
// becomes invalid. Idempotent.
func (a *Arena) Release() {
	if a.begin != nil {
		galloc.Free(a.begin)
	}
	a.begin = nil
	a.cursor = 0
	a.capacity = 0
	a.last = -1
	a.lastEnd = 0
}

func (a *Arena) isLast(ptr []byte) bool {
	if len(ptr) == 0 || a.last < 0 || len(a.begin) == 0 {
		return false
	}
	return &ptr[0] == &a.begin[a.last]
}
