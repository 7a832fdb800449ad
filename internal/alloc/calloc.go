//go:build jemalloc
// +build jemalloc

package alloc

/*
#cgo LDFLAGS: /usr/local/lib/libjemalloc.a -L/usr/local/lib -Wl,-rpath,/usr/local/lib -ljemalloc -lm -lstdc++ -pthread -ldl
#include <stdlib.h>
#include <jemalloc/jemalloc.h>
*/
import "C"
import (
	"unsafe"

	gerrors "github.com/blong14/gmem/internal/errors"
)

// Bytes returns a zero-initialized block of count*size bytes backed by
// je_calloc. Blocks from this path must be released with Free.
func Bytes(count, size int) []byte {
	n := Size(count, size)
	if n == 0 {
		return make([]byte, 0)
	}
	ptr := C.je_calloc(C.size_t(n), 1)
	if ptr == nil {
		gerrors.Fatalf("allocation of %d elements of size %d failed -- out of memory", count, size)
	}
	uptr := unsafe.Pointer(ptr)
	// Interpret the C pointer as a pointer to a Go array, then slice.
	return (*[MaxArrayLen]byte)(uptr)[:n:n]
}

// Free releases a block obtained from Bytes. A no-op on empty blocks.
func Free(b []byte) {
	if sz := cap(b); sz != 0 {
		b = b[:cap(b)]
		ptr := unsafe.Pointer(&b[0])
		C.je_free(ptr)
	}
}
