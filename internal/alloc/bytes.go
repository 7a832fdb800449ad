//go:build !jemalloc
// +build !jemalloc

package alloc

// Bytes returns a zero-initialized block of count*size bytes.
func Bytes(count, size int) []byte {
	return make([]byte, Size(count, size))
}

// Free releases a block obtained from Bytes. A no-op on nil; under the
// default build the collector reclaims the block once the caller drops
// its handle. Callers null out their own handles afterward.
func Free(b []byte) {}
