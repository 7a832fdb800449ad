// Package hashmap implements an open-addressing hash map from byte
// string keys to values of any single type, using linear probing and a
// fixed maximum load factor. Slots move from empty to occupied only;
// deletion is unsupported (adding it would require tombstones to keep
// probe sequences correct). Not goroutine-safe.
package hashmap

import (
	"bytes"

	galloc "github.com/blong14/gmem/internal/alloc"
)

const (
	// MaxLoad is the live-entry to slot ratio that triggers growth.
	MaxLoad = 0.75
	// BaseCapacity is the slot count of the first allocation.
	BaseCapacity = 8

	// FNV-1a, 32-bit
	offsetBasis uint32 = 2166136261
	prime       uint32 = 16777619
)

type entry[V any] struct {
	key   []byte // nil marks an empty slot
	hash  uint32
	value V
}

// Map starts at capacity zero with no allocation; the first Set
// allocates BaseCapacity slots.
type Map[V any] struct {
	count   int
	entries []entry[V]
}

func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Count returns the number of live entries.
func (m *Map[V]) Count() int { return m.count }

// Capacity returns the slot count.
func (m *Map[V]) Capacity() int { return len(m.entries) }

// Hash is the fixed FNV-1a string hash used for probe starts. Not
// collision resistant against adversarial keys; that is out of scope.
func Hash(key []byte) uint32 {
	hash := offsetBasis
	for _, c := range key {
		hash ^= uint32(c)
		hash *= prime
	}
	return hash
}

// findEntry returns the slot for key: either its occupied slot or the
// empty slot that terminates its probe sequence. The slot array must
// have at least one empty slot or the probe loop cannot terminate;
// MaxLoad guarantees this.
func findEntry[V any](entries []entry[V], hash uint32, key []byte) *entry[V] {
	index := int(hash % uint32(len(entries)))
	for {
		e := &entries[index]
		if e.key == nil {
			return e
		}
		if e.hash == hash && bytes.Equal(e.key, key) {
			return e
		}
		index = (index + 1) % len(entries)
	}
}

// adjustCapacity allocates a fresh slot array and re-inserts every
// occupied entry by recomputing its probe sequence against the new
// capacity. Old probe chains are never copied verbatim.
func (m *Map[V]) adjustCapacity(capacity int) {
	entries := galloc.Make[entry[V]](capacity)
	for i := range m.entries {
		e := &m.entries[i]
		if e.key == nil {
			continue
		}
		dest := findEntry(entries, e.hash, e.key)
		*dest = *e
	}
	m.entries = entries
}

// Set inserts or overwrites the value for key and reports whether the
// key was newly inserted. The key bytes are stored as given and must
// not be mutated by the caller afterward.
func (m *Map[V]) Set(key []byte, value V) bool {
	if key == nil {
		panic("hashmap: nil key")
	}
	if float64(m.count+1) > float64(len(m.entries))*MaxLoad {
		capacity := len(m.entries) * 2
		if capacity == 0 {
			capacity = BaseCapacity
		}
		m.adjustCapacity(capacity)
	}
	hash := Hash(key)
	e := findEntry(m.entries, hash, key)
	isNewKey := e.key == nil
	if isNewKey {
		m.count++
	}
	e.key = key
	e.hash = hash
	e.value = value
	return isNewKey
}

// Get returns the value for key. Never allocates or mutates the map.
func (m *Map[V]) Get(key []byte) (V, bool) {
	var zero V
	if m.count == 0 {
		return zero, false
	}
	e := findEntry(m.entries, Hash(key), key)
	if e.key == nil {
		return zero, false
	}
	return e.value, true
}

// Range iterates the occupied slots in storage order, applying f to
// each entry. f returns true to continue, false to stop ranging.
func (m *Map[V]) Range(f func(key []byte, value V) bool) {
	for i := range m.entries {
		e := &m.entries[i]
		if e.key == nil {
			continue
		}
		if !f(e.key, e.value) {
			return
		}
	}
}

// Free releases the slot array and returns the map to its initial
// zero-capacity state.
func (m *Map[V]) Free() {
	m.count = 0
	m.entries = nil
}
