// Package str provides an owning byte string with an O(1) length and
// non-mutating concatenation, plus non-owning slice utilities over
// borrowed []byte views. Takes heavy inspiration from SDS
// (https://github.com/antirez/sds).
package str

import (
	"bytes"

	gbuf "github.com/blong14/gmem/internal/buffer"
)

// String owns its bytes. Length is stored, never recomputed by scanning;
// the Go slice carries it explicitly, so no terminator byte is kept.
type String struct {
	b gbuf.Buffer[byte]
}

// New creates a string from s, copying its bytes.
func New(s string) *String {
	out := &String{b: *gbuf.WithLength[byte](len(s))}
	copy(out.b.View(), s)
	return out
}

// FromBytes creates a string from a borrowed byte view, copying it.
func FromBytes(p []byte) *String {
	out := &String{b: *gbuf.WithLength[byte](len(p))}
	copy(out.b.View(), p)
	return out
}

// Sub creates a string from the range [i, j) of a borrowed byte view.
func Sub(p []byte, i, j int) *String {
	if i < 0 || j < i || j > len(p) {
		panic("str: range out of bounds")
	}
	return FromBytes(p[i:j])
}

// Dup returns an owned copy of s.
func Dup(s *String) *String {
	return FromBytes(s.Bytes())
}

// Len returns the stored length in O(1).
func (s *String) Len() int { return s.b.Len() }

// Bytes returns the payload as a borrowed contiguous view. Invalidated
// by any growth-capable operation on s.
func (s *String) Bytes() []byte { return s.b.View() }

func (s *String) String() string { return string(s.b.View()) }

// Append appends a borrowed byte view in place, growing on demand.
func (s *String) Append(p []byte) { s.b.Append(p) }

// AppendString appends the bytes of str in place.
func (s *String) AppendString(str string) { s.b.Append([]byte(str)) }

// AppendByte appends a single byte in place.
func (s *String) AppendByte(c byte) { s.b.Push(c) }

// Free releases the storage and zeroes the handle's length.
func (s *String) Free() { s.b.Free() }

// Concat allocates a new string sized to len(a)+len(b) and copies both
// inputs, leaving a and b unmodified.
func Concat(a, b *String) *String {
	out := &String{b: *gbuf.WithLength[byte](a.Len() + b.Len())}
	data := out.b.View()
	n := copy(data, a.Bytes())
	copy(data[n:], b.Bytes())
	return out
}

// Equal reports whether a and b hold the same bytes. Lengths are
// compared first; no scanning happens on a length mismatch.
func Equal(a, b *String) bool {
	if a.Len() != b.Len() {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
