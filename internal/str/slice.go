package str

import (
	"bytes"
	"strings"
	"unicode"
)

// Non-owning helpers over borrowed []byte views. Nothing here allocates
// or takes ownership; functions taking a *[]byte advance their input.

// Idx returns the byte at index i with python-style wraparound: negative
// indices count backward from the end.
func Idx(s []byte, i int) byte {
	return s[sliceIndex(i, len(s))]
}

// Reslice returns the view [i, j), both indices accepting wraparound.
func Reslice(s []byte, i, j int) []byte {
	i = sliceIndex(i, len(s))
	j = sliceIndex(j, len(s))
	if i > j {
		panic("str: slice bounds out of order")
	}
	return s[i:j]
}

// Prefix returns the view [0, i).
func Prefix(s []byte, i int) []byte {
	return s[:sliceIndex(i, len(s))]
}

// Suffix returns the view [i, len(s)).
func Suffix(s []byte, i int) []byte {
	return s[sliceIndex(i, len(s)):]
}

func sliceIndex(i, length int) int {
	j := i
	if i < 0 {
		j = length + i
	}
	if j < 0 || j > length {
		panic("str: index out of range")
	}
	return j
}

// LStrip returns s with leading whitespace removed.
func LStrip(s []byte) []byte {
	return bytes.TrimLeftFunc(s, unicode.IsSpace)
}

// RStrip returns s with trailing whitespace removed.
func RStrip(s []byte) []byte {
	return bytes.TrimRightFunc(s, unicode.IsSpace)
}

// Strip returns s with leading and trailing whitespace removed.
func Strip(s []byte) []byte {
	return bytes.TrimFunc(s, unicode.IsSpace)
}

// Tok scans *s until the first byte contained in delimiters, returns the
// bytes read, and advances *s past any run of delimiter bytes.
func Tok(s *[]byte, delimiters string) []byte {
	view := *s
	cut := bytes.IndexAny(view, delimiters)
	if cut < 0 {
		cut = len(view)
	}
	token := view[:cut]
	rest := view[cut:]
	skip := 0
	for skip < len(rest) && strings.IndexByte(delimiters, rest[skip]) >= 0 {
		skip++
	}
	*s = rest[skip:]
	return token
}

// Line reads one line from *s, stripping newline bytes.
func Line(s *[]byte) []byte {
	return Tok(s, "\r\n")
}

// Find returns the index of the first occurrence of needle in haystack,
// or len(haystack) when absent. An empty needle matches at index 0.
func Find(haystack, needle []byte) int {
	i := bytes.Index(haystack, needle)
	if i < 0 {
		return len(haystack)
	}
	return i
}

// Eq reports whether two borrowed views hold the same bytes.
func Eq(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix []byte) bool {
	return bytes.HasPrefix(s, prefix)
}
