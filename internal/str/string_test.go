package str_test

import (
	"bytes"
	"testing"

	gstr "github.com/blong14/gmem/internal/str"
)

func TestNew(t *testing.T) {
	t.Parallel()
	// given
	s := gstr.New("Hello, world!")

	// then
	if s.Len() != 13 {
		t.Errorf("want 13 got %d", s.Len())
	}
	if s.String() != "Hello, world!" {
		t.Errorf("want %q got %q", "Hello, world!", s.String())
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	// given
	src := []byte("Hello, world!")

	// when
	s := gstr.Sub(src, 7, 13)

	// then
	if s.String() != "world!" {
		t.Errorf("want %q got %q", "world!", s.String())
	}

	// owned: mutating the source does not affect the string
	src[7] = 'W'
	if s.String() != "world!" {
		t.Errorf("string should own its bytes, got %q", s.String())
	}
}

func TestDup(t *testing.T) {
	t.Parallel()
	// given
	a := gstr.New("key")

	// when
	b := gstr.Dup(a)
	b.AppendString("_1")

	// then
	if a.String() != "key" {
		t.Errorf("duplicate should not alias: %q", a.String())
	}
	if b.String() != "key_1" {
		t.Errorf("want %q got %q", "key_1", b.String())
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()
	// given
	a := gstr.New("Hello, ")
	b := gstr.New("world!")

	// when
	c := gstr.Concat(a, b)

	// then: pure, inputs unchanged, exact-size result
	if c.String() != "Hello, world!" {
		t.Errorf("want %q got %q", "Hello, world!", c.String())
	}
	if c.Len() != a.Len()+b.Len() {
		t.Errorf("want %d got %d", a.Len()+b.Len(), c.Len())
	}
	if a.String() != "Hello, " || b.String() != "world!" {
		t.Error("concat must not mutate its inputs")
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()
	// given
	s := gstr.New("")

	// when
	const n = 1000
	for i := 0; i < n; i++ {
		s.AppendByte(byte('a' + i%26))
	}

	// then
	if s.Len() != n {
		t.Errorf("want %d got %d", n, s.Len())
	}
	for i, c := range s.Bytes() {
		if c != byte('a'+i%26) {
			t.Fatalf("byte %d: want %c got %c", i, byte('a'+i%26), c)
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "value", "value", true},
		{"different bytes", "value", "vslue", false},
		{"different lengths", "value", "val", false},
		{"both empty", "", "", true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := gstr.Equal(gstr.New(tt.a), gstr.New(tt.b)); got != tt.want {
				t.Errorf("want %v got %v", tt.want, got)
			}
		})
	}
}

func TestFree(t *testing.T) {
	t.Parallel()
	// given
	s := gstr.New("value")

	// when
	s.Free()

	// then
	if s.Len() != 0 {
		t.Errorf("want 0 after free got %d", s.Len())
	}
	if len(s.Bytes()) != 0 {
		t.Error("freed string should expose no bytes")
	}
}

func TestBytesBorrowed(t *testing.T) {
	t.Parallel()
	// given
	s := gstr.New("abc")

	// then
	if !bytes.Equal(s.Bytes(), []byte("abc")) {
		t.Errorf("want abc got %q", s.Bytes())
	}
}
