package builder_test

import (
	"strings"
	"testing"

	gsb "github.com/blong14/gmem/internal/builder"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		// given
		b := gsb.New()

		// when
		b.AppendString("Hello")
		b.AppendString(", ")
		b.AppendString("world!")

		// then
		if b.Len() != 13 {
			t.Errorf("want 13 got %d", b.Len())
		}
		if got := b.String(); got != "Hello, world!" {
			t.Errorf("want %q got %q", "Hello, world!", got)
		}
	})

	t.Run("length is the sum of fragments", func(t *testing.T) {
		t.Parallel()
		// given
		fragments := []string{"a", "", "few", "more", "", "fragments"}
		b := gsb.New()

		// when
		var want int
		for _, f := range fragments {
			b.AppendString(f)
			want += len(f)
		}
		out := b.Bytes()

		// then
		if len(out) != want || b.Len() != want {
			t.Errorf("want %d got %d/%d", want, len(out), b.Len())
		}
		if string(out) != strings.Join(fragments, "") {
			t.Errorf("want %q got %q", strings.Join(fragments, ""), out)
		}
	})

	t.Run("empty builder", func(t *testing.T) {
		t.Parallel()
		b := gsb.New()
		if b.Len() != 0 {
			t.Errorf("want 0 got %d", b.Len())
		}
		if got := b.String(); got != "" {
			t.Errorf("want empty string got %q", got)
		}
	})

	t.Run("materialize is repeatable", func(t *testing.T) {
		t.Parallel()
		// given
		b := gsb.New()
		b.Append([]byte("key_"))
		b.AppendString("1")

		// then
		first := b.Bytes()
		second := b.Bytes()
		if string(first) != "key_1" || string(second) != "key_1" {
			t.Errorf("want key_1 got %q/%q", first, second)
		}
		if len(first) > 0 && len(second) > 0 && &first[0] == &second[0] {
			t.Error("each materialization should own its buffer")
		}
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		// given
		b := gsb.New()
		b.AppendString("stale")

		// when
		b.Reset()
		b.AppendString("fresh")

		// then
		if got := b.String(); got != "fresh" {
			t.Errorf("want fresh got %q", got)
		}
	})
}
