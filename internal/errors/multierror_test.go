package gerrors_test

import (
	"errors"
	"strings"
	"testing"

	gerrors "github.com/blong14/gmem/internal/errors"
)

type flushError struct {
	target string
}

func (e *flushError) Error() string {
	return "flush failed: " + e.target
}

func TestAppend(t *testing.T) {
	t.Parallel()

	t.Run("nil errors are skipped", func(t *testing.T) {
		t.Parallel()
		// given
		errs := gerrors.Append(nil, nil)

		// then
		if errs.ErrorOrNil() != nil {
			t.Errorf("want nil got %s", errs)
		}
	})

	t.Run("accumulators flatten", func(t *testing.T) {
		t.Parallel()
		// given
		flush := errors.New("flush failed")
		shutdown := errors.New("shutdown failed")

		// when
		errs := gerrors.Append(gerrors.Append(nil, flush), shutdown)

		// then
		if len(errs.Errors) != 2 {
			t.Fatalf("want 2 errors got %d", len(errs.Errors))
		}
		if errs.Errors[0] != flush || errs.Errors[1] != shutdown {
			t.Error("accumulation order lost")
		}
		if !strings.Contains(errs.Error(), "2 errors occurred") {
			t.Errorf("unexpected message: %q", errs.Error())
		}
	})

	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()
		var errs *gerrors.Error
		if errs.ErrorOrNil() != nil {
			t.Error("want nil for a nil accumulator")
		}
	})
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	// given
	flush := &flushError{target: "spans"}
	shutdown := errors.New("shutdown failed")
	errs := gerrors.Append(errors.New("close failed"), flush, shutdown)

	// then: every accumulated error stays reachable
	if !errors.Is(errs, flush) {
		t.Error("first appended error not found")
	}
	if !errors.Is(errs, shutdown) {
		t.Error("last appended error not found")
	}
	if errors.Is(errs, errors.New("other")) {
		t.Error("unrelated error should not match")
	}

	var fe *flushError
	if !errors.As(errs, &fe) || fe.target != "spans" {
		t.Errorf("want flush error got %v", fe)
	}
}

func TestNewGError(t *testing.T) {
	t.Parallel()
	if gerrors.NewGError(nil) != nil {
		t.Error("want nil for nil input")
	}
	cause := errors.New("limit exceeded")
	err := gerrors.NewGError(cause)
	if !errors.Is(err, cause) {
		t.Error("cause should stay reachable")
	}
}
