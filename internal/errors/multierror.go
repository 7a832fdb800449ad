package gerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Error accumulates the failures of independent shutdown steps, e.g.
// flushing and stopping a tracer provider on exit.
type Error struct {
	Errors []error
}

func (e *Error) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t* %s\n\n", e.Errors[0])
	}
	points := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n\n",
		len(e.Errors), strings.Join(points, "\n\t"))
}

// ErrorOrNil flattens an empty accumulator to nil so callers can treat
// the result as a plain error value.
func (e *Error) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As in
// accumulation order.
func (e *Error) Unwrap() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	errs := make([]error, len(e.Errors))
	copy(errs, e.Errors)
	return chain(errs)
}

// chain walks the accumulated errors one element per Unwrap step. Is and
// As must check the head themselves; Unwrap only advances past it.
type chain []error

func (e chain) Error() string {
	return e[0].Error()
}

func (e chain) Unwrap() error {
	if len(e) == 1 {
		return nil
	}
	return e[1:]
}

func (e chain) Is(target error) bool {
	return errors.Is(e[0], target)
}

func (e chain) As(target interface{}) bool {
	return errors.As(e[0], target)
}

// Append collects err and errs into one accumulator, flattening nested
// accumulators and skipping nils.
func Append(err error, errs ...error) *Error {
	out, ok := err.(*Error)
	if !ok {
		out = &Error{}
		errs = append([]error{err}, errs...)
	}
	if out == nil {
		out = &Error{}
	}
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case *Error:
			if e != nil {
				out.Errors = append(out.Errors, e.Errors...)
			}
		default:
			out.Errors = append(out.Errors, e)
		}
	}
	return out
}
