package gerrors

import (
	"fmt"
	"log"
)

// FatalError marks an unrecoverable environment failure, e.g. allocation
// failure or arena exhaustion. Contract violations panic with plain strings
// instead; the two categories stay distinguishable by panic value.
type FatalError struct {
	msg string
}

func (e *FatalError) Error() string {
	return e.msg
}

// Fatalf reports an unrecoverable condition on the error stream and panics
// with a *FatalError. Callers never catch or retry these; tests recover.
func Fatalf(format string, v ...any) {
	err := &FatalError{msg: fmt.Sprintf(format, v...)}
	log.Printf("fatal: %s", err.msg)
	panic(err)
}

func NewGError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Errors: []error{err}}
}
