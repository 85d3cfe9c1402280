// Package errs defines the error kinds shared across the pod-common
// validation packages.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks every rejection produced by a checked rule.
	// Callers can detect validation failures with errors.Is(err, errs.ErrValidation)
	// without depending on the concrete failure type.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownType is returned when a rule name is not registered.
	ErrUnknownType = errors.New("unknown checked type")
)

// Failures accumulates validation errors across multiple configuration
// fields so that a caller can report every bad field at once instead of
// stopping at the first one. The zero value is ready to use. It is not
// safe for concurrent use.
type Failures struct {
	errors []error
}

// Add appends an error to the accumulator. Nil errors are ignored.
func (f *Failures) Add(err error) {
	if err != nil {
		f.errors = append(f.errors, err)
	}
}

// Field appends an error attributed to a named configuration field.
// Nil errors are ignored.
func (f *Failures) Field(name string, err error) {
	if err != nil {
		f.errors = append(f.errors, fmt.Errorf("field %s: %w", name, err))
	}
}

// HasError returns true if at least one error was accumulated.
func (f *Failures) HasError() bool {
	return len(f.errors) > 0
}

// GetError returns the accumulated failures as a single error.
// Returns nil if nothing was accumulated, the error itself if there is
// exactly one, or a joined error otherwise.
func (f *Failures) GetError() error {
	switch len(f.errors) {
	case 0:
		return nil
	case 1:
		return f.errors[0]
	default:
		return errors.Join(f.errors...)
	}
}
