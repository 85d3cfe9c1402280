package checked

import (
	"fmt"

	"github.com/podsmith/pod-common/errs"
)

// Predicate reports whether a value is already in a rule's canonical shape.
// Predicates must be total: they return false for unexpected inputs instead
// of panicking.
type Predicate func(value any) bool

// Coercion converts a recognized raw shape into a rule's canonical shape.
// Transform is called only when Matches reports true for the value.
type Coercion struct {
	Matches   func(value any) bool
	Transform func(value any) any
}

// Type is a named, immutable validation rule. Rules are built once at
// registry construction and shared; Named and WithCoercions return new
// values instead of mutating the receiver, so a rule can be handed to
// concurrent callers without locking.
type Type struct {
	name      string
	predicate Predicate
	message   string
	coercions []Coercion
}

// NewType creates a rule from a predicate and the message used when a value
// is rejected.
func NewType(name string, predicate Predicate, message string) *Type {
	return &Type{
		name:      name,
		predicate: predicate,
		message:   message,
	}
}

// Name returns the rule's registered name.
func (t *Type) Name() string {
	return t.name
}

// Message returns the human-readable reason reported on rejection.
func (t *Type) Message() string {
	return t.message
}

// Named returns a copy of the rule registered under a different name. The
// predicate, message, and coercions are shared with the receiver.
func (t *Type) Named(name string) *Type {
	clone := *t
	clone.name = name

	return &clone
}

// WithCoercions returns a copy of the rule with the extra coercions
// appended after the receiver's. The receiver's coercion list is not
// modified.
func (t *Type) WithCoercions(extra ...Coercion) *Type {
	clone := *t
	clone.coercions = make([]Coercion, 0, len(t.coercions)+len(extra))
	clone.coercions = append(clone.coercions, t.coercions...)
	clone.coercions = append(clone.coercions, extra...)

	return &clone
}

// Check validates a value against the rule and returns the canonical value.
//
// If the predicate already holds, the value is returned unchanged. Otherwise
// the coercions are tried in declared order; the first whose matcher accepts
// the value transforms it, and the predicate is re-checked on the result.
// Any other outcome is a rejection carrying the rule's message and the
// offending value.
func (t *Type) Check(value any) (any, error) {
	if t.predicate(value) {
		observe(t.name, outcomeAccepted)

		return value, nil
	}

	for _, coercion := range t.coercions {
		if !coercion.Matches(value) {
			continue
		}

		coerced := coercion.Transform(value)
		if t.predicate(coerced) {
			observe(t.name, outcomeCoerced)

			return coerced, nil
		}

		// Only the first matching coercion is attempted.
		break
	}

	observe(t.name, outcomeRejected)

	return nil, &Failure{TypeName: t.name, Value: value, Reason: t.message}
}

// Failure describes a rejected value. It matches errs.ErrValidation under
// errors.Is, so callers can detect validation failures without naming this
// type.
type Failure struct {
	TypeName string
	Value    any
	Reason   string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s (given value is %v)", f.TypeName, f.Reason, f.Value)
}

// Unwrap marks the failure as a validation error.
func (f *Failure) Unwrap() error {
	return errs.ErrValidation
}
