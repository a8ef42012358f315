package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. Each typed error below reports
// itself as matching one of these, so callers that do not care about the
// details can still classify a failure.
var (
	// ErrInvalidInput matches any *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported matches any *UnsupportedError.
	ErrUnsupported = errors.New("unsupported operation")
)

// InvalidInputError is returned by parse and factory functions when the
// input cannot be turned into a valid value. It always carries the offending
// input and the constraint that was violated.
type InvalidInputError struct {
	// Value is the raw input that failed validation.
	Value string

	// Constraint describes the requirement the value did not meet.
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value [%s]: %s", e.Value, e.Constraint)
}

// Is reports a match for ErrInvalidInput so that
// errors.Is(err, ErrInvalidInput) works on wrapped chains.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError is returned by lookup operations when no entry matches the
// requested key (e.g., an area code mapped to no state, an abbreviation
// naming no enumeration constant).
type NotFoundError struct {
	// Kind names the sort of thing looked for, e.g. "state".
	Kind string

	// Value is the key that matched nothing.
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for [%s]", e.Kind, e.Value)
}

// Is reports a match for ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedError is returned when an optional capability is invoked on a
// variant that does not provide it, such as changing the country of a value
// that is fixed to a single country.
type UnsupportedError struct {
	// Op is the operation that was attempted.
	Op string

	// On names the type or variant that does not support the operation.
	On string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported on %s", e.Op, e.On)
}

// Is reports a match for ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
