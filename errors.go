package optics

import (
	"errors"
	"fmt"
)

// ErrNoMatch is matched by every failure of the built-in fallible primitives.
var ErrNoMatch = errors.New("optics: focus not present")

// MismatchError reports that a source does not have the shape an optic
// focuses on.
type MismatchError struct {
	Optic string
	Err   error
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("optics: %s: %v", e.Optic, e.Err)
	}
	return fmt.Sprintf("optics: %s: focus not present", e.Optic)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *MismatchError) Unwrap() error {
	return e.Err
}

// Is makes every MismatchError match ErrNoMatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrNoMatch
}

func mismatch(optic string, cause error) error {
	return &MismatchError{Optic: optic, Err: cause}
}

// ErrorMapper converts the error of one composed stage into the error the
// composite reports. Mappers must be pure and total; they are never called
// with a nil error.
type ErrorMapper func(error) error

// PassThrough reports the stage error unchanged.
func PassThrough(err error) error {
	return err
}

// Wrap returns a mapper that wraps stage errors under sentinel. Both the
// sentinel and the original error stay reachable through errors.Is.
func Wrap(sentinel error) ErrorMapper {
	return func(err error) error {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
}

// Replace returns a mapper that discards the stage error and reports target.
func Replace(target error) ErrorMapper {
	return func(error) error {
		return target
	}
}

// Prefix returns a mapper that annotates stage errors with stage.
func Prefix(stage string) ErrorMapper {
	return func(err error) error {
		return fmt.Errorf("%s: %w", stage, err)
	}
}
