package jamo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedJamo is returned when a letter is narrowed to a role it
	// cannot play, e.g. ㅏ as an Initial.
	ErrUnexpectedJamo = errors.New("unexpected jamo")

	// ErrIncompatibleCombine is returned when two letters of the same role
	// have no combined form.
	ErrIncompatibleCombine = errors.New("incompatible combine")
)

// CombineError names both operands of a failed Combine or Append.
type CombineError struct {
	First  Jamo
	Second Jamo
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("cannot combine %s <%#v> with %s <%#v>", e.First, e.First, e.Second, e.Second)
}

func (e *CombineError) Unwrap() error {
	return ErrIncompatibleCombine
}

func unexpected(j Jamo, role string) error {
	return fmt.Errorf("%w: %s <%#v> is not a %s", ErrUnexpectedJamo, j, j, role)
}
