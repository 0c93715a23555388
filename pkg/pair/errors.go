package pair

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every error caused by an absent
	// component or an absent function argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrImmutable is returned by SetValue.
	ErrImmutable = fmt.Errorf("pair is immutable: %w", errors.ErrUnsupported)
)

// ArgumentError reports which argument was absent.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return e.Name + " should not be nil"
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(name string) error {
	return &ArgumentError{Name: name}
}
