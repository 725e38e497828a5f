package rewrite

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by constructors when an option carries an
	// unusable value (empty pattern, non-positive name length).
	ErrInvalidConfig = errors.New("rewrite: invalid configuration")

	// ErrUnresolvedVariable aborts a strict-mode stream when a placeholder
	// name has no value.
	ErrUnresolvedVariable = errors.New("rewrite: unresolved variable")

	// ErrNameTooLong aborts a strict-mode stream when the bytes between the
	// start and end pattern exceed the configured maximum.
	ErrNameTooLong = errors.New("rewrite: variable name too long")

	// ErrUnsupportedChunk is returned by Transform for input types it cannot
	// treat as a byte stream.
	ErrUnsupportedChunk = errors.New("rewrite: unsupported chunk type")

	errFinished = errors.New("rewrite: engine already finished")
)

func unresolvedErr(name string) error {
	return fmt.Errorf("%w: %q", ErrUnresolvedVariable, name)
}

func nameTooLongErr(limit int) error {
	return fmt.Errorf("%w: exceeds %d bytes", ErrNameTooLong, limit)
}
