package bridge

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them under errors.Is.
var (
	// ErrType reports a host value of the wrong shape or kind for the
	// requested DataType, or a container whose DataType does not match.
	ErrType = errors.New("type error")

	// ErrSize reports a sequence shorter than its minimum lane count or a
	// call with the wrong number of arguments.
	ErrSize = errors.New("size error")

	// ErrIndex reports an out-of-range container index.
	ErrIndex = errors.New("index error")

	// ErrMemory reports allocator exhaustion.
	ErrMemory = errors.New("memory error")

	// ErrInternal reports a contract violation, such as an unhandled
	// DataType reaching a dispatch path or a kernel returning the wrong
	// result types.
	ErrInternal = errors.New("internal error")

	// ErrNotFound is returned by Module.Call for an unknown intrinsic name.
	ErrNotFound = errors.New("intrinsic not found")
)

// ArityError is returned when a call payload does not match the number of
// slots in its signature.
type ArityError struct {
	Expected int
	Given    int
}

func (e *ArityError) Error() string {
	noun := "arguments"
	if e.Expected == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("expected %d %s (%d given)", e.Expected, noun, e.Given)
}

// Is reports ErrSize as the kind of an arity mismatch.
func (e *ArityError) Is(target error) bool { return target == ErrSize }

// LengthError is returned when a sequence holds fewer elements than one
// register of its lane type.
type LengthError struct {
	Min   int
	Given int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("minimum acceptable size of the sequence is %d, given(%d)", e.Min, e.Given)
}

// Is reports ErrSize as the kind of a short sequence.
func (e *LengthError) Is(target error) bool { return target == ErrSize }

// typeErrorf wraps ErrType with a formatted message.
func typeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

func internalErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
