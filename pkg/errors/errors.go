package errors

import (
	"fmt"
)

// TransportError represents a failure talking to the compositor socket,
// either on the outputs query or on an output command.
type TransportError struct {
	Op  string
	Err error
}

// NewTransportError constructs a TransportError for the named operation.
func NewTransportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EmptySnapshotError reports that the compositor returned zero outputs.
// There is nothing to select in that case.
type EmptySnapshotError struct{}

// NewEmptySnapshotError constructs an EmptySnapshotError.
func NewEmptySnapshotError() error {
	return &EmptySnapshotError{}
}

func (e *EmptySnapshotError) Error() string {
	return "compositor reported no outputs"
}

// StateError captures a state-file failure: directory creation or write.
type StateError struct {
	Path string
	Op   string
	Err  error
}

// NewStateError constructs a StateError for the given path and operation.
func NewStateError(path, op string, err error) error {
	return &StateError{Path: path, Op: op, Err: err}
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("state error %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
