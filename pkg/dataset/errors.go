package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Match them with errors.Is.
var (
	ErrUnknownColumn     = errors.New("unknown column")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrComputation       = errors.New("computation error")
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrShape             = errors.New("shape error")
	ErrDuplicateColumn   = errors.New("duplicate column")
)

// ColumnError ties an error kind to the operation and column that caused it.
type ColumnError struct {
	Op     string
	Column string
	Kind   error
	Err    error
}

func (e *ColumnError) Error() string {
	msg := fmt.Sprintf("%s: column %q: %v", e.Op, e.Column, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ColumnError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewColumnError builds a ColumnError with a formatted cause.
func NewColumnError(op, column string, kind error, format string, args ...any) error {
	var cause error
	if format != "" {
		cause = errors.Errorf(format, args...)
	}
	return &ColumnError{Op: op, Column: column, Kind: kind, Err: cause}
}
