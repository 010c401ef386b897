package unit

import (
	"errors"
	"fmt"
)

// ErrInvalidTable is returned (wrapped in a TableError) when unit
// definitions violate a table invariant.
var ErrInvalidTable = errors.New("invalid unit table")

// TableError describes which unit or alias broke a table invariant.
type TableError struct {
	// Name is the code or alias at fault.
	Name   string
	Reason string
}

func (e *TableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidTable, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrInvalidTable, e.Name, e.Reason)
}

func (e *TableError) Unwrap() error { return ErrInvalidTable }
