package roster

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no identity exists for the requested identifier.
var ErrNotFound = errors.New("identity not found")

// StoreError represents a failure in the underlying store.
type StoreError struct {
	Op  string // "open", "put", "get", "list", "import"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("roster store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
