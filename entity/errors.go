package entity

import (
	"errors"
	"fmt"
)

// Error kinds shared by every store layer. Handlers map them onto HTTP
// statuses: ErrInvalidInput 400, ErrNotFound 404, StoreError 500.
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// StoreError wraps a driver or connectivity fault. The underlying message is
// surfaced to the caller on purpose; this is an operability trade-off, not a
// hardened boundary.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the failed operation name.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
