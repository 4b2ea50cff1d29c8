// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ValidationError is a client mistake the caller can fix; maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// StorageError wraps any failure opening, writing or reading the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// SerializationError covers bad request bodies and quiz answer encoding.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return e.Err.Error()
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func NewSerialization(err error) error {
	if err == nil {
		return nil
	}
	return &SerializationError{Err: err}
}

func NewSerializationf(format string, args ...any) error {
	return &SerializationError{Err: fmt.Errorf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}

func IsSerialization(err error) bool {
	var s *SerializationError
	return errors.As(err, &s)
}
