package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrValidation          = errors.New("validation failed")
	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrRegisterFieldsEmpty = fmt.Errorf("%w: name, email and password are required", ErrValidation)
	ErrLoginFieldsEmpty    = fmt.Errorf("%w: email and password are required", ErrValidation)
)

// StoreError wraps a persistence failure with the operation that hit it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStoreError leaves domain sentinels untouched and wraps everything else.
func WrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUserAlreadyExists) {
		return err
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
