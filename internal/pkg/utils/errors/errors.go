// Package errors extends the standard errors package with wrapped, multi and nested errors
// and with a formatter producing human-readable bullet lists.
package errors

import (
	"errors"
	"fmt"
)

type wrappedError struct {
	msg string
	err error
}

func New(message string) error {
	return errors.New(message) // nolint: forbidigo
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...) // nolint: forbidigo
}

// Wrap returns a new error with the message, the original error is accessible via Unwrap.
func Wrap(err error, message string) error {
	return &wrappedError{msg: message, err: err}
}

func Wrapf(err error, format string, a ...any) error {
	return &wrappedError{msg: fmt.Sprintf(format, a...), err: err}
}

func Is(err, target error) bool {
	return errors.Is(err, target) // nolint: forbidigo
}

func As(err error, target any) bool {
	return errors.As(err, target) // nolint: forbidigo
}

func Unwrap(err error) error {
	return errors.Unwrap(err) // nolint: forbidigo
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
