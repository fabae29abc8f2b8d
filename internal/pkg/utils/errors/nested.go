package errors

import "fmt"

// NestedError is a main error with a list of sub errors, formatted as "main: sub" or a bullet list.
type NestedError interface {
	error
	MainError() error
	WrappedErrors() []error
	Unwrap() []error
}

type nestedErrorGetter interface {
	MainError() error
	WrappedErrors() []error
}

type nestedError struct {
	main error
	subs MultiError
}

func NewNestedError(main error, subErrs ...error) NestedError {
	if main == nil {
		panic("error cannot be nil")
	}
	subs := NewMultiError()
	subs.Append(subErrs...)
	return &nestedError{main: main, subs: subs}
}

func PrefixError(err error, prefix string) error {
	return NewNestedError(New(prefix), err)
}

func PrefixErrorf(err error, format string, a ...any) error {
	return NewNestedError(New(fmt.Sprintf(format, a...)), err)
}

func (e *nestedError) Error() string {
	return Format(e)
}

func (e *nestedError) MainError() error {
	return e.main
}

func (e *nestedError) WrappedErrors() []error {
	return e.subs.WrappedErrors()
}

func (e *nestedError) Unwrap() []error {
	return append([]error{e.main}, e.subs.WrappedErrors()...)
}
