package rmapi

import (
	"errors"
)

// Result is either a successful value or a failure carrying a message that
// can be shown to a user. The zero value is a failure with an empty message.
type Result[T any] struct {
	data    T
	message string
	ok      bool
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Failure builds a failed Result with the given message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// IsSuccess reports whether the result holds data.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Data returns the payload. It is the zero value for failures.
func (r Result[T]) Data() T {
	return r.data
}

// Message returns the failure message. It is empty for successes.
func (r Result[T]) Message() string {
	return r.message
}

// Unwrap converts the result into the usual value/error pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.data, nil
	}

	return r.data, errors.New(r.message) //nolint:err113 // message is user facing text
}
