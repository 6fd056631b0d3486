// Package result provides the outcome type threaded through the tokenizer and
// parser: a value or an error with an excerpt of the input that caused it.
//
// Parse steps are composed with Map, Bind and Then so that the first failure
// short-circuits every following step without explicit error checks.
package result

// Result holds either a successful value or an *Error.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps an error. A nil error is treated as an unnamed failure so a
// Result can never be both empty and successful by accident.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{Message: "unknown failure"}
	}
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the wrapped value and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.err == nil
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Error returns the typed failure, or nil on success.
func (r Result[T]) Error() *Error {
	return r.err
}

// Unwrap converts r into Go's conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Map transforms a successful value with f. Failures pass through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// Bind chains a step that can itself fail. Failures pass through unchanged
// and f is not called.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Then runs next only if r succeeded, discarding r's value.
func Then[T, U any](r Result[T], next func() Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return next()
}

// Guard succeeds with an empty value when ok holds and otherwise fails with
// the error built by onFail.
func Guard(ok bool, onFail func() *Error) Result[struct{}] {
	if ok {
		return Ok(struct{}{})
	}
	return Fail[struct{}](onFail())
}
