package providers

// Outcome is the result of a single service call: a value on success, the
// failure reason otherwise.
type Outcome[T any] struct {
	value T
	err   error
}

// Success wraps a successful value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Failure wraps the reason a call did not succeed. A nil reason is replaced
// by ErrServiceCall so a failed outcome is never mistaken for success.
func Failure[T any](reason error) Outcome[T] {
	if reason == nil {
		reason = ErrServiceCall
	}
	return Outcome[T]{err: reason}
}

// OK reports whether the call succeeded.
func (o Outcome[T]) OK() bool { return o.err == nil }

// Value returns the success value, or the zero value on failure.
func (o Outcome[T]) Value() T { return o.value }

// Err returns the failure reason, or nil on success.
func (o Outcome[T]) Err() error { return o.err }
