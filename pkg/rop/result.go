package rop

type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
	}
}

// Fail builds an Error result. A nil err would leave the result with neither
// a value nor an error, so it is replaced by FallbackMessage.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = FallbackMessage
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

func FailText[T any](msg string) Result[T] {
	return Fail[T](Message(msg))
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// ErrText returns the error text, or "" for a successful result.
func (r Result[T]) ErrText() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

// Get unpacks the result into the usual Go (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}
