package safe

import (
	"fmt"

	"github.com/ib-77/ropsafe/pkg/rop"
)

// capture converts a panic unwinding through the caller's frame into a failed
// result. It must be deferred directly by the function owning res.
func capture[R any](res *rop.Result[R]) {
	if r := recover(); r != nil {
		*res = rop.Fail[R](rop.Message(messageOf(r)))
	}
}

// messageOf extracts the text carried by a panic value. Values without a
// message, and messages whose extraction panics, yield the fallback.
func messageOf(v any) (msg string) {
	defer func() {
		if recover() != nil {
			msg = string(rop.FallbackMessage)
		}
	}()

	switch val := v.(type) {
	case error:
		return val.Error()
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return string(rop.FallbackMessage)
	}
}

func guard0[R any](fn func() R) (res rop.Result[R]) {
	defer capture(&res)
	return rop.Success(fn())
}

func guard1[A, R any](fn func(A) R, a A) (res rop.Result[R]) {
	defer capture(&res)
	return rop.Success(fn(a))
}

func guard2[A, B, R any](fn func(A, B) R, a A, b B) (res rop.Result[R]) {
	defer capture(&res)
	return rop.Success(fn(a, b))
}

func guard3[A, B, C, R any](fn func(A, B, C) R, a A, b B, c C) (res rop.Result[R]) {
	defer capture(&res)
	return rop.Success(fn(a, b, c))
}

func guard4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C, d D) (res rop.Result[R]) {
	defer capture(&res)
	return rop.Success(fn(a, b, c, d))
}
