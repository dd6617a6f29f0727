package safe

import (
	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/shape"
)

// Closure0 calls a capturing function value. State the closure captured is
// shared with the caller, so mutations made before a panic remain visible.
func Closure0[F ~func() R, R any](fn F) rop.Result[R] {
	if shape.Of[F, R](shape.Closure).Elides() {
		return rop.Success(fn())
	}
	return guard0[R](fn)
}

func Closure1[F ~func(A) R, A, R any](fn F, a A) rop.Result[R] {
	if shape.Of[F, R](shape.Closure).Elides() {
		return rop.Success(fn(a))
	}
	return guard1[A, R](fn, a)
}

func Closure2[F ~func(A, B) R, A, B, R any](fn F, a A, b B) rop.Result[R] {
	if shape.Of[F, R](shape.Closure).Elides() {
		return rop.Success(fn(a, b))
	}
	return guard2[A, B, R](fn, a, b)
}

func Closure3[F ~func(A, B, C) R, A, B, C, R any](fn F, a A, b B, c C) rop.Result[R] {
	if shape.Of[F, R](shape.Closure).Elides() {
		return rop.Success(fn(a, b, c))
	}
	return guard3[A, B, C, R](fn, a, b, c)
}
