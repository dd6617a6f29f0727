package safe

import (
	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/shape"
)

// Callable0 is implemented by stateless callable types. The adapter never
// receives an instance: it calls Call on the zero value of the type.
type Callable0[R any] interface {
	Call() R
}

type Callable1[A, R any] interface {
	Call(A) R
}

type Callable2[A, B, R any] interface {
	Call(A, B) R
}

type Callable3[A, B, C, R any] interface {
	Call(A, B, C) R
}

// Stateless0 calls the zero value of F. R and F are given explicitly, the
// argument types are inferred:
//
//	res := safe.Stateless2[int, adder](1, 2)
func Stateless0[R any, F Callable0[R]]() rop.Result[R] {
	var f F
	if shape.Of[F, R](shape.Stateless).Elides() {
		return rop.Success(f.Call())
	}
	return guard0[R](f.Call)
}

func Stateless1[R any, F Callable1[A, R], A any](a A) rop.Result[R] {
	var f F
	if shape.Of[F, R](shape.Stateless).Elides() {
		return rop.Success(f.Call(a))
	}
	return guard1[A, R](f.Call, a)
}

func Stateless2[R any, F Callable2[A, B, R], A, B any](a A, b B) rop.Result[R] {
	var f F
	if shape.Of[F, R](shape.Stateless).Elides() {
		return rop.Success(f.Call(a, b))
	}
	return guard2[A, B, R](f.Call, a, b)
}

func Stateless3[R any, F Callable3[A, B, C, R], A, B, C any](a A, b B, c C) rop.Result[R] {
	var f F
	if shape.Of[F, R](shape.Stateless).Elides() {
		return rop.Success(f.Call(a, b, c))
	}
	return guard3[A, B, C, R](f.Call, a, b, c)
}
