package safe

import (
	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/shape"
)

// PtrMethod0 calls the method expression fn, of the form (*T).M, on recv.
// Pointer receivers take precedence: a method expression whose receiver is a
// pointer always unifies with the PtrMethod family, while the Method family
// accepts any receiver type and is meant for the rest.
func PtrMethod0[F ~func(*Recv) R, Recv, R any](fn F, recv *Recv) rop.Result[R] {
	if shape.Of[F, R](shape.PtrMethod).Elides() {
		return rop.Success(fn(recv))
	}
	return guard1[*Recv, R](fn, recv)
}

func PtrMethod1[F ~func(*Recv, A) R, Recv, A, R any](fn F, recv *Recv, a A) rop.Result[R] {
	if shape.Of[F, R](shape.PtrMethod).Elides() {
		return rop.Success(fn(recv, a))
	}
	return guard2[*Recv, A, R](fn, recv, a)
}

func PtrMethod2[F ~func(*Recv, A, B) R, Recv, A, B, R any](fn F, recv *Recv, a A, b B) rop.Result[R] {
	if shape.Of[F, R](shape.PtrMethod).Elides() {
		return rop.Success(fn(recv, a, b))
	}
	return guard3[*Recv, A, B, R](fn, recv, a, b)
}

func PtrMethod3[F ~func(*Recv, A, B, C) R, Recv, A, B, C, R any](fn F, recv *Recv, a A, b B, c C) rop.Result[R] {
	if shape.Of[F, R](shape.PtrMethod).Elides() {
		return rop.Success(fn(recv, a, b, c))
	}
	return guard4[*Recv, A, B, C, R](fn, recv, a, b, c)
}

// Method0 calls the method expression fn, of the form T.M, on a copy of recv.
// The constraint cannot exclude pointer types, so (*T).M also compiles here
// with Recv = *T and is then classified as shape.Method. Pointer receivers
// must go through PtrMethod0..PtrMethod3 to be classified as shape.PtrMethod.
func Method0[F ~func(Recv) R, Recv, R any](fn F, recv Recv) rop.Result[R] {
	if shape.Of[F, R](shape.Method).Elides() {
		return rop.Success(fn(recv))
	}
	return guard1[Recv, R](fn, recv)
}

func Method1[F ~func(Recv, A) R, Recv, A, R any](fn F, recv Recv, a A) rop.Result[R] {
	if shape.Of[F, R](shape.Method).Elides() {
		return rop.Success(fn(recv, a))
	}
	return guard2[Recv, A, R](fn, recv, a)
}

func Method2[F ~func(Recv, A, B) R, Recv, A, B, R any](fn F, recv Recv, a A, b B) rop.Result[R] {
	if shape.Of[F, R](shape.Method).Elides() {
		return rop.Success(fn(recv, a, b))
	}
	return guard3[Recv, A, B, R](fn, recv, a, b)
}

func Method3[F ~func(Recv, A, B, C) R, Recv, A, B, C, R any](fn F, recv Recv, a A, b B, c C) rop.Result[R] {
	if shape.Of[F, R](shape.Method).Elides() {
		return rop.Success(fn(recv, a, b, c))
	}
	return guard4[Recv, A, B, C, R](fn, recv, a, b, c)
}
