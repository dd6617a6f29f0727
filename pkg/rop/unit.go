package rop

// Unit is the payload of results produced by operations that return nothing.
type Unit struct{}

// Done is the successful result of a void operation.
func Done() Result[Unit] {
	return Success(Unit{})
}

// Void0 lifts a void function into one returning Unit, so that it can be
// adapted like any value-returning operation. Void1..Void3 do the same for
// higher arities, including void method expressions such as (*T).Reset.
func Void0(fn func()) func() Unit {
	return func() Unit {
		fn()
		return Unit{}
	}
}

func Void1[A any](fn func(A)) func(A) Unit {
	return func(a A) Unit {
		fn(a)
		return Unit{}
	}
}

func Void2[A, B any](fn func(A, B)) func(A, B) Unit {
	return func(a A, b B) Unit {
		fn(a, b)
		return Unit{}
	}
}

func Void3[A, B, C any](fn func(A, B, C)) func(A, B, C) Unit {
	return func(a A, b B, c C) Unit {
		fn(a, b, c)
		return Unit{}
	}
}
