package try

import (
	"github.com/ib-77/ropsafe/pkg/rop"
)

// Literal is error text fixed at compile time. Untyped string constants
// convert to Literal implicitly; a string variable does not, so passing a
// computed message is a compile error unless it is converted on purpose.
type Literal string

func (l Literal) Error() string {
	return string(l)
}

// exit carries a failure from a propagation point up to Handle. It is an
// error so that a recover scope other than Handle still sees the failure text.
type exit struct {
	err error
}

func (e exit) Error() string {
	return e.err.Error()
}

func (e exit) Unwrap() error {
	return e.err
}

// Handle ends a propagation started by Bind, Check, BindStatic or
// CheckStatic by storing the failure into res. It must be deferred directly
// by the function owning res. Other panics are re-raised.
func Handle[T any](res *rop.Result[T]) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(exit)
	if !ok {
		panic(r)
	}

	*res = rop.Fail[T](e.err)
}

// Catch runs body with Handle installed.
func Catch[T any](body func() rop.Result[T]) (res rop.Result[T]) {
	defer Handle(&res)
	return body()
}

// Bind stores the payload of r into dst, or propagates r's error.
func Bind[T any, O rop.WithError[T]](dst *T, r O) {
	if !r.IsSuccess() {
		panic(exit{err: errorOf(r.Err())})
	}
	*dst = r.Result()
}

// Check propagates r's error; a successful unit result is discarded.
func Check[O rop.WithError[rop.Unit]](r O) {
	if !r.IsSuccess() {
		panic(exit{err: errorOf(r.Err())})
	}
}

// BindStatic is Bind with msg in place of r's error.
func BindStatic[T any, O rop.WithError[T]](dst *T, r O, msg Literal) {
	if !r.IsSuccess() {
		panic(exit{err: msg})
	}
	*dst = r.Result()
}

// CheckStatic is Check with msg in place of r's error.
func CheckStatic[O rop.WithError[rop.Unit]](r O, msg Literal) {
	if !r.IsSuccess() {
		panic(exit{err: msg})
	}
}

// Value returns the payload of r, or propagates r's error.
func Value[T any](r rop.Result[T]) T {
	var v T
	Bind(&v, r)
	return v
}

// ValueStatic is Value with msg in place of r's error.
func ValueStatic[T any](r rop.Result[T], msg Literal) T {
	var v T
	BindStatic(&v, r, msg)
	return v
}

// errorOf keeps a failure a failure even if a foreign Result type reports
// IsSuccess false with a nil error.
func errorOf(err error) error {
	if err == nil {
		return rop.FallbackMessage
	}
	return err
}
