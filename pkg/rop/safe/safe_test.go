package safe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/shape"
)

const errOutputIsEven = "output is even"

func add(a, b int) int {
	out := a + b
	if out%2 == 0 {
		panic(errors.New(errOutputIsEven))
	}
	return out
}

func addVoid(a, b int) {
	add(a, b)
}

func sum(a, b int) int {
	return a + b
}

type counter struct {
	base int
}

func (c counter) Add(b int) int {
	return add(c.base, b)
}

func (c counter) Check(b int) {
	addVoid(c.base, b)
}

func (c counter) Sum(b int) int {
	return c.base + b
}

func (c *counter) AddPtr(b int) int {
	return add(c.base, b)
}

func (c *counter) Store(b int) {
	c.base = add(c.base, b)
}

func (c *counter) SumPtr(b int) int {
	return c.base + b
}

type adder struct{}

func (adder) Call(a, b int) int {
	return add(a, b)
}

type checker struct{}

func (checker) Call(a, b int) rop.Unit {
	addVoid(a, b)
	return rop.Unit{}
}

type totalAdder struct{}

func (totalAdder) Call(a, b int) int {
	return a + b
}

func (totalAdder) NoPanic() {}

type liar struct{}

func (liar) Call(a, b int) int {
	return add(a, b)
}

func (liar) NoPanic() {}

func valueShapes() map[string]func(a, b int) rop.Result[int] {
	return map[string]func(a, b int) rop.Result[int]{
		"func": func(a, b int) rop.Result[int] {
			return Func2(add, a, b)
		},
		"closure": func(a, b int) rop.Result[int] {
			base := a
			return Closure1(func(x int) int { return add(base, x) }, b)
		},
		"method": func(a, b int) rop.Result[int] {
			return Method1(counter.Add, counter{base: a}, b)
		},
		"ptr-method": func(a, b int) rop.Result[int] {
			return PtrMethod1((*counter).AddPtr, &counter{base: a}, b)
		},
		"stateless": func(a, b int) rop.Result[int] {
			return Stateless2[int, adder](a, b)
		},
	}
}

func unitShapes() map[string]func(a, b int) rop.Result[rop.Unit] {
	return map[string]func(a, b int) rop.Result[rop.Unit]{
		"func": func(a, b int) rop.Result[rop.Unit] {
			return Func2(rop.Void2(addVoid), a, b)
		},
		"closure": func(a, b int) rop.Result[rop.Unit] {
			base := a
			return Closure1(rop.Void1(func(x int) { addVoid(base, x) }), b)
		},
		"method": func(a, b int) rop.Result[rop.Unit] {
			return Method1(rop.Void2(counter.Check), counter{base: a}, b)
		},
		"ptr-method": func(a, b int) rop.Result[rop.Unit] {
			return PtrMethod1(rop.Void2((*counter).Store), &counter{base: a}, b)
		},
		"stateless": func(a, b int) rop.Result[rop.Unit] {
			return Stateless2[rop.Unit, checker](a, b)
		},
	}
}

func TestValueShapes(t *testing.T) {
	t.Parallel()

	for name, call := range valueShapes() {
		name, call := name, call
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok := call(1, 2)
			require.True(t, ok.IsSuccess(), "unexpected error: %v", ok.Err())
			assert.Equal(t, 3, ok.Result())

			bad := call(2, 4)
			require.True(t, bad.IsFailure())
			assert.Equal(t, errOutputIsEven, bad.ErrText())
			assert.Zero(t, bad.Result())
		})
	}
}

func TestUnitShapes(t *testing.T) {
	t.Parallel()

	for name, call := range unitShapes() {
		name, call := name, call
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok := call(1, 2)
			require.True(t, ok.IsSuccess(), "unexpected error: %v", ok.Err())
			assert.Equal(t, rop.Unit{}, ok.Result())

			bad := call(2, 4)
			require.True(t, bad.IsFailure())
			assert.Equal(t, errOutputIsEven, bad.ErrText())
		})
	}
}

func TestNoPanicShapes(t *testing.T) {
	t.Parallel()

	base := 2
	values := map[string]rop.Result[int]{
		"func":       Func2(shape.Total2[int, int, int](sum), 2, 4),
		"closure":    Closure1(shape.Total1[int, int](func(x int) int { return base + x }), 4),
		"method":     Method1(shape.Total2[counter, int, int](counter.Sum), counter{base: 2}, 4),
		"ptr-method": PtrMethod1(shape.Total2[*counter, int, int]((*counter).SumPtr), &counter{base: 2}, 4),
		"stateless":  Stateless2[int, totalAdder](2, 4),
	}
	for name, res := range values {
		assert.True(t, res.IsSuccess(), name)
		assert.Equal(t, 6, res.Result(), name)
	}

	noop := func(int, int) {}
	units := map[string]rop.Result[rop.Unit]{
		"func":    Func2(shape.Total2[int, int, rop.Unit](rop.Void2(noop)), 2, 4),
		"closure": Closure0(shape.Total0[rop.Unit](rop.Void0(func() { base++ }))),
	}
	for name, res := range units {
		assert.True(t, res.IsSuccess(), name)
	}
	assert.Equal(t, 3, base)
}

func TestNoPanicElidesRecover(t *testing.T) {
	t.Parallel()

	// A callable that claims NoPanic is called without a recover scope, so
	// its panic is not converted.
	assert.Panics(t, func() {
		Stateless2[int, liar](2, 4)
	})
	assert.Panics(t, func() {
		Func2(shape.Total2[int, int, int](add), 2, 4)
	})

	res := Stateless2[int, liar](1, 2)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 3, res.Result())
}

func TestArities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Func0(func() int { return 7 }).Result())
	assert.Equal(t, 8, Func1(func(a int) int { return a * 2 }, 4).Result())
	assert.Equal(t, "a-b-c", Func3(func(a, b, c string) string { return a + "-" + b + "-" + c }, "a", "b", "c").Result())

	c := counter{base: 1}
	assert.Equal(t, 1, Method0(func(c counter) int { return c.base }, c).Result())
	assert.Equal(t, 6, Method2(func(c counter, a, b int) int { return c.base + a + b }, c, 2, 3).Result())
	assert.Equal(t, 10, Method3(func(c counter, a, b, d int) int { return c.base + a + b + d }, c, 2, 3, 4).Result())

	p := &counter{base: 1}
	assert.Equal(t, 1, PtrMethod0(func(c *counter) int { return c.base }, p).Result())
	assert.Equal(t, 6, PtrMethod2(func(c *counter, a, b int) int { return c.base + a + b }, p, 2, 3).Result())
	assert.Equal(t, 10, PtrMethod3(func(c *counter, a, b, d int) int { return c.base + a + b + d }, p, 2, 3, 4).Result())

	n := 0
	assert.Equal(t, 1, Closure0(func() int { n++; return n }).Result())
	assert.Equal(t, 5, Closure2(func(a, b int) int { return n + a + b }, 2, 2).Result())
	assert.Equal(t, 7, Closure3(func(a, b, c int) int { return n + a + b + c }, 2, 2, 2).Result())
}

type answer struct{}

func (answer) Call() int { return 42 }

type negate struct{}

func (negate) Call(a int) int { return -a }

type join3 struct{}

func (join3) Call(a, b, c string) string { return a + b + c }

func TestStatelessArities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Stateless0[int, answer]().Result())
	assert.Equal(t, -3, Stateless1[int, negate](3).Result())
	assert.Equal(t, "xyz", Stateless3[string, join3]("x", "y", "z").Result())
}

func TestPtrMethodMutatesReceiver(t *testing.T) {
	t.Parallel()

	c := &counter{base: 1}
	res := PtrMethod1(rop.Void2((*counter).Store), c, 2)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 3, c.base)

	// Method receives a copy.
	v := counter{base: 1}
	Method1(func(c counter, b int) int { c.base += b; return c.base }, v, 2)
	assert.Equal(t, 1, v.base)
}

func TestPointerReceiverThroughMethod(t *testing.T) {
	t.Parallel()

	// Both entry points accept (*T).M and run the same call; only the
	// recorded shape differs.
	c := &counter{base: 1}
	viaMethod := Method1((*counter).SumPtr, c, 2)
	viaPtr := PtrMethod1((*counter).SumPtr, c, 2)
	assert.Equal(t, viaPtr, viaMethod)
	assert.Equal(t, 3, viaMethod.Result())

	bad := Method1((*counter).AddPtr, c, 1)
	assert.Equal(t, errOutputIsEven, bad.ErrText())
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Func2(add, 1, 2), Func2(add, 1, 2))
	assert.Equal(t, Func2(add, 2, 4), Func2(add, 2, 4))
}

type stringer struct{}

func (stringer) String() string { return "stringer fault" }

type brokenErr struct{}

func (*brokenErr) Error() string { panic("broken") }

func TestPanicValues(t *testing.T) {
	t.Parallel()

	var nilErr *brokenErr

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "error", value: errors.New("boom"), want: "boom"},
		{name: "wrapped error", value: fmt.Errorf("outer: %w", errors.New("inner")), want: "outer: inner"},
		{name: "string", value: "plain text", want: "plain text"},
		{name: "message", value: rop.Message("typed text"), want: "typed text"},
		{name: "stringer", value: stringer{}, want: "stringer fault"},
		{name: "int", value: 42, want: string(rop.FallbackMessage)},
		{name: "struct", value: struct{ Code int }{Code: 500}, want: string(rop.FallbackMessage)},
		{name: "broken error", value: &brokenErr{}, want: string(rop.FallbackMessage)},
		{name: "nil pointer error", value: nilErr, want: string(rop.FallbackMessage)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Func0(func() int { panic(tt.value) })
			require.True(t, res.IsFailure())
			assert.Equal(t, tt.want, res.ErrText())

			var msg rop.Message
			assert.ErrorAs(t, res.Err(), &msg)
		})
	}
}

func TestRuntimeFaults(t *testing.T) {
	t.Parallel()

	var nilFn func(int, int) int
	res := Func2(nilFn, 1, 2)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.ErrText(), "nil pointer dereference")

	idx := Func1(func(i int) int { return []int{1, 2}[i] }, 5)
	require.True(t, idx.IsFailure())
	assert.Contains(t, idx.ErrText(), "index out of range")

	var m map[string]int
	write := Func0(rop.Void0(func() { m["k"] = 1 }))
	require.True(t, write.IsFailure())
	assert.Contains(t, write.ErrText(), "nil map")

	nilRecv := PtrMethod1((*counter).AddPtr, nil, 1)
	require.True(t, nilRecv.IsFailure())
	assert.Contains(t, nilRecv.ErrText(), "nil pointer dereference")
}

func TestPanicNil(t *testing.T) {
	t.Parallel()

	res := Func0(func() int { panic(nil) })
	assert.True(t, res.IsFailure())
	assert.NotEmpty(t, res.ErrText())
}
