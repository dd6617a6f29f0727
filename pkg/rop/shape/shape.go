package shape

import (
	"fmt"

	"github.com/ib-77/ropsafe/pkg/rop"
)

// Kind is how a callable is bound at the call site.
type Kind uint8

const (
	// Func is a plain function value.
	Func Kind = iota + 1
	// Method is a method expression T.M invoked on a receiver passed by value.
	Method
	// PtrMethod is a method expression (*T).M invoked on a pointer receiver.
	PtrMethod
	// Stateless is a callable type whose zero value is invoked; nothing but the
	// type is needed at the call site.
	Stateless
	// Closure is a capturing callable value carrying its own state.
	Closure
)

const kindCount = 5

func (k Kind) String() string {
	switch k {
	case Func:
		return "func"
	case Method:
		return "method"
	case PtrMethod:
		return "ptr-method"
	case Stateless:
		return "stateless"
	case Closure:
		return "closure"
	default:
		return "unknown"
	}
}

// Returns tells whether a callable yields a value or only rop.Unit.
type Returns uint8

const (
	Value Returns = iota
	Unit
)

func (r Returns) String() string {
	if r == Unit {
		return "unit"
	}
	return "value"
}

// Guarantee tells whether a callable may panic.
type Guarantee uint8

const (
	MayPanic Guarantee = iota
	NoPanic
)

func (g Guarantee) String() string {
	if g == NoPanic {
		return "nopanic"
	}
	return "maypanic"
}

// Class is one specialization of the adapter.
type Class struct {
	Kind      Kind
	Returns   Returns
	Guarantee Guarantee
}

// Valid reports whether c names one of the specializations listed by Classes.
func (c Class) Valid() bool {
	return c.Kind >= Func && c.Kind <= Closure &&
		c.Returns <= Unit && c.Guarantee <= NoPanic
}

// Index maps c to [0, 20). It returns -1 for an invalid class.
func (c Class) Index() int {
	if !c.Valid() {
		return -1
	}
	return (int(c.Kind-Func)*2+int(c.Returns))*2 + int(c.Guarantee)
}

// Elides reports whether the adapter may call without a recover scope.
func (c Class) Elides() bool {
	return c.Guarantee == NoPanic
}

func (c Class) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Kind, c.Returns, c.Guarantee)
}

// Classes lists every specialization in Index order.
func Classes() []Class {
	out := make([]Class, 0, kindCount*2*2)
	for k := Func; k <= Closure; k++ {
		for _, r := range []Returns{Value, Unit} {
			for _, g := range []Guarantee{MayPanic, NoPanic} {
				out = append(out, Class{Kind: k, Returns: r, Guarantee: g})
			}
		}
	}
	return out
}

// Of classifies a callable of type F bound as kind and producing R.
func Of[F, R any](kind Kind) Class {
	return Class{
		Kind:      kind,
		Returns:   ReturnsOf[R](),
		Guarantee: GuaranteeOf[F](),
	}
}

// ReturnsOf reports Unit when R is rop.Unit.
func ReturnsOf[R any]() Returns {
	var zero R
	if _, ok := any(zero).(rop.Unit); ok {
		return Unit
	}
	return Value
}

// GuaranteeOf reports NoPanic when F carries the NoPanic marker method.
// Only the type matters: the check runs on F's zero value.
func GuaranteeOf[F any]() Guarantee {
	var zero F
	if _, ok := any(zero).(Marker); ok {
		return NoPanic
	}
	return MayPanic
}
