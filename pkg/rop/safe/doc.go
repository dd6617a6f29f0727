// Package safe adapts calls that may panic into calls returning rop.Result.
//
// Every entry point invokes the operation, and if the operation panics the
// panic is recovered inside the entry point's own frame and returned as a
// failed Result whose error is a rop.Message. Nothing panics out of this
// package.
//
// The entry point is chosen by the shape of the operation:
// - FuncN: a plain function value
// - ClosureN: a capturing function value
// - MethodN: a method expression T.M with its receiver passed by value
// - PtrMethodN: a method expression (*T).M with a pointer receiver
// - StatelessN: a callable type invoked through its zero value
//
// N is the number of arguments after the receiver, 0 to 3. Void operations are
// lifted with rop.Void0..Void3 and produce rop.Result[rop.Unit].
//
// When the callable's type carries the shape.Marker method (see shape.Total0
// and friends) the recover scope is skipped and the call is made directly.
//
//	res := safe.Func2(add, 1, 2)                         // rop.Result[int]
//	res = safe.PtrMethod1((*Counter).Add, counter, 5)
//	res = safe.Func2(shape.Total2[int, int, int](sum), 1, 2) // no recover scope
package safe
