// Package shape classifies callables handed to the safe adapter. A
// classification is computed from types alone: the callable's type F and its
// payload type R. No values are inspected and no reflection is used, so every
// instantiation resolves to one fixed Class.
//
// A Class is the cross product of:
// - Kind: Func, Method, PtrMethod, Stateless, Closure
// - Returns: Value or Unit (the payload type is rop.Unit)
// - Guarantee: MayPanic or NoPanic (the callable type carries NoPanic())
//
// The 20 resulting specializations are enumerated by Classes and indexed
// densely by Class.Index, which makes the set usable as a dispatch table.
// Total0..Total3 are function types that carry the NoPanic marker; converting
// a function to one of them is how a caller declares it never panics.
package shape
