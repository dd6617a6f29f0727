// Package try short-circuits a function returning rop.Result on the first
// failed Result it consumes.
//
// The enclosing function names its result and defers Handle:
//
//	func sum3(a, b, c int) (res rop.Result[int]) {
//	    defer try.Handle(&res)
//
//	    var ab, abc int
//	    try.Bind(&ab, safe.Func2(add, a, b))
//	    try.Bind(&abc, safe.Func2(add, ab, c))
//	    return rop.Success(abc)
//	}
//
// Bind and Check continue when the Result succeeded. When it failed they
// unwind to the deferred Handle, which stores the failure in res; statements
// after the failing call never run. BindStatic and CheckStatic replace the
// original error with a fixed Literal.
//
// Propagation works only below a deferred Handle in the same goroutine. Panics
// that did not come from this package pass through Handle unchanged.
package try
