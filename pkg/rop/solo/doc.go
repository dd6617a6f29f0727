// Package solo chains steps over rop.Result[T] on a single goroutine.
//
// Every user step runs behind the safe adapter: a panicking step yields a
// failed Result instead of unwinding the chain. Steps passed to Switch may also
// propagate with try.Bind, try.Check and friends without installing their own
// try.Handle.
//
// A failed input skips the step and carries its error forward unchanged. A
// cancelled context fails the step with ctx.Err() before it runs.
//
// Highlights:
//   - Switch: Result[In] to Result[Out] with a step that returns a Result
//   - Map: transform a successful value
//   - Try: call a (Out, error) step and convert the error to a failure
//   - Validate: run every check and join their errors
//   - Tee: side effect on success
//   - Finally: reduce to a concrete value via success/error handlers
package solo
