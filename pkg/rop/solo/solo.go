package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropsafe/pkg/rop"
	"github.com/ib-77/ropsafe/pkg/rop/safe"
	"github.com/ib-77/ropsafe/pkg/rop/try"
)

// run is the shared step driver: it skips failed input, honours ctx and runs
// step under the safe adapter.
func run[In, Out any](ctx context.Context, input rop.Result[In],
	step func(ctx context.Context, in In) rop.Result[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Fail[Out](input.Err())
	}
	if err := ctx.Err(); err != nil {
		return rop.Fail[Out](err)
	}

	res := safe.Closure2(step, ctx, input.Result())
	if !res.IsSuccess() {
		return rop.Fail[Out](res.Err())
	}
	return res.Result()
}

// Switch moves from Result[In] to Result[Out]. onSuccess runs with a
// propagation handler installed.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return run(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return try.Catch(func() rop.Result[Out] {
			return onSuccess(ctx, r)
		})
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return run(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		return rop.Success(onSuccess(ctx, r))
	})
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return run(ctx, input, func(ctx context.Context, r In) rop.Result[Out] {
		out, err := onTryExecute(ctx, r)
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	})
}

// Validate runs every check against a successful input. The result fails with
// all check errors joined, or passes the input through.
func Validate[T any](ctx context.Context, input rop.Result[T],
	checks ...func(ctx context.Context, in T) error) rop.Result[T] {

	return run(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		var errs []error
		for _, check := range checks {
			if res := safe.Closure2(check, ctx, in); !res.IsSuccess() {
				errs = append(errs, res.Err())
			} else if res.Result() != nil {
				errs = append(errs, res.Result())
			}
		}
		if len(errs) > 0 {
			return rop.Fail[T](errors.Join(errs...))
		}
		return rop.Success(in)
	})
}

// Tee calls onSuccess for its side effect and passes the input through.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	return run(ctx, input, func(ctx context.Context, r T) rop.Result[T] {
		onSuccess(ctx, r)
		return rop.Success(r)
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	if err := input.Err(); err != nil {
		return onError(ctx, err)
	}
	return onError(ctx, rop.FallbackMessage)
}
