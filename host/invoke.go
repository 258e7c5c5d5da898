// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"
	"errors"
)

// Invoke runs fn as a native entry point with a fresh Env, then unwinds it.
// The returned error is what the managed caller observes: the pending
// *Exception, or nil when fn returned normally without raising. An error
// returned by fn means a raise failed; it is joined with any exception that
// was already pending.
func Invoke(ctx context.Context, fn func(*Env) error, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := NewEnv(opts...)
	err := fn(env)
	exc := env.Unwind()
	if err != nil {
		return errors.Join(err, exc)
	}
	return exc
}
