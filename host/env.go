// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package host is an in-process managed runtime for native entry points. Each
// Env carries the pending-exception state of one entry point invocation.
package host

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/luxfi/clbridge"
)

var (
	// ErrExceptionPending is returned when raising into an Env that already
	// has a pending exception.
	ErrExceptionPending = errors.New("host: exception already pending")
	// ErrUnwound is returned when raising into an Env whose entry point has
	// already returned to the host.
	ErrUnwound = errors.New("host: environment already unwound")
	// ErrClassNotResolved is returned when the exception class itself cannot
	// be found.
	ErrClassNotResolved = errors.New("host: exception class not resolved")
)

var _ clbridge.ExceptionSink = (*Env)(nil)

// ClassName is a fully qualified host class name in internal form.
type ClassName string

// Exception classes raised for each category.
const (
	ErrorClass                ClassName = "java/lang/Error"
	NoClassDefFoundErrorClass ClassName = "java/lang/NoClassDefFoundError"
	NoSuchMethodErrorClass    ClassName = "java/lang/NoSuchMethodError"
)

// State is the lifecycle of an entry point as seen by its Env.
type State int

const (
	Running State = iota
	ExceptionPending
	Unwound
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ExceptionPending:
		return "exception pending"
	case Unwound:
		return "unwound"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures an Env.
type Option func(*Env)

// WithLogger logs every raise attempt to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Env) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithoutClass makes class unresolvable, so raising it fails.
func WithoutClass(class ClassName) Option {
	return func(e *Env) {
		e.unresolved[class] = struct{}{}
	}
}

// Env is the execution context of a single native entry point. It is not
// safe for concurrent use.
type Env struct {
	state      State
	pending    *Exception
	unresolved map[ClassName]struct{}
	log        *zap.Logger
}

// NewEnv returns a running Env.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		unresolved: make(map[ClassName]struct{}),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current lifecycle state.
func (e *Env) State() State {
	return e.state
}

// Pending returns the pending exception, or nil.
func (e *Env) Pending() *Exception {
	return e.pending
}

func (e *Env) RaiseGeneric(msg string) error {
	return e.raise(ErrorClass, msg)
}

func (e *Env) RaiseMissingClass(name string) error {
	return e.raise(NoClassDefFoundErrorClass, name)
}

func (e *Env) RaiseMissingMethod(class, method, signature string) error {
	return e.raise(NoSuchMethodErrorClass, class+"."+method+signature)
}

// Unwind returns control to the managed caller. The pending exception, if
// any, is returned as the error the caller observes.
func (e *Env) Unwind() error {
	e.state = Unwound
	if e.pending == nil {
		return nil
	}
	return e.pending
}

func (e *Env) raise(class ClassName, msg string) error {
	log := e.log.With(
		zap.String("class", string(class)),
		zap.String("message", msg),
	)
	switch e.state {
	case ExceptionPending:
		log.Warn("Rejected raise", zap.Error(ErrExceptionPending))
		return ErrExceptionPending
	case Unwound:
		log.Warn("Rejected raise", zap.Error(ErrUnwound))
		return ErrUnwound
	}
	if _, ok := e.unresolved[class]; ok {
		err := fmt.Errorf("%w: %s", ErrClassNotResolved, class)
		log.Error("Failed to raise exception", zap.Error(err))
		return err
	}
	e.pending = &Exception{Class: class, Message: msg}
	e.state = ExceptionPending
	log.Debug("Exception pending")
	return nil
}
