// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSink is returned when there is no host context to raise into.
	ErrNilSink = errors.New("clbridge: nil exception sink")
	// ErrUnknownCategory is returned by Raise for a category it cannot map.
	ErrUnknownCategory = errors.New("clbridge: unknown exception category")
)

// Category selects the kind of exception raised in the host.
type Category int

const (
	// Generic is a runtime error carrying a native diagnostic.
	Generic Category = iota
	// MissingClass means a host class the native code depends on is absent.
	MissingClass
	// MissingMethod means a host method the native code depends on is absent.
	MissingMethod
)

func (c Category) String() string {
	switch c {
	case Generic:
		return "generic"
	case MissingClass:
		return "missing class"
	case MissingMethod:
		return "missing method"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ExceptionRequest describes one exception to raise. Fields that do not
// apply to the category are ignored; the others reach the sink as given.
type ExceptionRequest struct {
	Category  Category
	Message   string
	Class     string
	Method    string
	Signature string
}

// SignalError reports that the host refused or failed to raise an
// exception. It is fatal to the current native call.
type SignalError struct {
	Request ExceptionRequest
	Err     error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("clbridge: raising %s exception: %v", e.Request.Category, e.Err)
}

func (e *SignalError) Unwrap() error {
	return e.Err
}

// Raise raises req in sink. It returns nil when the exception is pending in
// the host and a *SignalError otherwise. In both cases the caller must
// return to the host without further native work.
func Raise(sink ExceptionSink, req ExceptionRequest) error {
	if sink == nil {
		return &SignalError{Request: req, Err: ErrNilSink}
	}

	var err error
	switch req.Category {
	case Generic:
		err = sink.RaiseGeneric(req.Message)
	case MissingClass:
		err = sink.RaiseMissingClass(req.Class)
	case MissingMethod:
		err = sink.RaiseMissingMethod(req.Class, req.Method, req.Signature)
	default:
		err = ErrUnknownCategory
	}

	if err != nil {
		return &SignalError{Request: req, Err: err}
	}
	return nil
}

// ThrowError raises a generic runtime exception carrying msg.
func ThrowError(sink ExceptionSink, msg string) error {
	return Raise(sink, ExceptionRequest{Category: Generic, Message: msg})
}

// ThrowNoClassDefFound raises a class-not-found exception naming class.
func ThrowNoClassDefFound(sink ExceptionSink, class string) error {
	return Raise(sink, ExceptionRequest{Category: MissingClass, Class: class})
}

// ThrowNoSuchMethod raises a no-such-method exception naming the class, the
// method and its signature descriptor.
func ThrowNoSuchMethod(sink ExceptionSink, class, method, signature string) error {
	return Raise(sink, ExceptionRequest{
		Category:  MissingMethod,
		Class:     class,
		Method:    method,
		Signature: signature,
	})
}

// ThrowStatus translates the status returned by op and raises it as a
// generic exception. Success raises nothing.
func (t *Table) ThrowStatus(sink ExceptionSink, op string, status Status) error {
	if status.OK() {
		return nil
	}
	e := &Error{Status: status, Op: op, Message: t.Translate(status)}
	return ThrowError(sink, e.Error())
}

// ThrowStatus is Default.ThrowStatus.
func ThrowStatus(sink ExceptionSink, op string, status Status) error {
	return Default.ThrowStatus(sink, op, status)
}
