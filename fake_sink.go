// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import "errors"

// ErrFakeSinkPending is returned by FakeSink when a raise arrives while an
// earlier one is still recorded.
var ErrFakeSinkPending = errors.New("clbridge: fake sink already has a pending exception")

// FakeSink is a test implementation of ExceptionSink that records the
// request it receives. Like a real host context it holds at most one pending
// exception: later raises fail with ErrFakeSinkPending. When Err is set each
// raise fails with it instead.
type FakeSink struct {
	Raised []ExceptionRequest
	Err    error
}

func (f *FakeSink) RaiseGeneric(msg string) error {
	return f.record(ExceptionRequest{Category: Generic, Message: msg})
}

func (f *FakeSink) RaiseMissingClass(name string) error {
	return f.record(ExceptionRequest{Category: MissingClass, Class: name})
}

func (f *FakeSink) RaiseMissingMethod(class, method, signature string) error {
	return f.record(ExceptionRequest{
		Category:  MissingMethod,
		Class:     class,
		Method:    method,
		Signature: signature,
	})
}

func (f *FakeSink) record(req ExceptionRequest) error {
	if f.Err != nil {
		return f.Err
	}
	if len(f.Raised) > 0 {
		return ErrFakeSinkPending
	}
	f.Raised = append(f.Raised, req)
	return nil
}
