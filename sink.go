// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

// ExceptionSink is the host runtime's execution context for one native entry
// point. Each method marks an exception as pending on the context and reports
// whether that succeeded. After a successful raise the caller must stop using
// native resources and return to the host.
//
// A sink is borrowed for the duration of a call and must not be retained or
// shared between goroutines.
type ExceptionSink interface {
	RaiseGeneric(msg string) error
	RaiseMissingClass(name string) error
	RaiseMissingMethod(class, method, signature string) error
}
