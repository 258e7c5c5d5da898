// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package clbridge is the failure boundary between an OpenCL backend and the
// managed runtime that calls it.
//
// Native status codes are translated into diagnostics with Translate, which
// is total over the integer domain. Failures that must reach the managed
// caller are raised through an ExceptionSink with ThrowError,
// ThrowNoClassDefFound or ThrowNoSuchMethod. Once a raise has been attempted
// the native entry point must return to the host without touching native
// resources again, whether or not the raise succeeded.
package clbridge
