// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

// Exception is an exception thrown into the managed runtime.
type Exception struct {
	Class   ClassName
	Message string
}

func (e *Exception) Error() string {
	return string(e.Class) + ": " + e.Message
}
