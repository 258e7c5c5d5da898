// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

// Error is a failed native call: the API that was invoked, the status it
// returned and the translated diagnostic.
type Error struct {
	Status  Status
	Op      string
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + " failed: " + e.Message
}
