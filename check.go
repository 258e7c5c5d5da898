// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import "go.uber.org/zap"

// Check validates the status returned by the native call op. It returns nil
// for Success; otherwise it logs the failure and returns an *Error carrying
// the translated message. A nil logger disables logging.
func (t *Table) Check(logger *zap.Logger, op string, status Status) error {
	if status.OK() {
		return nil
	}
	err := &Error{
		Status:  status,
		Op:      op,
		Message: t.Translate(status),
	}
	if logger != nil {
		logger.Error(
			"Native call failed",
			zap.String("op", op),
			zap.Int32("status", int32(status)),
			zap.String("name", t.Name(status)),
			zap.String("message", err.Message),
		)
	}
	return err
}

// Check validates status with the Default table.
func Check(logger *zap.Logger, op string, status Status) error {
	return Default.Check(logger, op, status)
}
