// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCheckSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	require.NoError(t, Check(zap.New(core), "clFinish", Success))
	require.Zero(t, logs.Len())
}

func TestCheckFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	err := Check(zap.New(core), "clEnqueueNDRangeKernel", InvalidWorkGroupSize)
	require.Error(t, err)

	var clErr *Error
	require.True(t, errors.As(err, &clErr))
	require.Equal(t, InvalidWorkGroupSize, clErr.Status)
	require.Equal(t, "clEnqueueNDRangeKernel", clErr.Op)
	require.Equal(t, "clEnqueueNDRangeKernel failed: CL_INVALID_WORK_GROUP_SIZE: invalid work group size", err.Error())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "clEnqueueNDRangeKernel", fields["op"])
	require.Equal(t, int32(InvalidWorkGroupSize), fields["status"])
	require.Equal(t, "CL_INVALID_WORK_GROUP_SIZE", fields["name"])
}

func TestCheckUnknownStatus(t *testing.T) {
	err := Check(nil, "clGetEventInfo", -4321)
	require.EqualError(t, err, "clGetEventInfo failed: unrecognized error code: -4321")
}

func TestCheckCustomTable(t *testing.T) {
	table, err := NewTable(Entry{Status: -9001, Name: "CL_VENDOR_HANG", Description: "device hang detected"})
	require.NoError(t, err)

	err = table.Check(zap.NewNop(), "clWaitForEvents", -9001)
	require.EqualError(t, err, "clWaitForEvents failed: CL_VENDOR_HANG: device hang detected")
}

func TestErrorWithoutOp(t *testing.T) {
	err := &Error{Status: MapFailure, Message: Translate(MapFailure)}
	require.Equal(t, "CL_MAP_FAILURE: map failure", err.Error())
}
