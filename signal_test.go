// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThrowError(t *testing.T) {
	sink := &FakeSink{}

	require.NoError(t, ThrowError(sink, "kernel launch failed"))
	require.Equal(t, []ExceptionRequest{
		{Category: Generic, Message: "kernel launch failed"},
	}, sink.Raised)
}

func TestRaiseEmptyInputsPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		throw    func(ExceptionSink) error
		expected ExceptionRequest
	}{
		{
			name:     "empty message",
			throw:    func(s ExceptionSink) error { return ThrowError(s, "") },
			expected: ExceptionRequest{Category: Generic},
		},
		{
			name:     "empty class",
			throw:    func(s ExceptionSink) error { return ThrowNoClassDefFound(s, "") },
			expected: ExceptionRequest{Category: MissingClass},
		},
		{
			name:     "empty method",
			throw:    func(s ExceptionSink) error { return ThrowNoSuchMethod(s, "", "", "") },
			expected: ExceptionRequest{Category: MissingMethod},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &FakeSink{}
			require.NoError(t, tt.throw(sink))
			require.Equal(t, []ExceptionRequest{tt.expected}, sink.Raised)
		})
	}
}

func TestFakeSinkRejectsSecondRaise(t *testing.T) {
	sink := &FakeSink{}

	require.NoError(t, ThrowError(sink, "first"))
	err := ThrowNoClassDefFound(sink, "Second")
	require.ErrorIs(t, err, ErrFakeSinkPending)

	var signalErr *SignalError
	require.True(t, errors.As(err, &signalErr))
	require.Equal(t, []ExceptionRequest{
		{Category: Generic, Message: "first"},
	}, sink.Raised)
}

func TestThrowNoClassDefFound(t *testing.T) {
	sink := &FakeSink{}

	require.NoError(t, ThrowNoClassDefFound(sink, "com.example.Foo"))
	require.Equal(t, []ExceptionRequest{
		{Category: MissingClass, Class: "com.example.Foo"},
	}, sink.Raised)
}

func TestThrowNoSuchMethod(t *testing.T) {
	sink := &FakeSink{}

	require.NoError(t, ThrowNoSuchMethod(sink, "C", "m", "(I)V"))
	require.Equal(t, []ExceptionRequest{
		{Category: MissingMethod, Class: "C", Method: "m", Signature: "(I)V"},
	}, sink.Raised)
}

func TestThrowStatus(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		status   Status
		expected []ExceptionRequest
	}{
		{
			name:     "success raises nothing",
			op:       "clFinish",
			status:   Success,
			expected: nil,
		},
		{
			name:   "known status",
			op:     "clEnqueueNDRangeKernel",
			status: OutOfResources,
			expected: []ExceptionRequest{
				{Category: Generic, Message: "clEnqueueNDRangeKernel failed: CL_OUT_OF_RESOURCES: out of resources"},
			},
		},
		{
			name:   "unknown status without op",
			status: -777,
			expected: []ExceptionRequest{
				{Category: Generic, Message: "unrecognized error code: -777"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &FakeSink{}
			require.NoError(t, ThrowStatus(sink, tt.op, tt.status))
			require.Equal(t, tt.expected, sink.Raised)
		})
	}
}

func TestRaiseFailures(t *testing.T) {
	errHost := errors.New("host unavailable")

	tests := []struct {
		name        string
		sink        ExceptionSink
		req         ExceptionRequest
		expectedErr error
	}{
		{
			name:        "nil sink",
			sink:        nil,
			req:         ExceptionRequest{Category: Generic, Message: "boom"},
			expectedErr: ErrNilSink,
		},
		{
			name:        "sink refuses",
			sink:        &FakeSink{Err: errHost},
			req:         ExceptionRequest{Category: MissingClass, Class: "Foo"},
			expectedErr: errHost,
		},
		{
			name:        "unknown category",
			sink:        &FakeSink{},
			req:         ExceptionRequest{Category: Category(42)},
			expectedErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Raise(tt.sink, tt.req)
			require.ErrorIs(t, err, tt.expectedErr)

			var signalErr *SignalError
			require.True(t, errors.As(err, &signalErr))
			require.Equal(t, tt.req.Category, signalErr.Request.Category)

			if fake, ok := tt.sink.(*FakeSink); ok {
				require.Empty(t, fake.Raised)
			}
		})
	}
}

func TestSignalErrorMessage(t *testing.T) {
	err := ThrowNoSuchMethod(&FakeSink{Err: errors.New("class not resolved")}, "C", "m", "(I)V")
	require.EqualError(t, err, "clbridge: raising missing method exception: class not resolved")
}

func TestCategoryString(t *testing.T) {
	require.Equal(t, "generic", Generic.String())
	require.Equal(t, "missing class", MissingClass.String())
	require.Equal(t, "missing method", MissingMethod.String())
	require.Equal(t, "Category(9)", Category(9).String())
}
