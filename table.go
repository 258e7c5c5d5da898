// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package clbridge

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const unrecognizedFormat = "unrecognized error code: %d"

var (
	// ErrReservedStatus is returned when an extension entry tries to redefine Success.
	ErrReservedStatus = errors.New("clbridge: success status is reserved")
	// ErrDuplicateStatus is returned when the same code appears twice in one extension set.
	ErrDuplicateStatus = errors.New("clbridge: duplicate status code")
	// ErrEmptyName is returned when a table entry has no name.
	ErrEmptyName = errors.New("clbridge: empty name")
	// ErrDuplicateName is returned when two codes of one table share a name.
	ErrDuplicateName = errors.New("clbridge: duplicate status name")
	// ErrUnknownStatus is returned by Parse for a name that is not in the table.
	ErrUnknownStatus = errors.New("clbridge: unknown status name")
)

// Entry is one row of a translation table.
type Entry struct {
	Status      Status
	Name        string
	Description string
}

// Message is the text Translate returns for e.
func (e Entry) Message() string {
	if e.Description == "" {
		return e.Name
	}
	return e.Name + ": " + e.Description
}

var defaultEntries = []Entry{
	{Success, "CL_SUCCESS", "success"},
	{DeviceNotFound, "CL_DEVICE_NOT_FOUND", "device not found"},
	{DeviceNotAvailable, "CL_DEVICE_NOT_AVAILABLE", "device not available"},
	{CompilerNotAvailable, "CL_COMPILER_NOT_AVAILABLE", "compiler not available"},
	{MemObjectAllocationFailure, "CL_MEM_OBJECT_ALLOCATION_FAILURE", "memory object allocation failure"},
	{OutOfResources, "CL_OUT_OF_RESOURCES", "out of resources"},
	{OutOfHostMemory, "CL_OUT_OF_HOST_MEMORY", "out of host memory"},
	{ProfilingInfoNotAvailable, "CL_PROFILING_INFO_NOT_AVAILABLE", "profiling information not available"},
	{MemCopyOverlap, "CL_MEM_COPY_OVERLAP", "memory copy overlap"},
	{ImageFormatMismatch, "CL_IMAGE_FORMAT_MISMATCH", "image format mismatch"},
	{ImageFormatNotSupported, "CL_IMAGE_FORMAT_NOT_SUPPORTED", "image format not supported"},
	{BuildProgramFailure, "CL_BUILD_PROGRAM_FAILURE", "program build failure"},
	{MapFailure, "CL_MAP_FAILURE", "map failure"},
	{MisalignedSubBufferOffset, "CL_MISALIGNED_SUB_BUFFER_OFFSET", "misaligned sub-buffer offset"},
	{ExecStatusErrorForEventsInWaitList, "CL_EXEC_STATUS_ERROR_FOR_EVENTS_IN_WAIT_LIST", "execution status error for events in wait list"},
	{CompileProgramFailure, "CL_COMPILE_PROGRAM_FAILURE", "program compile failure"},
	{LinkerNotAvailable, "CL_LINKER_NOT_AVAILABLE", "linker not available"},
	{LinkProgramFailure, "CL_LINK_PROGRAM_FAILURE", "program link failure"},
	{DevicePartitionFailed, "CL_DEVICE_PARTITION_FAILED", "device partition failed"},
	{KernelArgInfoNotAvailable, "CL_KERNEL_ARG_INFO_NOT_AVAILABLE", "kernel argument information not available"},
	{InvalidValue, "CL_INVALID_VALUE", "invalid value"},
	{InvalidDeviceType, "CL_INVALID_DEVICE_TYPE", "invalid device type"},
	{InvalidPlatform, "CL_INVALID_PLATFORM", "invalid platform"},
	{InvalidDevice, "CL_INVALID_DEVICE", "invalid device"},
	{InvalidContext, "CL_INVALID_CONTEXT", "invalid context"},
	{InvalidQueueProperties, "CL_INVALID_QUEUE_PROPERTIES", "invalid command queue properties"},
	{InvalidCommandQueue, "CL_INVALID_COMMAND_QUEUE", "invalid command queue"},
	{InvalidHostPtr, "CL_INVALID_HOST_PTR", "invalid host pointer"},
	{InvalidMemObject, "CL_INVALID_MEM_OBJECT", "invalid memory object"},
	{InvalidImageFormatDescriptor, "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR", "invalid image format descriptor"},
	{InvalidImageSize, "CL_INVALID_IMAGE_SIZE", "invalid image size"},
	{InvalidSampler, "CL_INVALID_SAMPLER", "invalid sampler"},
	{InvalidBinary, "CL_INVALID_BINARY", "invalid program binary"},
	{InvalidBuildOptions, "CL_INVALID_BUILD_OPTIONS", "invalid build options"},
	{InvalidProgram, "CL_INVALID_PROGRAM", "invalid program"},
	{InvalidProgramExecutable, "CL_INVALID_PROGRAM_EXECUTABLE", "invalid program executable"},
	{InvalidKernelName, "CL_INVALID_KERNEL_NAME", "invalid kernel name"},
	{InvalidKernelDefinition, "CL_INVALID_KERNEL_DEFINITION", "invalid kernel definition"},
	{InvalidKernel, "CL_INVALID_KERNEL", "invalid kernel"},
	{InvalidArgIndex, "CL_INVALID_ARG_INDEX", "invalid kernel argument index"},
	{InvalidArgValue, "CL_INVALID_ARG_VALUE", "invalid kernel argument value"},
	{InvalidArgSize, "CL_INVALID_ARG_SIZE", "invalid kernel argument size"},
	{InvalidKernelArgs, "CL_INVALID_KERNEL_ARGS", "invalid kernel arguments"},
	{InvalidWorkDimension, "CL_INVALID_WORK_DIMENSION", "invalid work dimension"},
	{InvalidWorkGroupSize, "CL_INVALID_WORK_GROUP_SIZE", "invalid work group size"},
	{InvalidWorkItemSize, "CL_INVALID_WORK_ITEM_SIZE", "invalid work item size"},
	{InvalidGlobalOffset, "CL_INVALID_GLOBAL_OFFSET", "invalid global offset"},
	{InvalidEventWaitList, "CL_INVALID_EVENT_WAIT_LIST", "invalid event wait list"},
	{InvalidEvent, "CL_INVALID_EVENT", "invalid event"},
	{InvalidOperation, "CL_INVALID_OPERATION", "invalid operation"},
	{InvalidGLObject, "CL_INVALID_GL_OBJECT", "invalid OpenGL object"},
	{InvalidBufferSize, "CL_INVALID_BUFFER_SIZE", "invalid buffer size"},
	{InvalidMipLevel, "CL_INVALID_MIP_LEVEL", "invalid mip-map level"},
	{InvalidGlobalWorkSize, "CL_INVALID_GLOBAL_WORK_SIZE", "invalid global work size"},
	{InvalidProperty, "CL_INVALID_PROPERTY", "invalid property"},
	{InvalidImageDescriptor, "CL_INVALID_IMAGE_DESCRIPTOR", "invalid image descriptor"},
	{InvalidCompilerOptions, "CL_INVALID_COMPILER_OPTIONS", "invalid compiler options"},
	{InvalidLinkerOptions, "CL_INVALID_LINKER_OPTIONS", "invalid linker options"},
	{InvalidDevicePartitionCount, "CL_INVALID_DEVICE_PARTITION_COUNT", "invalid device partition count"},
	{InvalidPipeSize, "CL_INVALID_PIPE_SIZE", "invalid pipe size"},
	{InvalidDeviceQueue, "CL_INVALID_DEVICE_QUEUE", "invalid device queue"},
	{InvalidSpecID, "CL_INVALID_SPEC_ID", "invalid specialization constant id"},
	{MaxSizeRestrictionExceeded, "CL_MAX_SIZE_RESTRICTION_EXCEEDED", "max size restriction exceeded"},
	{InvalidGLSharegroupReferenceKHR, "CL_INVALID_GL_SHAREGROUP_REFERENCE_KHR", "invalid OpenGL sharegroup reference"},
	{PlatformNotFoundKHR, "CL_PLATFORM_NOT_FOUND_KHR", "no OpenCL platform found"},
}

// Default is the table of standard OpenCL status codes.
var Default = mustNewTable(defaultEntries)

// Table maps status codes to their names and descriptions.
// A Table is immutable once built and may be shared between goroutines.
type Table struct {
	byStatus map[Status]Entry
	byName   map[string]Status
}

// NewTable returns the default table extended with extra. An extra entry
// replaces a default entry with the same code. Every name in the resulting
// table must belong to exactly one code.
func NewTable(extra ...Entry) (*Table, error) {
	seen := make(map[Status]struct{}, len(extra))
	for _, e := range extra {
		if e.Status == Success {
			return nil, fmt.Errorf("%w: %s", ErrReservedStatus, e.Name)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: status %d", ErrEmptyName, int32(e.Status))
		}
		if _, ok := seen[e.Status]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateStatus, int32(e.Status))
		}
		seen[e.Status] = struct{}{}
	}
	entries := make([]Entry, 0, len(defaultEntries)+len(extra))
	entries = append(entries, defaultEntries...)
	entries = append(entries, extra...)
	return newTable(entries)
}

func mustNewTable(entries []Entry) *Table {
	t, err := newTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// newTable indexes entries; a later entry for the same code wins. Names are
// indexed only once the codes are settled.
func newTable(entries []Entry) (*Table, error) {
	t := &Table{
		byStatus: make(map[Status]Entry, len(entries)),
		byName:   make(map[string]Status, len(entries)),
	}
	for _, e := range entries {
		t.byStatus[e.Status] = e
	}
	for status, e := range t.byStatus {
		if other, ok := t.byName[e.Name]; ok {
			a, b := min(status, other), max(status, other)
			return nil, fmt.Errorf("%w: %s used by %d and %d", ErrDuplicateName, e.Name, int32(b), int32(a))
		}
		t.byName[e.Name] = status
	}
	return t, nil
}

// Lookup returns the entry for status, if the table knows it.
func (t *Table) Lookup(status Status) (Entry, bool) {
	e, ok := t.byStatus[status]
	return e, ok
}

// Name returns the symbolic name of status, or Status(<n>) when unknown.
func (t *Table) Name(status Status) string {
	if e, ok := t.byStatus[status]; ok {
		return e.Name
	}
	return "Status(" + strconv.FormatInt(int64(status), 10) + ")"
}

// Translate returns a diagnostic message for status. It is total: codes
// missing from the table yield a fallback that carries the numeric value.
func (t *Table) Translate(status Status) string {
	if e, ok := t.byStatus[status]; ok {
		return e.Message()
	}
	return fmt.Sprintf(unrecognizedFormat, int32(status))
}

// Entries returns every entry ordered from Success towards the most
// negative code.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.byStatus))
	for _, e := range t.byStatus {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Status, a.Status)
	})
	return out
}

// Parse resolves s as either a symbolic name (CL_INVALID_VALUE) or an
// integer literal in any base strconv accepts.
func (t *Table) Parse(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if status, ok := t.byName[s]; ok {
		return status, nil
	}
	if status, ok := t.byName[strings.ToUpper(s)]; ok {
		return status, nil
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return Status(n), nil
}

// Translate translates status with the Default table.
func Translate(status Status) string {
	return Default.Translate(status)
}
