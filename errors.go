// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package seqbit

import "errors"

// Sentinel errors surfaced by the query engine and the Buffer adapters.
// Callers compare with errors.Is.
var (
	// ErrModeInvalid is returned when mode is not ModeList, ModeCount, or ModeExist.
	ErrModeInvalid = errors.New("seqbit: invalid mode")
	// ErrTooFewStreams is returned by the multi-stream entry point when given < 2 streams.
	ErrTooFewStreams = errors.New("seqbit: too few streams, need at least 2")
	// ErrTooManyStreams is returned when given more than MaxStreams streams.
	ErrTooManyStreams = errors.New("seqbit: too many streams")
	// ErrBufferInaccessible is returned when a supplied Buffer cannot produce its bytes.
	ErrBufferInaccessible = errors.New("seqbit: buffer inaccessible")
	// ErrCapacityExceeded is returned in LIST mode when emissions exceed the declared capacity.
	// Partial results are discarded.
	ErrCapacityExceeded = errors.New("seqbit: capacity exceeded")
	// ErrAllocationFailed is returned when the declared LIST capacity is large enough that
	// allocating its result buffer is refused rather than attempted.
	ErrAllocationFailed = errors.New("seqbit: allocation failed")
)
