// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package seqbit

// StreamIterator is a single-pass, non-restartable cursor over one
// compressed buffer. It borrows buf for its entire lifetime: the caller
// must not mutate buf while the iterator is in use, and must not let the
// iterator outlive buf.
//
// Terminology follows the DATA MODEL: a "run" is a maximal span the control
// byte encodes (FILL or NOISE); "pos" is the byte offset of the next control
// byte to parse, or — while draining a NOISE run — the offset of the next
// payload byte to return.
type StreamIterator struct {
	buf       []byte
	pos       int
	kind      runKind
	fillValue byte
	remaining uint
	exhausted bool
}

// NewStreamIterator opens an iterator over buf, parsing its first control
// byte. An empty buf yields an iterator that is born exhausted.
func NewStreamIterator(buf []byte) *StreamIterator {
	it := &StreamIterator{buf: buf}
	it.advance()
	return it
}

// reset rebinds it to a new buffer, reusing its allocation. Used by the
// query engine's scratch pool to avoid allocating one *StreamIterator per
// stream per query.
func (it *StreamIterator) reset(buf []byte) {
	it.buf = buf
	it.pos = 0
	it.kind = 0
	it.fillValue = 0
	it.remaining = 0
	it.exhausted = false
	it.advance()
}

// advance parses control bytes until it lands on a run with remaining > 0,
// or the stream is exhausted. A zero-length run (explicitly legal per the
// wire format) is therefore never observable as the iterator's current run:
// parsing simply continues to the next frame, matching the invariant that
// remaining_in_run > 0 whenever the iterator is not exhausted.
func (it *StreamIterator) advance() {
	for !it.exhausted {
		f, consumed, ok := parseControlByte(it.buf, it.pos)
		if !ok {
			it.exhausted = true
			return
		}

		it.pos += consumed
		it.kind = f.kind
		it.fillValue = f.fillValue
		it.remaining = f.length

		if it.remaining > 0 {
			return
		}
	}
}

// Next returns the next raw byte, or ok=false if the iterator is exhausted
// (including becoming exhausted mid-call, on a NOISE run whose payload runs
// past the end of buf).
func (it *StreamIterator) Next() (b byte, ok bool) {
	if it.exhausted {
		return 0, false
	}

	if it.kind == runNoise {
		if it.pos >= len(it.buf) {
			it.exhausted = true
			return 0, false
		}
		b = it.buf[it.pos]
	} else {
		b = it.fillValue
	}

	it.Seek(1)
	return b, true
}

// Seek advances the logical cursor by n raw bytes without producing them,
// spanning run boundaries as needed. It is a no-op on an already-exhausted
// iterator. seek(k) followed by Next is equivalent to k+1 successive Next
// calls.
func (it *StreamIterator) Seek(n uint) {
	if it.exhausted {
		return
	}

	for it.remaining < n {
		n -= it.remaining
		if it.kind == runNoise {
			it.pos += int(it.remaining)
		}
		it.remaining = 0

		it.advance()
		if it.exhausted {
			return
		}
	}

	it.remaining -= n
	if it.kind == runNoise {
		it.pos += int(n)
	}

	if it.remaining == 0 {
		it.advance()
	}
}

// SkippableBytes returns the number of remaining bytes in the current run
// that are known to be zero without inspecting buf — the query engine's
// fast-forward hint. It is 0 unless the current run is FILL with fill value
// 0x00.
func (it *StreamIterator) SkippableBytes() uint {
	if it.exhausted || it.kind != runFill || it.fillValue != fillZero {
		return 0
	}
	return it.remaining
}

// Exhausted reports whether the iterator has no more raw bytes to produce.
func (it *StreamIterator) Exhausted() bool {
	return it.exhausted
}
