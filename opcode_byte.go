// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package seqbit

// Control-byte codec: parses a single control byte (plus optional extension
// byte) into a run descriptor, and packs a run descriptor back into its wire
// form for the reference encoder.

// runKind discriminates the two frame encodings a control byte can select.
type runKind uint8

const (
	runFill runKind = iota
	runNoise
)

// frame is a transient run descriptor produced by parseControlByte. It never
// outlives the StreamIterator call that produced it.
type frame struct {
	kind      runKind
	fillValue byte // valid only when kind == runFill
	length    uint
}

// parseControlByte parses the control byte (and, if present, its extension
// byte) at buf[pos]. It returns the decoded frame, the number of bytes
// consumed (1 for short form, 2 for long form), and ok=false if the control
// byte or its required extension byte lies at or past the end of buf.
//
// A truncated control sequence is not treated as malformed input: the caller
// (StreamIterator) marks itself exhausted from that point forward without
// ever indexing past len(buf).
func parseControlByte(buf []byte, pos int) (f frame, consumed int, ok bool) {
	if pos >= len(buf) {
		return frame{}, 0, false
	}

	b := buf[pos]

	if b&kindBitMask != 0 {
		length := uint(b & noiseLengthMask)
		if b&noiseLongFlagMask == 0 {
			return frame{kind: runNoise, length: length}, 1, true
		}

		if pos+1 >= len(buf) {
			return frame{}, 0, false
		}

		length = (length << 8) | uint(buf[pos+1])
		return frame{kind: runNoise, length: length}, 2, true
	}

	fillValue := fillZero
	if b&fillValueBitMask != 0 {
		fillValue = fillOnes
	}

	length := uint(b & fillLengthMask)
	if b&fillLongFlagMask == 0 {
		return frame{kind: runFill, fillValue: fillValue, length: length}, 1, true
	}

	if pos+1 >= len(buf) {
		return frame{}, 0, false
	}

	length = (length << 8) | uint(buf[pos+1])
	return frame{kind: runFill, fillValue: fillValue, length: length}, 2, true
}

// appendControlByte appends the wire-form control sequence (and, for NOISE
// runs, the verbatim payload) for one run to dst and returns the grown slice.
// The caller guarantees length fits the kind's max length (callers split
// longer runs into multiple frames; see encode.go).
func appendControlByte(dst []byte, k runKind, fillValue byte, length uint, payload []byte) []byte {
	switch k {
	case runFill:
		selector := byte(0)
		if fillValue == fillOnes {
			selector = 1
		}

		if length <= maxFillShortLength {
			return append(dst, selector<<6|byte(length))
		}

		return append(dst, fillLongFlagMask|selector<<6|byte(length>>8), byte(length))

	default: // runNoise
		if length <= maxNoiseShortLength {
			dst = append(dst, kindBitMask|byte(length))
		} else {
			dst = append(dst, kindBitMask|noiseLongFlagMask|byte(length>>8), byte(length))
		}

		return append(dst, payload...)
	}
}
