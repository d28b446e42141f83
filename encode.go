// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package seqbit

// EncodeOptions configures the reference encoder.
type EncodeOptions struct {
	// Level: 0 or 1 = fast greedy encoding; 2–9 tolerate progressively
	// shorter FILL runs before falling back to NOISE, trading a little
	// encode time for a smaller buffer.
	Level int
}

// DefaultEncodeOptions returns options for fast encoding (level 1).
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{Level: 1}
}

// Encode produces a seqbit compressed buffer that decodes back to data.
// This is not part of the core contract (the wire format has exactly one
// canonical decoder and no canonical encoder); it exists to give tests, the
// synthetic corpus generator, and the seqbitctl CLI something to round-trip
// against. opts may be nil (uses level 1).
func Encode(data []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	level := opts.Level
	if level <= 1 {
		return encodeWithParams(data, encodeLevelParams{minFillRun: 4}), nil
	}

	return encodeWithParams(data, levelParamsFor(level)), nil
}

// encodeWithParams scans data left to right, emitting a FILL frame for any
// maximal run of identical 0x00/0xFF bytes at least minFillRun long, and a
// NOISE frame for everything else. Runs longer than the wire format's
// per-kind long-form limit are split across consecutive frames of the same
// kind.
func encodeWithParams(data []byte, params encodeLevelParams) []byte {
	var out []byte

	i := 0
	for i < len(data) {
		b := data[i]
		runLen := runLength(data, i)

		if (b == fillZero || b == fillOnes) && uint(runLen) >= params.minFillRun {
			out = appendFillRun(out, b, runLen)
			i += runLen
			continue
		}

		start := i
		for i < len(data) {
			bb := data[i]
			if (bb == fillZero || bb == fillOnes) && uint(runLength(data, i)) >= params.minFillRun {
				break
			}
			i++
		}
		out = appendNoiseRun(out, data[start:i])
	}

	return out
}

// runLength returns the length of the maximal run of bytes equal to
// data[i] starting at i.
func runLength(data []byte, i int) int {
	b := data[i]
	j := i + 1
	for j < len(data) && data[j] == b {
		j++
	}
	return j - i
}

// appendFillRun appends one or more FILL frames covering length bytes of
// value fillValue, splitting at maxFillLongLength.
func appendFillRun(dst []byte, fillValue byte, length int) []byte {
	for length > 0 {
		chunk := length
		if chunk > maxFillLongLength {
			chunk = maxFillLongLength
		}
		dst = appendControlByte(dst, runFill, fillValue, uint(chunk), nil)
		length -= chunk
	}
	return dst
}

// appendNoiseRun appends one or more NOISE frames covering payload
// verbatim, splitting at maxNoiseLongLength.
func appendNoiseRun(dst []byte, payload []byte) []byte {
	for len(payload) > 0 {
		chunk := len(payload)
		if chunk > maxNoiseLongLength {
			chunk = maxNoiseLongLength
		}
		dst = appendControlByte(dst, runNoise, 0, uint(chunk), payload[:chunk])
		payload = payload[chunk:]
	}
	return dst
}
