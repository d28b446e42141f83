// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

// Package genseq builds synthetic seqbit corpora with controllable run
// structure — long zero-fill spans, long one-fill spans, and noise spans —
// for exercising the query engine's skip optimization and multi-stream AND
// traversal under realistic sparse-bitmap shapes.
package genseq

import (
	"math/rand"

	"github.com/woozymasta/seqbit"
)

// RunShape weights how often each run kind is picked during generation.
type RunShape struct {
	ZeroFillWeight int // weight for a run of 0x00 bytes
	OnesFillWeight int // weight for a run of 0xFF bytes
	NoiseWeight    int // weight for a run of pseudo-random bytes
}

// DefaultRunShape favors sparse bitmaps: mostly zero-fill, occasional noise,
// rare one-fill — the shape the skip optimization is designed for.
func DefaultRunShape() RunShape {
	return RunShape{ZeroFillWeight: 6, OnesFillWeight: 1, NoiseWeight: 3}
}

// Spec configures one generated corpus entry.
type Spec struct {
	Seed         int64
	RunCount     int    // number of runs to string together
	MaxRunLength uint   // each run's length is chosen in [1, MaxRunLength]
	Shape        RunShape
	EncodeLevel  int // passed to seqbit.EncodeOptions; 0 selects level 9
}

// DefaultSpec returns a modest corpus entry: 64 runs of up to 200 bytes
// each, encoded at a level aggressive enough that every generated fill run
// survives as FILL rather than being folded into NOISE.
func DefaultSpec() Spec {
	return Spec{
		Seed:         1,
		RunCount:     64,
		MaxRunLength: 200,
		Shape:        DefaultRunShape(),
		EncodeLevel:  9,
	}
}

// Generate builds one synthetic raw byte sequence per spec and its seqbit
// encoding. raw is the ground truth a decoder/query result can be checked
// against; compressed is what StreamIterator/the query engine consume.
func Generate(spec Spec) (compressed, raw []byte) {
	rng := rand.New(rand.NewSource(spec.Seed))
	shape := spec.Shape
	total := shape.ZeroFillWeight + shape.OnesFillWeight + shape.NoiseWeight
	if total <= 0 {
		shape = DefaultRunShape()
		total = shape.ZeroFillWeight + shape.OnesFillWeight + shape.NoiseWeight
	}

	maxLen := spec.MaxRunLength
	if maxLen == 0 {
		maxLen = 1
	}

	for i := 0; i < spec.RunCount; i++ {
		length := 1 + rng.Intn(int(maxLen))
		pick := rng.Intn(total)

		switch {
		case pick < shape.ZeroFillWeight:
			raw = append(raw, make([]byte, length)...)

		case pick < shape.ZeroFillWeight+shape.OnesFillWeight:
			for j := 0; j < length; j++ {
				raw = append(raw, 0xFF)
			}

		default:
			for j := 0; j < length; j++ {
				raw = append(raw, byte(rng.Intn(256)))
			}
		}
	}

	level := spec.EncodeLevel
	if level == 0 {
		level = 9
	}

	compressed, _ = seqbit.Encode(raw, &seqbit.EncodeOptions{Level: level})
	return compressed, raw
}
