// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package seqbit_test

import (
	"testing"

	"github.com/woozymasta/seqbit"
	"github.com/woozymasta/seqbit/internal/genseq"
)

func benchmarkCorpora() map[string]genseq.Spec {
	return map[string]genseq.Spec{
		"sparse-small":   {Seed: 1, RunCount: 64, MaxRunLength: 200, Shape: genseq.DefaultRunShape(), EncodeLevel: 9},
		"sparse-large":   {Seed: 2, RunCount: 512, MaxRunLength: 4000, Shape: genseq.DefaultRunShape(), EncodeLevel: 9},
		"dense-noisy":    {Seed: 3, RunCount: 512, MaxRunLength: 4000, Shape: genseq.RunShape{ZeroFillWeight: 1, OnesFillWeight: 1, NoiseWeight: 8}, EncodeLevel: 9},
		"mostly-onefill": {Seed: 4, RunCount: 256, MaxRunLength: 2000, Shape: genseq.RunShape{ZeroFillWeight: 1, OnesFillWeight: 8, NoiseWeight: 1}, EncodeLevel: 9},
	}
}

func BenchmarkQueryOne(b *testing.B) {
	for name, spec := range benchmarkCorpora() {
		compressed, raw := genseq.Generate(spec)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := seqbit.QueryOne(compressed, uint32(len(raw)*8), seqbit.ModeList); err != nil {
					b.Fatalf("QueryOne failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkQueryAnd(b *testing.B) {
	streamCounts := []int{2, 4, 8, 16}

	for name, spec := range benchmarkCorpora() {
		compressedByStream := make([][]byte, 16)
		var rawLen int
		for i := range compressedByStream {
			s := spec
			s.Seed = spec.Seed*1000 + int64(i)
			var raw []byte
			compressedByStream[i], raw = genseq.Generate(s)
			if len(raw) > rawLen {
				rawLen = len(raw)
			}
		}

		for _, n := range streamCounts {
			bufs := compressedByStream[:n]
			benchName := name + "/" + modeStreamLabel(n)
			b.Run(benchName, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(rawLen))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := seqbit.QueryAnd(bufs, uint32(rawLen*8), seqbit.ModeCount); err != nil {
						b.Fatalf("QueryAnd failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for name, spec := range benchmarkCorpora() {
		compressed, raw := genseq.Generate(spec)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = seqbit.Decode(compressed)
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	for name, spec := range benchmarkCorpora() {
		_, raw := genseq.Generate(spec)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(raw)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := seqbit.Encode(raw, &seqbit.EncodeOptions{Level: 9}); err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
			}
		})
	}
}

func modeStreamLabel(n int) string {
	switch n {
	case 2:
		return "2-streams"
	case 4:
		return "4-streams"
	case 8:
		return "8-streams"
	default:
		return "16-streams"
	}
}
