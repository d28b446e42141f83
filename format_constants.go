// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package seqbit

// Wire-format bit layout for seqbit frames: FILL/NOISE discrimination bit,
// fill-value selector, long-flag, and the short/long length bounds each
// encoding supports.

// Control-byte bit masks, MSB first.
const (
	kindBitMask       = 0x80 // c[7]: 0 = FILL, 1 = NOISE
	fillValueBitMask  = 0x40 // FILL c[6]: fill value selector
	fillLongFlagMask  = 0x20 // FILL c[5]: long-flag
	fillLengthMask    = 0x1f // FILL c[4:0]: length (or length-high if long)
	noiseLongFlagMask = 0x40 // NOISE c[6]: long-flag
	noiseLengthMask   = 0x3f // NOISE c[5:0]: length (or length-high if long)
)

// Length bounds per the wire format.
const (
	maxFillShortLength  = 31
	maxFillLongLength   = 8191
	maxNoiseShortLength = 63
	maxNoiseLongLength  = 16383
)

// Fill values selectable via the FILL fill-value bit.
const (
	fillZero byte = 0x00
	fillOnes byte = 0xFF
)
