// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package seqbit decodes a byte-level run-length-encoded bitmap format and
answers queries over one or more such bitmaps: enumerate set-bit indices,
count them, or test for existence. Querying more than one stream computes
their bitwise AND.

The wire format is a sequence of frames, each a control byte (plus optional
extension byte) describing a FILL run (all 0x00 or all 0xFF) or a NOISE run
(verbatim payload bytes). See StreamIterator for the decode state machine.

# Querying

	out, err := seqbit.QueryOne(compressed, 1024, seqbit.ModeList)

	out, err := seqbit.QueryAnd([][]byte{a, b, c}, 1024, seqbit.ModeCount)

EXIST mode short-circuits on the first set bit:

	out, err := seqbit.QueryOne(compressed, 0, seqbit.ModeExist)

# Encoding

Encode is a reference encoder used by tests and the seqbitctl synth
subcommand to produce buffers the decoder round-trips against; the wire
format itself has no canonical encoder, only a canonical decoder.

	compressed, err := seqbit.Encode(raw, seqbit.DefaultEncodeOptions())
*/
package seqbit
