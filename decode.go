// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package seqbit

// Decode fully drains a compressed buffer into its raw decompressed bytes.
// It is not one of the three core query operations (LIST/COUNT/EXIST); it
// exists for tests and internal/genseq asserting the decode identity
// property against the reference encoder, where the ground truth is
// "every raw byte", not "every set bit".
func Decode(buf []byte) []byte {
	it := NewStreamIterator(buf)

	out := make([]byte, 0, len(buf))
	for {
		b, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// DecodeFrom fully drains src the way Decode does, reporting
// ErrBufferInaccessible if src's bytes cannot be obtained.
func DecodeFrom(src Buffer) ([]byte, error) {
	buf, err := src.Bytes()
	if err != nil {
		return nil, err
	}
	return Decode(buf), nil
}
