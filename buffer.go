package seqbit

import (
	"fmt"
	"io"
)

// Buffer is a borrowable byte view: the engine's equivalent of accepting
// "anything exposing a buffer protocol" rather than one concrete wrapper
// type, restored from the original bindings' willingness to accept any
// buffer-protocol object or iterable of them.
type Buffer interface {
	// Bytes returns the view's bytes, or ErrBufferInaccessible (wrapped)
	// if the view cannot be obtained.
	Bytes() ([]byte, error)
}

// byteSliceBuffer adapts a plain []byte to Buffer at zero cost.
type byteSliceBuffer []byte

func (b byteSliceBuffer) Bytes() ([]byte, error) { return b, nil }

// BytesBuffer wraps a []byte the caller already holds in memory.
func BytesBuffer(b []byte) Buffer { return byteSliceBuffer(b) }

// readerBuffer lazily materializes its bytes by draining an io.Reader.
type readerBuffer struct {
	r       io.Reader
	b       []byte
	drained bool
}

// ReaderBuffer wraps an io.Reader as a Buffer. The reader is drained in
// full the first time Bytes is called; a read error is reported as
// ErrBufferInaccessible.
func ReaderBuffer(r io.Reader) Buffer { return &readerBuffer{r: r} }

func (rb *readerBuffer) Bytes() ([]byte, error) {
	if rb.drained {
		return rb.b, nil
	}
	b, err := io.ReadAll(rb.r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBufferInaccessible, err)
	}
	rb.b, rb.drained = b, true
	return b, nil
}
