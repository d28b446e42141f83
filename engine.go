package seqbit

// MaxStreams is the largest number of streams a single query may combine.
const MaxStreams = 64

// QueryOne runs a single-stream query over buf.
func QueryOne(buf []byte, capacity uint32, mode Mode) (Result, error) {
	return QueryOneBuffer(BytesBuffer(buf), capacity, mode)
}

// QueryOneBuffer runs a single-stream query over a Buffer.
func QueryOneBuffer(src Buffer, capacity uint32, mode Mode) (Result, error) {
	buf, err := src.Bytes()
	if err != nil {
		return Result{}, err
	}
	return runQuery([][]byte{buf}, mode, capacity)
}

// QueryAnd runs a query over the bitwise AND of 2..MaxStreams buffers.
func QueryAnd(bufs [][]byte, capacity uint32, mode Mode) (Result, error) {
	srcs := make([]Buffer, len(bufs))
	for i, b := range bufs {
		srcs[i] = BytesBuffer(b)
	}
	return QueryAndBuffer(srcs, capacity, mode)
}

// QueryAndBuffer runs a query over the bitwise AND of 2..MaxStreams Buffers.
func QueryAndBuffer(srcs []Buffer, capacity uint32, mode Mode) (Result, error) {
	if len(srcs) < 2 {
		return Result{}, ErrTooFewStreams
	}
	if len(srcs) > MaxStreams {
		return Result{}, ErrTooManyStreams
	}

	bufs := make([][]byte, len(srcs))
	for i, src := range srcs {
		b, err := src.Bytes()
		if err != nil {
			return Result{}, err
		}
		bufs[i] = b
	}

	return runQuery(bufs, mode, capacity)
}

// runQuery drives one iterator per buffer in lock-step: at each byte
// position it ANDs and ORs the streams' current bytes; when every current
// byte is zero it fast-forwards all streams by the longest zero-fill
// remainder any one stream reports (the AND is zero there whatever the
// other streams hold); and it emits the AND byte's set-bit indices in
// strictly ascending order.
//
// A stream other than stream 0 exhausting early does not stop the
// traversal: its byte is treated as 0xFF from that point on, the neutral
// element for AND (so it stops constraining the result) and a value that
// permanently disables the skip optimization for that byte position
// onward (OR can no longer read 0 once any stream contributes 0xFF).
// Stream 0 exhausting ends the traversal — this is how the engine detects
// streams of mismatched decompressed length.
func runQuery(bufs [][]byte, mode Mode, capacity uint32) (Result, error) {
	sk, err := newSink(mode, capacity)
	if err != nil {
		return Result{}, err
	}

	scratch := acquireQueryScratch()
	defer releaseQueryScratch(scratch)

	n := len(bufs)
	iterators := scratch.iterators[:n]
	current := scratch.current[:n]
	for i, b := range bufs {
		if iterators[i] == nil {
			iterators[i] = NewStreamIterator(b)
		} else {
			iterators[i].reset(b)
		}
	}

	var byteIndex uint64

	for {
		done := false
		for i, it := range iterators {
			b, ok := it.Next()
			if !ok {
				if i == 0 {
					done = true
					break
				}
				b = fillOnes
			}
			current[i] = b
		}
		if done {
			break
		}

		andByte := current[0]
		orByte := current[0]
		for i := 1; i < n; i++ {
			andByte &= current[i]
			orByte |= current[i]
		}

		if orByte == 0 {
			var skip uint
			for _, it := range iterators {
				if s := it.SkippableBytes(); s > skip {
					skip = s
				}
			}
			if skip > 0 {
				byteIndex += uint64(skip)
				for _, it := range iterators {
					it.Seek(skip)
				}
			}
		}

		if andByte != 0 {
			for bit := 7; bit >= 0; bit-- {
				if andByte&(1<<uint(bit)) == 0 {
					continue
				}

				idx := uint32(byteIndex)*8 + uint32(7-bit)
				keepGoing, emitErr := sk.emit(idx)
				if emitErr != nil {
					return Result{}, emitErr
				}
				if !keepGoing {
					return sk.result(), nil
				}
			}
		}

		byteIndex++
	}

	return sk.result(), nil
}
