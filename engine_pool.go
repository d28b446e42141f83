package seqbit

import "sync"

// queryScratch holds the per-query engine state that would otherwise be
// allocated fresh on every call: the fixed-size iterator array and the
// per-byte scratch buffer described in the CONCURRENCY & RESOURCE MODEL as
// "the stack-resident iterator array is bounded by MAX_STREAMS = 64". Go
// has no variable-length stack arrays, so a pooled fixed-size array plays
// the same role without a heap allocation per query.
type queryScratch struct {
	iterators [MaxStreams]*StreamIterator
	current   [MaxStreams]byte
}

// queryScratchPool pools queryScratch values across queries.
var queryScratchPool = sync.Pool{
	New: func() any {
		return &queryScratch{}
	},
}

// acquireQueryScratch gets a queryScratch from the pool. Its iterators
// array may hold iterators from a previous query; runQuery rebinds each
// slot via StreamIterator.reset rather than allocating a new one.
func acquireQueryScratch() *queryScratch {
	return queryScratchPool.Get().(*queryScratch)
}

// releaseQueryScratch returns s to the pool.
func releaseQueryScratch(s *queryScratch) {
	if s == nil {
		return
	}
	queryScratchPool.Put(s)
}
