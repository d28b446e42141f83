package seqbit

// Mode selects what a query accumulates.
type Mode int

const (
	// ModeList emits an ordered list of set-bit indices.
	ModeList Mode = iota
	// ModeCount emits only the number of set bits.
	ModeCount
	// ModeExist reports whether any bit is set, stopping at the first one found.
	ModeExist
)

func (m Mode) valid() bool {
	return m == ModeList || m == ModeCount || m == ModeExist
}

// Result is the outcome of a query. Only the field matching Mode is meaningful.
type Result struct {
	Mode  Mode
	List  []uint32
	Count uint64
	Exist bool
}

// maxReasonableCapacity bounds the LIST result allocation the way the
// original binding's malloc for its native result array could simply fail
// on a pathological alloc_size; rather than let a huge capacity panic the
// process, sizes above this are rejected up front as ErrAllocationFailed.
const maxReasonableCapacity = 1 << 28

// sink accumulates query output in one of the three modes. Its emit contract
// ("continue or stop") lets the engine's traversal loop stay mode-agnostic.
type sink struct {
	mode     Mode
	capacity uint32
	list     []uint32
	count    uint64
	exist    bool
}

func newSink(mode Mode, capacity uint32) (*sink, error) {
	if !mode.valid() {
		return nil, ErrModeInvalid
	}

	s := &sink{mode: mode, capacity: capacity}
	if mode == ModeList {
		if capacity > maxReasonableCapacity {
			return nil, ErrAllocationFailed
		}
		s.list = make([]uint32, 0, capacity)
	}

	return s, nil
}

// emit records one set-bit index. It returns keepGoing=false when the
// engine should stop the traversal (EXIST just found its first hit), and a
// non-nil error when the declared LIST capacity is exceeded.
func (s *sink) emit(index uint32) (keepGoing bool, err error) {
	switch s.mode {
	case ModeExist:
		s.exist = true
		return false, nil

	case ModeCount:
		s.count++
		return true, nil

	default: // ModeList
		if uint32(len(s.list)) >= s.capacity {
			return false, ErrCapacityExceeded
		}
		s.list = append(s.list, index)
		return true, nil
	}
}

func (s *sink) result() Result {
	return Result{Mode: s.mode, List: s.list, Count: s.count, Exist: s.exist}
}
