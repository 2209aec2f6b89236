package bloom

// Filter is the capability set the segment writer and the scan path consume.
//
// A nil byte slice denotes the null sentinel; an empty non-nil slice is an
// ordinary (zero length) value. Instances are single-owner and
// single-threaded while being written; once frozen, concurrent probes are
// safe because the probe path mutates nothing.
type Filter interface {
	// AddBytes inserts a value. nil records the null sentinel in the
	// indicator byte instead of touching the bit array.
	AddBytes(b []byte)

	// TestBytes reports candidate membership. false means definitely not
	// present; true means possibly present.
	TestBytes(b []byte) bool

	// AddHash and TestHash are the pre-hashed forms used when the caller
	// has already computed the 64-bit code for a span.
	AddHash(h uint64)
	TestHash(h uint64) bool

	// Reset zeroes the bit array and the null indicator, returning the
	// filter to its freshly built state.
	Reset()

	// HasNull and SetHasNull access the null indicator directly, for
	// callers that already know whether a column contains nulls.
	HasNull() bool
	SetHasNull(hasNull bool)

	// Data is a read-only view of the owned buffer, Size() bytes long.
	// Its lifetime is bounded by the filter's.
	Data() []byte

	// NumBytes is the bit array length, always a power of two.
	NumBytes() uint32

	// Size is NumBytes()+1; the final byte is the null indicator.
	Size() uint32

	Algorithm() Algorithm
	Strategy() HashStrategy
}

// filterCore holds the state shared by every variant: the owned buffer with
// its trailing indicator byte, and the resolved hash function.
type filterCore struct {
	// data is numBytes+1 bytes; data[numBytes] is the null indicator.
	data     []byte
	numBytes uint32
	hash     hashFunc
	strategy HashStrategy
}

func newFilterCore(numBytes uint32, hash hashFunc, strategy HashStrategy) filterCore {
	return filterCore{
		data:     make([]byte, numBytes+1),
		numBytes: numBytes,
		hash:     hash,
		strategy: strategy,
	}
}

// loadFilterCore deep copies buf so the persisted bytes remain owned by the
// caller and may be freed immediately.
func loadFilterCore(buf []byte, hash hashFunc, strategy HashStrategy) filterCore {
	data := make([]byte, len(buf))
	copy(data, buf)
	return filterCore{
		data:     data,
		numBytes: uint32(len(buf) - 1),
		hash:     hash,
		strategy: strategy,
	}
}

func (c *filterCore) Reset() {
	clear(c.data)
}

func (c *filterCore) HasNull() bool {
	return c.data[c.numBytes] != 0
}

func (c *filterCore) SetHasNull(hasNull bool) {
	if hasNull {
		c.data[c.numBytes] = 1
	} else {
		c.data[c.numBytes] = 0
	}
}

func (c *filterCore) Data() []byte {
	return c.data
}

func (c *filterCore) NumBytes() uint32 {
	return c.numBytes
}

func (c *filterCore) Size() uint32 {
	return c.numBytes + 1
}

func (c *filterCore) Strategy() HashStrategy {
	return c.strategy
}
