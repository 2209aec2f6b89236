package bloom

// classicFilter is the plain k-hash variant: k positions over the whole bit
// array derived by double hashing, bit 0 the least-significant bit of byte 0.
//
// The persisted bytes carry no k, so k is defined as optimalK(fpp) and fpp
// travels in the segment index metadata; writer and reader rederive the same
// value. Probing can touch up to k cache lines, which is why the block split
// variant is the default.
type classicFilter struct {
	filterCore
	k uint8
}

func (f *classicFilter) Algorithm() Algorithm {
	return ClassicBloomFilter
}

func (f *classicFilter) AddBytes(b []byte) {
	if b == nil {
		f.SetHasNull(true)
		return
	}
	f.AddHash(f.hash(b))
}

func (f *classicFilter) TestBytes(b []byte) bool {
	if b == nil {
		return f.HasNull()
	}
	return f.TestHash(f.hash(b))
}

func (f *classicFilter) AddHash(h uint64) {
	mBits := uint64(f.numBytes) * 8
	h1, h2 := h&0xffffffff, h>>32
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % mBits
		f.data[j>>3] |= 1 << (j & 7)
	}
}

func (f *classicFilter) TestHash(h uint64) bool {
	mBits := uint64(f.numBytes) * 8
	h1, h2 := h&0xffffffff, h>>32
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % mBits
		if f.data[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}
