package bloom

// blockSalts derive the eight in-block bit positions from the low 32 bits of
// the hash. These are the split block bloom filter salts from the Impala /
// Parquet design; they are part of the BlockSplitBloomFilter format and must
// never change.
var blockSalts = [8]uint32{
	0x47b6137b, 0x44974d91, 0x8824ad5b, 0xa2b7289d,
	0x705495c7, 0x2df1424b, 0x9efc4947, 0x5c6bfb31,
}

// blockSplitFilter partitions the bit array into 32-byte blocks of eight
// 32-bit words. The high half of the hash picks the block, the low half is
// multiplied by each salt and the top five bits of the product pick one bit
// in the corresponding word. Every insert and probe touches exactly one
// block, so the memory cost per operation is one cache line no matter how
// large the array grows.
type blockSplitFilter struct {
	filterCore
}

func (f *blockSplitFilter) Algorithm() Algorithm {
	return BlockSplitBloomFilter
}

func (f *blockSplitFilter) AddBytes(b []byte) {
	if b == nil {
		f.SetHasNull(true)
		return
	}
	f.AddHash(f.hash(b))
}

func (f *blockSplitFilter) TestBytes(b []byte) bool {
	if b == nil {
		return f.HasNull()
	}
	return f.TestHash(f.hash(b))
}

func (f *blockSplitFilter) AddHash(h uint64) {
	block := f.blockOffset(h)
	key := uint32(h)
	for i, salt := range blockSalts {
		word := block + uint32(i)*4
		bit := (salt * key) >> 27
		writeWordLE(f.data[word:], readWordLE(f.data[word:])|1<<bit)
	}
}

func (f *blockSplitFilter) TestHash(h uint64) bool {
	block := f.blockOffset(h)
	key := uint32(h)
	for i, salt := range blockSalts {
		word := block + uint32(i)*4
		bit := (salt * key) >> 27
		if readWordLE(f.data[word:])&(1<<bit) == 0 {
			return false
		}
	}
	return true
}

// blockOffset picks a block with the high 32 bits of the hash; the low 32
// bits are reserved for the in-block positions.
func (f *blockSplitFilter) blockOffset(h uint64) uint32 {
	numBlocks := f.numBytes / BlockBytes
	return (uint32(h>>32) % numBlocks) * BlockBytes
}
