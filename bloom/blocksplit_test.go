package bloom

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Every insert lands in exactly one 32-byte block, one bit per word.
func TestBlockSplitTouchesOneBlock(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		f, err := NewFilter(BlockSplitBloomFilter, 1000, DefaultOptions())
		require.NoError(t, err)
		bs := f.(*blockSplitFilter)

		h := r.Uint64()
		bs.AddHash(h)

		wantBlock := bs.blockOffset(h)
		data := bs.Data()
		for off := uint32(0); off < bs.NumBytes(); off += BlockBytes {
			for w := uint32(0); w < BlockBytes; w += 4 {
				word := readWordLE(data[off+w:])
				if off == wantBlock {
					require.Equal(t, 1, bits.OnesCount32(word),
						"hash %#x block %d word %d", h, off, w/4)
				} else {
					require.Zero(t, word, "hash %#x stray bits in block %d", h, off)
				}
			}
		}
		require.True(t, bs.TestHash(h))
	}
}

// The persisted bit layout is part of the format. With a zero low word every
// salt product is zero, so bit 0 of each of the eight words in the selected
// block is set: bytes off, off+4, ..., off+28 are 0x01.
func TestBlockSplitLayoutIsFixed(t *testing.T) {
	f, err := NewFilter(BlockSplitBloomFilter, 1000, DefaultOptions())
	require.NoError(t, err)
	bs := f.(*blockSplitFilter)
	require.Equal(t, uint32(1024), bs.NumBytes())

	h := uint64(1) << 32 // block 1, key 0
	bs.AddHash(h)

	data := bs.Data()
	for i, b := range data[:bs.NumBytes()] {
		switch {
		case i >= 32 && i < 64 && i%4 == 0:
			require.Equal(t, byte(0x01), b, "byte %d", i)
		default:
			require.Zero(t, b, "byte %d", i)
		}
	}
}

func TestBlockSplitDistinctHashesAccumulate(t *testing.T) {
	f, err := NewFilter(BlockSplitBloomFilter, 100, DefaultOptions())
	require.NoError(t, err)

	hashes := []uint64{0, 1, 1 << 32, 0xdeadbeefcafef00d, ^uint64(0)}
	for _, h := range hashes {
		f.AddHash(h)
	}
	for _, h := range hashes {
		require.True(t, f.TestHash(h))
	}
}
