package bloom

import (
	"math"
	"math/bits"
)

// optimalNumBytes sizes the bit array for n expected distinct elements at the
// target false positive probability:
//
//	mBits = ceil(-n * ln(fpp) / ln(2)^2)
//
// The byte count is mBits/8 rounded up to the next power of two, clamped to
// [MinimumBytes, MaximumBytes]. The clamp is silent: the filter is still
// correct, merely looser or tighter than requested.
//
// The caller is responsible for n >= 1 and fpp in (0, 1); checkOptions can be
// used to check the latter.
func optimalNumBytes(n uint64, fpp float64) uint32 {
	mBits := math.Ceil(-float64(n) * math.Log(fpp) / (math.Ln2 * math.Ln2))
	b := nextPow2(uint64(math.Ceil(mBits / 8)))
	if b < uint64(MinimumBytes) {
		return MinimumBytes
	}
	if b > uint64(MaximumBytes) {
		return MaximumBytes
	}
	return uint32(b)
}

// optimalK is the hash count of the classic variant for the target fpp,
// round(-log2(fpp)) clamped to [1, 32]. It depends only on fpp so that the
// probe path can rederive it from the segment index metadata.
func optimalK(fpp float64) uint8 {
	k := int(math.Round(-math.Log2(fpp)))
	if k < 1 {
		k = 1
	}
	if k > 32 {
		k = 32
	}
	return uint8(k)
}

func nextPow2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << (64 - bits.LeadingZeros64(v-1))
}

func isPow2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
