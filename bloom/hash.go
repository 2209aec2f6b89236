package bloom

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

type hashFunc func(b []byte) uint64

// hasherFor resolves a strategy tag to its hash function.
//
// The murmur3 strategy is the low word of the x64-128 mix seeded with
// DefaultSeed. The xxh64 strategy is defined as the unseeded digest; the
// strategy tag, not a seed, is the compatibility contract. Hashing an empty
// (non-nil) span is well-defined for both; the null sentinel never reaches a
// hash function.
func hasherFor(strategy HashStrategy) (hashFunc, error) {
	switch strategy {
	case HashMurmur3x64_64:
		return func(b []byte) uint64 { return murmur3.Sum64WithSeed(b, DefaultSeed) }, nil
	case HashXXH64:
		return xxhash.Sum64, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, strategy)
	}
}
