package bloom

import (
	"errors"
	"fmt"
)

// HashStrategy selects the 64-bit hash applied to byte spans before they
// reach the bit array. The tag is persisted in the segment index metadata;
// writer and reader must agree.
type HashStrategy uint8

const (
	// HashMurmur3x64_64 is the low 64 bits of the Murmur3 x64-128 mix,
	// seeded with DefaultSeed. This is the default and the only strategy
	// older segments use.
	HashMurmur3x64_64 HashStrategy = iota

	// HashXXH64 is the (unseeded) XXH64 digest of the span.
	HashXXH64
)

// Algorithm selects the concrete filter variant. The tag is persisted in the
// segment index metadata alongside the strategy.
type Algorithm uint8

const (
	// BlockSplitBloomFilter is the cache-line-blocked variant and the
	// default persisted tag.
	BlockSplitBloomFilter Algorithm = iota

	// ClassicBloomFilter is a two-hash double-hashing variant over the
	// whole bit array.
	ClassicBloomFilter
)

const (
	// DefaultSeed seeds the murmur3 strategy. It comes from date +%s.
	// Filters hashed with different seeds are incompatible; the seed is
	// fixed by the format and never a parameter.
	DefaultSeed uint32 = 1575457558

	// MinimumBytes is the smallest bit array built, one block.
	MinimumBytes uint32 = 32

	// MaximumBytes caps the bit array at half the maximum segment file size.
	MaximumBytes uint32 = 128 * 1024 * 1024

	// BlockBytes is the block width of the block split variant, sized to a
	// cache line's worth of 32-bit words.
	BlockBytes uint32 = 32

	// DefaultFPP is the build-time false positive probability when the
	// caller expresses no preference.
	DefaultFPP = 0.05
)

// ErrInvalidArgument is the kind every construction failure wraps; callers
// that do not care which parameter was bad match on it with errors.Is.
var ErrInvalidArgument = errors.New("bloom: invalid argument")

var (
	ErrInvalidStrategy  = fmt.Errorf("%w: unknown hash strategy", ErrInvalidArgument)
	ErrInvalidAlgorithm = fmt.Errorf("%w: unknown filter algorithm", ErrInvalidArgument)
	ErrInvalidFPP       = fmt.Errorf("%w: fpp must be in (0, 1)", ErrInvalidArgument)
	ErrInvalidCount     = fmt.Errorf("%w: expected element count must be at least 1", ErrInvalidArgument)
	ErrInvalidSize      = fmt.Errorf("%w: stored filter size invalid", ErrInvalidArgument)
	ErrInvalidNullByte  = fmt.Errorf("%w: null indicator byte out of range", ErrInvalidArgument)

	ErrMismatchedFilters = fmt.Errorf("%w: filters differ in algorithm, strategy or size", ErrInvalidArgument)
)

// Options carries the build-time parameters of a filter. The zero value is
// not usable; start from DefaultOptions.
type Options struct {
	// FPP is the target false positive probability, in (0, 1).
	FPP float64

	// Strategy selects the hash applied to byte spans.
	Strategy HashStrategy
}

// DefaultOptions returns the parameters new segments are written with.
func DefaultOptions() Options {
	return Options{FPP: DefaultFPP, Strategy: HashMurmur3x64_64}
}

func checkOptions(opts Options) error {
	if opts.FPP <= 0 || opts.FPP >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFPP, opts.FPP)
	}
	return nil
}
