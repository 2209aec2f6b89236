package bloom

import "fmt"

// NewFilter builds a writable filter sized for n expected distinct elements
// at opts.FPP. The buffer is zero-filled, NumBytes()+1 bytes, NumBytes() a
// power of two in [MinimumBytes, MaximumBytes].
//
// Unknown algorithm or strategy tags, n == 0 and fpp outside (0, 1) are
// rejected; all returned errors wrap ErrInvalidArgument. Once NewFilter
// succeeds the filter is infallible.
func NewFilter(algorithm Algorithm, n uint64, opts Options) (Filter, error) {
	hash, err := hasherFor(opts.Strategy)
	if err != nil {
		return nil, err
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrInvalidCount
	}

	numBytes := optimalNumBytes(n, opts.FPP)
	core := newFilterCore(numBytes, hash, opts.Strategy)

	switch algorithm {
	case BlockSplitBloomFilter:
		return &blockSplitFilter{filterCore: core}, nil
	case ClassicBloomFilter:
		return &classicFilter{filterCore: core, k: optimalK(opts.FPP)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, algorithm)
	}
}

// LoadFilter rehydrates a probe-side filter from persisted bytes. buf is the
// full numBytes+1 bytes written by the segment writer; it is deep copied, so
// the caller keeps ownership of its slice.
//
// len(buf) must be at least 2 and len(buf)-1 a power of two no larger than
// MaximumBytes; the block split variant additionally requires at least one
// whole block. A null indicator byte other than 0x00 or 0x01 means the
// stored bytes are corrupt and is rejected.
func LoadFilter(algorithm Algorithm, buf []byte, opts Options) (Filter, error) {
	hash, err := hasherFor(opts.Strategy)
	if err != nil {
		return nil, err
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	if len(buf) <= 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidSize, len(buf))
	}
	numBytes := uint64(len(buf) - 1)
	if !isPow2(numBytes) || numBytes > uint64(MaximumBytes) {
		return nil, fmt.Errorf("%w: num bytes %d", ErrInvalidSize, numBytes)
	}
	if indicator := buf[numBytes]; indicator > 1 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidNullByte, indicator)
	}

	core := loadFilterCore(buf, hash, opts.Strategy)

	switch algorithm {
	case BlockSplitBloomFilter:
		if numBytes < uint64(BlockBytes) {
			return nil, fmt.Errorf("%w: num bytes %d below block size", ErrInvalidSize, numBytes)
		}
		return &blockSplitFilter{filterCore: core}, nil
	case ClassicBloomFilter:
		return &classicFilter{filterCore: core, k: optimalK(opts.FPP)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, algorithm)
	}
}
