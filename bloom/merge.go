package bloom

import "fmt"

type orMerger interface {
	orBytes(src []byte)
}

// orBytes folds src into the owned buffer. Indicator bytes are 0 or 1 on
// both sides, so the OR keeps the indicator in range.
func (c *filterCore) orBytes(src []byte) {
	for i := range c.data {
		c.data[i] |= src[i]
	}
}

// Merge ORs src into dst: bit arrays and null indicators both. After the
// merge, dst answers "possibly present" for everything either filter was fed.
//
// dst and src must have been built with identical algorithm, strategy,
// options and size; a segment writer that parallelizes row group
// construction builds disjoint filters from the same Options and merges them
// here. Mismatched shapes are rejected with ErrMismatchedFilters.
func Merge(dst, src Filter) error {
	if dst.Algorithm() != src.Algorithm() ||
		dst.Strategy() != src.Strategy() ||
		dst.NumBytes() != src.NumBytes() {
		return fmt.Errorf("%w: (%d,%d,%d) vs (%d,%d,%d)", ErrMismatchedFilters,
			dst.Algorithm(), dst.Strategy(), dst.NumBytes(),
			src.Algorithm(), src.Strategy(), src.NumBytes())
	}
	m, ok := dst.(orMerger)
	if !ok {
		return fmt.Errorf("%w: destination does not support merging", ErrMismatchedFilters)
	}
	m.orBytes(src.Data())
	return nil
}
