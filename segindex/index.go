package segindex

import (
	"fmt"

	"github.com/gavinljj/starrocks/bloom"
)

// Persist returns the metadata record and a copy of the filter bytes for the
// segment writer to flush. fpp is the probability the filter was built with;
// it travels in the record, not in the bytes.
func Persist(f bloom.Filter, fpp float64) (Meta, []byte) {
	data := make([]byte, f.Size())
	copy(data, f.Data())
	return Meta{
		Algorithm: f.Algorithm(),
		Strategy:  f.Strategy(),
		NumBytes:  f.NumBytes(),
		FPP:       fpp,
	}, data
}

// Load rehydrates a probe-side filter from a metadata record and the stored
// bytes. The buffer must be exactly m.NumBytes+1 long and m.NumBytes a power
// of two; tag validation and the indicator byte range check happen in
// bloom.LoadFilter. buf remains owned by the caller.
func Load(m Meta, buf []byte) (bloom.Filter, error) {
	if uint64(len(buf)) != uint64(m.NumBytes)+1 {
		return nil, fmt.Errorf("%w: got %d bytes, metadata expects %d",
			ErrSizeMismatch, len(buf), uint64(m.NumBytes)+1)
	}
	if m.FPP <= 0 || m.FPP >= 1 {
		return nil, fmt.Errorf("%w: fpp %v", ErrBadMeta, m.FPP)
	}
	return bloom.LoadFilter(m.Algorithm, buf, bloom.Options{FPP: m.FPP, Strategy: m.Strategy})
}
