// Package segindex carries a column segment's bloom filter entries: the raw
// filter bytes next to a small CBOR metadata record naming the algorithm,
// hash strategy and expected sizes. The record lives outside the byte array
// so that the load path can assert size = numBytes+1 before rehydrating.
package segindex

import (
	"errors"

	"github.com/gavinljj/starrocks/bloom"
)

var (
	ErrSizeMismatch = errors.New("segindex: stored filter size does not match metadata")
	ErrBadMeta      = errors.New("segindex: metadata record invalid")
)

// Meta is the metadata record persisted alongside the filter bytes. Integer
// keys keep the encoding compact and stable; new fields take new keys.
type Meta struct {
	Algorithm bloom.Algorithm    `cbor:"1,keyasint"`
	Strategy  bloom.HashStrategy `cbor:"2,keyasint"`

	// NumBytes is the bit array length the bytes were written with; the
	// stored buffer must be exactly NumBytes+1 long.
	NumBytes uint32 `cbor:"3,keyasint"`

	// FPP is the false positive probability the filter was sized for. The
	// classic variant rederives its hash count from it on the probe path.
	FPP float64 `cbor:"4,keyasint"`
}
