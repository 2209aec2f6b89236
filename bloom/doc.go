package bloom

/*

# Segment Bloom filters (null-aware, block split)

This package implements the probabilistic membership index a column segment
carries so that scans can prune row groups without touching the data pages.

The package style is deliberate:

- small, composable functions
- explicit byte layouts
- sentinel errors surfaced at construction, infallible hot paths

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be
  present (false positives are possible).

A false positive is not an error; the scan confirms candidates against the
underlying pages. Bloom filters prove nothing, they only save I/O.

## Byte layout

A filter owns numBytes+1 bytes, where numBytes is always a power of two:

	+----------------------+  numBytes (bit array)
	| bit array            |
	+----------------------+  1 byte
	| null indicator       |  0x00 = no null observed, 0x01 = null observed
	+----------------------+

The trailing indicator byte answers membership for the null sentinel without
consuming bit-array capacity, so the no-false-negative property is exact for
null. The whole numBytes+1 bytes are what the segment writer persists; the
algorithm tag, hash strategy tag and expected sizes travel in the segment
index metadata (see the segindex package), never inside the byte array.

## Variants

Two variants share the layout above and are selected by an Algorithm tag:

  - BlockSplitBloomFilter (default): the bit array is partitioned into
    32-byte blocks and every insert or probe touches exactly one block, so
    the cost per operation is one cache line regardless of numBytes.
  - ClassicBloomFilter: two-hash double hashing over the whole bit array,
    LSB0 bit numbering.

The salts of the block split variant and the k derivation of the classic
variant are part of the persisted format; changing either is a format break,
as is changing the hash seed.

*/
