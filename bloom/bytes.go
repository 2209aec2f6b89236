package bloom

import "encoding/binary"

// The block split layout is defined over little-endian 32-bit words so that
// the persisted bytes are identical across host endianness.

func readWordLE(b []byte) uint32     { return binary.LittleEndian.Uint32(b) }
func writeWordLE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
