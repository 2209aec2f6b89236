package segindex

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec encodes and decodes Meta records. Encoding is deterministic so that
// identical records produce identical bytes wherever they are written.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) EncodeMeta(m Meta) ([]byte, error) {
	return c.enc.Marshal(m)
}

func (c Codec) DecodeMeta(b []byte) (Meta, error) {
	var m Meta
	if err := c.dec.Unmarshal(b, &m); err != nil {
		return Meta{}, err
	}
	return m, nil
}
