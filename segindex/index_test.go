package segindex

import (
	"errors"
	"math/rand"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gavinljj/starrocks/bloom"
)

// Full write-side to read-side cycle at segment scale: build from 100k
// random values, persist through the metadata codec, reload, and require
// 100% recall.
func TestPersistLoadFullRecall(t *testing.T) {
	const n = 100_000
	opts := bloom.Options{FPP: 0.01, Strategy: bloom.HashMurmur3x64_64}

	r := rand.New(rand.NewSource(99))
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = make([]byte, 16)
		r.Read(keys[i])
	}

	w, err := bloom.NewFilter(bloom.BlockSplitBloomFilter, n, opts)
	assert.NilError(t, err)
	for _, k := range keys {
		w.AddBytes(k)
	}
	w.AddBytes(nil)

	meta, data := Persist(w, opts.FPP)
	assert.Equal(t, meta.NumBytes, w.NumBytes())
	assert.Equal(t, len(data), int(w.Size()))

	codec, err := NewCodec()
	assert.NilError(t, err)
	enc, err := codec.EncodeMeta(meta)
	assert.NilError(t, err)
	meta2, err := codec.DecodeMeta(enc)
	assert.NilError(t, err)

	f, err := Load(meta2, data)
	assert.NilError(t, err)
	assert.Assert(t, f.HasNull())
	for i, k := range keys {
		if !f.TestBytes(k) {
			t.Fatalf("false negative for key %d after reload", i)
		}
	}
}

func TestPersistCopiesBytes(t *testing.T) {
	w, err := bloom.NewFilter(bloom.BlockSplitBloomFilter, 100, bloom.DefaultOptions())
	assert.NilError(t, err)
	w.AddBytes([]byte("apple"))

	_, data := Persist(w, bloom.DefaultFPP)
	clear(data)

	// The filter still owns its state.
	assert.Assert(t, w.TestBytes([]byte("apple")))
}

func TestLoadRejectsSizeMismatch(t *testing.T) {
	w, err := bloom.NewFilter(bloom.BlockSplitBloomFilter, 100, bloom.DefaultOptions())
	assert.NilError(t, err)
	meta, data := Persist(w, bloom.DefaultFPP)

	_, err = Load(meta, data[:len(data)-1])
	assert.Assert(t, errors.Is(err, ErrSizeMismatch))

	meta.NumBytes++
	_, err = Load(meta, data)
	assert.Assert(t, errors.Is(err, ErrSizeMismatch))
}

func TestLoadRejectsBadMeta(t *testing.T) {
	w, err := bloom.NewFilter(bloom.BlockSplitBloomFilter, 100, bloom.DefaultOptions())
	assert.NilError(t, err)
	meta, data := Persist(w, bloom.DefaultFPP)

	bad := meta
	bad.FPP = 0
	_, err = Load(bad, data)
	assert.Assert(t, errors.Is(err, ErrBadMeta))

	bad = meta
	bad.Strategy = 9
	_, err = Load(bad, data)
	assert.Assert(t, errors.Is(err, bloom.ErrInvalidStrategy))

	bad = meta
	bad.Algorithm = 9
	_, err = Load(bad, data)
	assert.Assert(t, errors.Is(err, bloom.ErrInvalidAlgorithm))
}

func TestLoadRejectsTamperedIndicator(t *testing.T) {
	w, err := bloom.NewFilter(bloom.BlockSplitBloomFilter, 100, bloom.DefaultOptions())
	assert.NilError(t, err)
	meta, data := Persist(w, bloom.DefaultFPP)

	data[len(data)-1] = 0x7f
	_, err = Load(meta, data)
	assert.Assert(t, errors.Is(err, bloom.ErrInvalidNullByte))
}
