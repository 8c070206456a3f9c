package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Compressors pools lz4.Compressor instances; each holds a hash table
// worth reusing across payloads.
var lz4Compressors = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDecompressedSize caps the decompression buffer. Input that claims to
// expand past this is treated as corrupt rather than allocated for.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// LZ4Codec compresses and decompresses payloads with LZ4 block compression.
//
// LZ4 favors decompression speed over ratio, which suits decoders that
// inflate a payload once and then read it many times.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses the input data as a single LZ4 block.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress inflates a single LZ4 block into a freshly allocated buffer.
//
// The block format does not record the decompressed size, so the output
// buffer starts at 4x the input and doubles whenever the library reports it
// was too small, up to lz4MaxDecompressedSize.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		buf := make([]byte, size)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
