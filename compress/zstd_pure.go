//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Pure-Go builds back ZstdCodec with klauspost/compress. Its coders carry
// internal state that is expensive to set up and cheap to reuse, so both
// directions draw from a pool instead of constructing per call.

var zstdDecoders = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// only reachable with invalid options
			panic(fmt.Sprintf("zstd decoder init: %v", err))
		}
		return d
	},
}

var zstdEncoders = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// only reachable with invalid options
			panic(fmt.Sprintf("zstd encoder init: %v", err))
		}
		return e
	},
}

// Compress compresses the input data as a Zstandard frame.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	e := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(e)

	// EncodeAll keeps no reference to its arguments, so the encoder can go
	// straight back to the pool.
	return e.EncodeAll(data, nil), nil
}

// Decompress inflates a Zstandard frame into a freshly allocated buffer.
//
// Corrupted input, or input produced by a different algorithm, fails frame
// validation and returns an error.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d := zstdDecoders.Get().(*zstd.Decoder)
	defer zstdDecoders.Put(d)

	// A failed DecodeAll leaves the decoder reusable, so it is returned to
	// the pool either way.
	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
