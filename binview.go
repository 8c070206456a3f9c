// Package binview provides zero-copy, endian-aware views over byte buffers
// for building binary-format decoders.
//
// A view is a lightweight value pairing a borrowed byte region with a byte
// order strategy. Decoders wrap their input once, then repeatedly slice,
// bounds-check and decode typed values from it without copying data and
// without risking out-of-bounds access on malformed input.
//
// # Core Features
//
//   - Byte order strategies fixed at compile time or selected at run time
//   - Bounds-checked cursor reads that fail with typed errors, never panic
//   - Unchecked slice-style operations for hot paths with validated bounds
//   - Strict and lossy UTF-8 string conversion
//   - LEB128 variable-length integer reads
//   - xxHash64 content hashing for map keys and deduplication
//   - Optional payload decompression (Zstd, S2, LZ4) before wrapping
//
// # Basic Usage
//
// Decoding a simple length-prefixed record:
//
//	v := binview.NewLittle(data)
//
//	size, err := v.ReadUint32()
//	if err != nil {
//	    return err // truncated input
//	}
//	record, err := v.Split(int(size))
//	if err != nil {
//	    return err
//	}
//	name, err := record.Text()
//
// When the byte order comes from a format header, construct the strategy at
// run time:
//
//	e := endian.RunTimeLittle()
//	if flags&flagBigEndian != 0 {
//	    e = endian.RunTimeBig()
//	}
//	v := view.New(data, e)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the view,
// endian and compress packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package binview

import (
	"github.com/arloliu/binview/compress"
	"github.com/arloliu/binview/endian"
	"github.com/arloliu/binview/view"
)

// NewLittle wraps data in a view with the fixed little-endian strategy.
func NewLittle(data []byte) view.View {
	return view.New(data, endian.LittleEndian{})
}

// NewBig wraps data in a view with the fixed big-endian strategy.
func NewBig(data []byte) view.View {
	return view.New(data, endian.BigEndian{})
}

// NewNative wraps data in a view with a run-time strategy matching the
// host's byte order.
func NewNative(data []byte) view.View {
	return view.New(data, endian.Native())
}

// Decompress inflates a compressed payload with the codec for typ and wraps
// the result in a view with the given strategy.
//
// With compress.None the returned view borrows directly from data; with any
// real codec it reads from a freshly allocated buffer owned by the view's
// backing slice.
func Decompress(data []byte, typ compress.Type, e endian.Endianness) (view.View, error) {
	codec, err := compress.GetCodec(typ)
	if err != nil {
		return view.View{}, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return view.View{}, err
	}

	return view.New(raw, e), nil
}
