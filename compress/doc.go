// Package compress provides decompression codecs for compressed binary
// payloads, plus the matching compression side for producing them.
//
// Binary-format inputs frequently arrive with individual sections or
// payloads compressed (debug-information sections and archived blobs are
// typical cases). A decoder inflates such a payload into an owned buffer
// once, then wraps that buffer in a view and decodes from it zero-copy.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: pass-through, for payloads stored uncompressed
//   - Zstd: best ratio; gozstd under cgo, klauspost/compress otherwise
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Codecs are selected by Type, typically taken from a format header field:
//
//	codec, err := compress.GetCodec(compress.Zstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(payload)
//
// # Thread Safety
//
// All built-in codecs are stateless values and safe for concurrent use;
// internal encoder and decoder instances are pooled per algorithm.
package compress
