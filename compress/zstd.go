package compress

// ZstdCodec compresses and decompresses payloads with Zstandard.
//
// Zstandard gives the best ratio of the supported algorithms at moderate
// speed, making it the usual choice for archived or cold payloads.
//
// Two implementations back this codec, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure-Go builds use klauspost/compress/zstd
//
// Both sides produce standard Zstandard frames, so data compressed by one
// implementation is decompressed by the other.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
