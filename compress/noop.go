package compress

// NoOpCodec is a pass-through codec for payloads stored uncompressed.
//
// It returns its input unchanged, which lets callers handle compressed and
// uncompressed payloads through one code path.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input, so a
// view constructed over it still borrows from the original buffer.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
