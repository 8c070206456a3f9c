package compress

import "fmt"

// Type identifies a compression algorithm, typically recorded in a format
// header alongside the payload it applies to.
type Type uint8

const (
	None Type = 0x1 // None represents no compression.
	Zstd Type = 0x2 // Zstd represents Zstandard compression.
	S2   Type = 0x3 // S2 represents S2 compression.
	LZ4  Type = 0x4 // LZ4 represents LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor inflates a complete compressed payload.
//
// This is the interface binary decoders consume: a compressed section is
// inflated into an owned buffer before any cursor is constructed over it.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been compressed with the same algorithm. The
	// decompressor validates the data format and returns an error if the
	// data is corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - typ: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(typ Type, target string) (Codec, error) {
	switch typ {
	case None:
		return NewNoOpCodec(), nil
	case Zstd:
		return NewZstdCodec(), nil
	case S2:
		return NewS2Codec(), nil
	case LZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, typ)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(typ Type) (Codec, error) {
	if codec, ok := builtinCodecs[typ]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", typ)
}
