package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// samplePayload builds compressible data resembling an encoded section:
// repetitive structure with small variations.
func samplePayload(size int) []byte {
	data := make([]byte, 0, size)
	for i := 0; len(data) < size; i++ {
		data = append(data, byte(i), byte(i>>8), 0x00, 0x00, byte(i%7), 'a'+byte(i%26))
	}

	return data[:size]
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "None", None.String())
	require.Equal(t, "Zstd", Zstd.String())
	require.Equal(t, "S2", S2.String())
	require.Equal(t, "LZ4", LZ4.String())
	require.Equal(t, "Unknown", Type(0xFF).String())
}

func TestGetCodec(t *testing.T) {
	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(Type(0x99))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		codec, err := CreateCodec(typ, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(Type(0), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload compression")
}

func TestRoundTrip(t *testing.T) {
	payload := samplePayload(16 * 1024)

	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	for _, typ := range []Type{None, Zstd, S2, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestNoOpPassesThrough(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0], "no-op codec must not copy")

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestCompressionReducesSize(t *testing.T) {
	payload := samplePayload(64 * 1024)

	for _, typ := range []Type{Zstd, S2, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, typ := range []Type{Zstd, S2} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}
