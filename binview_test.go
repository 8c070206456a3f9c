package binview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binview/compress"
	"github.com/arloliu/binview/endian"
)

func TestNewLittle(t *testing.T) {
	v := NewLittle([]byte{0x01, 0x02})

	require.Equal(t, endian.LittleEndian{}, v.Endianness())

	u, err := v.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), u)
}

func TestNewBig(t *testing.T) {
	v := NewBig([]byte{0x01, 0x02})

	require.Equal(t, endian.BigEndian{}, v.Endianness())

	u, err := v.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), u)
}

func TestNewNative(t *testing.T) {
	v := NewNative([]byte{0x01, 0x02})

	require.Equal(t, endian.Native(), v.Endianness())

	u, err := v.ReadUint16()
	require.NoError(t, err)
	if endian.IsNativeLittleEndian() {
		require.Equal(t, uint16(0x0201), u)
	} else {
		require.Equal(t, uint16(0x0102), u)
	}
}

func TestDecompress(t *testing.T) {
	// Repetitive payload so every block codec actually compresses it.
	payload := bytes.Repeat([]byte{0x00, 0x01}, 512)

	for _, typ := range []compress.Type{compress.None, compress.Zstd, compress.S2, compress.LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(typ)
			require.NoError(t, err)

			stored, err := codec.Compress(payload)
			require.NoError(t, err)

			v, err := Decompress(stored, typ, endian.RunTimeBig())
			require.NoError(t, err)
			require.Equal(t, payload, v.Bytes())

			u, err := v.ReadUint16()
			require.NoError(t, err)
			require.Equal(t, uint16(1), u, "view decodes with the requested strategy")
		})
	}
}

func TestDecompress_UnknownType(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3}, compress.Type(0x7E), endian.LittleEndian{})
	require.Error(t, err)
}

func TestDecompress_CorruptedPayload(t *testing.T) {
	_, err := Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF}, compress.Zstd, endian.LittleEndian{})
	require.Error(t, err)
}
