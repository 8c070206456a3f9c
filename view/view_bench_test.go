package view

import (
	"testing"

	"github.com/arloliu/binview/endian"
)

func benchData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}

	return data
}

func BenchmarkReadUint64_Fixed(b *testing.B) {
	data := benchData(64 * 1024)

	b.SetBytes(8)
	b.ResetTimer()

	v := New(data, endian.LittleEndian{})
	for i := 0; i < b.N; i++ {
		if v.Len() < 8 {
			v = New(data, endian.LittleEndian{})
		}
		_, _ = v.ReadUint64()
	}
}

func BenchmarkReadUint64_RunTime(b *testing.B) {
	data := benchData(64 * 1024)

	b.SetBytes(8)
	b.ResetTimer()

	v := New(data, endian.RunTimeLittle())
	for i := 0; i < b.N; i++ {
		if v.Len() < 8 {
			v = New(data, endian.RunTimeLittle())
		}
		_, _ = v.ReadUint64()
	}
}

func BenchmarkSplit(b *testing.B) {
	data := benchData(64 * 1024)

	b.ResetTimer()

	v := New(data, endian.LittleEndian{})
	for i := 0; i < b.N; i++ {
		if v.Len() < 16 {
			v = New(data, endian.LittleEndian{})
		}
		_, _ = v.Split(16)
	}
}

func BenchmarkReadUvarint(b *testing.B) {
	// Two-byte varints back to back
	data := make([]byte, 64*1024)
	for i := 0; i < len(data); i += 2 {
		data[i] = 0xAC
		data[i+1] = 0x02
	}

	b.ResetTimer()

	v := New(data, endian.LittleEndian{})
	for i := 0; i < b.N; i++ {
		if v.Len() < 2 {
			v = New(data, endian.LittleEndian{})
		}
		_, _ = v.ReadUvarint()
	}
}

func BenchmarkFind(b *testing.B) {
	data := benchData(4 * 1024)
	data[len(data)-1] = 0xFF
	v := New(data, endian.LittleEndian{})

	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Find(0xFF)
	}
}
