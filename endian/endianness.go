// Package endian provides byte order strategies for binary decoding.
//
// The Endianness interface exposes the minimal set of operations a binary
// decoder needs: decode 16/32/64-bit unsigned and signed integers, encode a
// 64-bit unsigned integer, and report the byte order. Three strategies
// implement it:
//
//   - LittleEndian: fixed little-endian order, known at compile time.
//   - BigEndian: fixed big-endian order, known at compile time.
//   - RunTimeEndian: order selected at construction, typically from a format
//     header field or the host platform.
//
// # Choosing a strategy
//
// When the byte order is known when the code is written, use the fixed
// strategies directly:
//
//	e := endian.LittleEndian{}
//	value := e.Uint32(data)
//
// When the order comes from format metadata, construct a run-time strategy:
//
//	e := endian.RunTimeBig()
//
// The fixed strategies compile down to direct calls into encoding/binary with
// no branching; the run-time strategy pays one branch per multi-byte read.
//
// # Thread Safety
//
// All strategies are immutable values and safe for concurrent use. They are
// comparable, and two strategies compare equal only when they have the same
// concrete type and order.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Endianness decodes raw bytes into integers according to a byte order.
//
// The decode methods interpret exactly 2, 4 or 8 bytes at the front of the
// given slice. They panic when the slice is too short; callers are expected
// to perform a length check first. These are pure functions with no error
// path, which keeps them out of the hot-path error handling entirely.
type Endianness interface {
	// IsBigEndian reports whether the strategy decodes most significant
	// byte first.
	IsBigEndian() bool

	// IsLittleEndian reports the negation of IsBigEndian.
	IsLittleEndian() bool

	// Uint16 decodes the first 2 bytes of b as an unsigned integer.
	// Panics when len(b) < 2.
	Uint16(b []byte) uint16

	// Uint32 decodes the first 4 bytes of b as an unsigned integer.
	// Panics when len(b) < 4.
	Uint32(b []byte) uint32

	// Uint64 decodes the first 8 bytes of b as an unsigned integer.
	// Panics when len(b) < 8.
	Uint64(b []byte) uint64

	// Int16 decodes like Uint16 and reinterprets the bits as signed.
	Int16(b []byte) int16

	// Int32 decodes like Uint32 and reinterprets the bits as signed.
	Int32(b []byte) int32

	// Int64 decodes like Uint64 and reinterprets the bits as signed.
	Int64(b []byte) int64

	// PutUint64 encodes v into the first 8 bytes of b in the strategy's
	// order. Panics when len(b) < 8.
	PutUint64(b []byte, v uint64)

	// String returns a short human-readable name for the byte order.
	String() string
}

// LittleEndian is the fixed little-endian strategy.
type LittleEndian struct{}

var _ Endianness = LittleEndian{}

func (LittleEndian) IsBigEndian() bool    { return false }
func (LittleEndian) IsLittleEndian() bool { return true }

func (LittleEndian) Uint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func (LittleEndian) Uint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func (LittleEndian) Uint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func (LittleEndian) Int16(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) }
func (LittleEndian) Int32(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }
func (LittleEndian) Int64(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) }

func (LittleEndian) PutUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func (LittleEndian) String() string { return "LittleEndian" }

// BigEndian is the fixed big-endian strategy.
type BigEndian struct{}

var _ Endianness = BigEndian{}

func (BigEndian) IsBigEndian() bool    { return true }
func (BigEndian) IsLittleEndian() bool { return false }

func (BigEndian) Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func (BigEndian) Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func (BigEndian) Uint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func (BigEndian) Int16(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) }
func (BigEndian) Int32(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) }
func (BigEndian) Int64(b []byte) int64 { return int64(binary.BigEndian.Uint64(b)) }

func (BigEndian) PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func (BigEndian) String() string { return "BigEndian" }

// RunTimeEndian is a strategy whose byte order is selected at construction.
//
// Use it when the order is only known at run time, for example from a flag
// byte in a format header. The order never changes after construction.
type RunTimeEndian struct {
	big bool
}

var _ Endianness = RunTimeEndian{}

// RunTimeLittle returns a run-time strategy with little-endian order.
func RunTimeLittle() RunTimeEndian {
	return RunTimeEndian{big: false}
}

// RunTimeBig returns a run-time strategy with big-endian order.
func RunTimeBig() RunTimeEndian {
	return RunTimeEndian{big: true}
}

// Native returns a run-time strategy matching the host's byte order.
func Native() RunTimeEndian {
	return RunTimeEndian{big: nativeIsBigEndian()}
}

func (e RunTimeEndian) IsBigEndian() bool    { return e.big }
func (e RunTimeEndian) IsLittleEndian() bool { return !e.big }

// order returns the matching standard library byte order. The branch here is
// the single run-time cost the selectable strategy pays per operation.
func (e RunTimeEndian) order() binary.ByteOrder {
	if e.big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func (e RunTimeEndian) Uint16(b []byte) uint16 { return e.order().Uint16(b) }
func (e RunTimeEndian) Uint32(b []byte) uint32 { return e.order().Uint32(b) }
func (e RunTimeEndian) Uint64(b []byte) uint64 { return e.order().Uint64(b) }

func (e RunTimeEndian) Int16(b []byte) int16 { return int16(e.order().Uint16(b)) }
func (e RunTimeEndian) Int32(b []byte) int32 { return int32(e.order().Uint32(b)) }
func (e RunTimeEndian) Int64(b []byte) int64 { return int64(e.order().Uint64(b)) }

func (e RunTimeEndian) PutUint64(b []byte, v uint64) { e.order().PutUint64(b, v) }

func (e RunTimeEndian) String() string {
	if e.big {
		return "RunTimeEndian(big)"
	}

	return "RunTimeEndian(little)"
}

// nativeIsBigEndian probes the host's byte order by storing a known 16-bit
// value and inspecting which of its bytes lands at the lower address: a
// big-endian host places the most significant byte first.
func nativeIsBigEndian() bool {
	var probe uint16 = 0x0100

	return (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return !nativeIsBigEndian()
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return nativeIsBigEndian()
}
