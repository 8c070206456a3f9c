package view

import (
	"errors"

	"github.com/arloliu/binview/errs"
)

// errVarintOverflow indicates a variable-length integer did not terminate
// within 64 bits of payload.
var errVarintOverflow = errors.New("varint overflows a 64-bit integer")

// readBytes consumes exactly n bytes from the front of the view and returns
// them without copying. On failure the view is left unchanged.
func (v *View) readBytes(n int) ([]byte, error) {
	if n < 0 {
		panic("view: negative read length")
	}
	if len(v.data) < n {
		return nil, errs.ErrUnexpectedEOF
	}

	b := v.data[:n]
	v.data = v.data[n:]

	return b, nil
}

// Empty collapses the view's region to zero length in place.
func (v *View) Empty() {
	v.data = v.data[len(v.data):]
}

// Truncate shrinks the region to n bytes from the front, dropping the tail.
//
// Returns errs.ErrUnexpectedEOF when n exceeds the current length; the view
// is left unchanged on failure.
func (v *View) Truncate(n int) error {
	if n < 0 {
		panic("view: negative truncate length")
	}
	if len(v.data) < n {
		return errs.ErrUnexpectedEOF
	}

	v.data = v.data[:n]

	return nil
}

// Skip advances the view past the next n bytes, consuming them.
//
// Returns errs.ErrUnexpectedEOF when fewer than n bytes remain; the view is
// left unchanged on failure.
func (v *View) Skip(n int) error {
	_, err := v.readBytes(n)

	return err
}

// Split consumes the next n bytes and returns them as a new view with the
// same strategy. This is the fundamental read-and-advance primitive; every
// fixed-width read is built on it.
//
// Returns errs.ErrUnexpectedEOF when fewer than n bytes remain; the view is
// left unchanged on failure.
func (v *View) Split(n int) (View, error) {
	b, err := v.readBytes(n)
	if err != nil {
		return View{}, err
	}

	return View{data: b, endian: v.endian}, nil
}

// ReadBytes consumes the next n bytes and returns them without copying.
//
// The returned slice aliases the backing buffer. Returns
// errs.ErrUnexpectedEOF when fewer than n bytes remain.
func (v *View) ReadBytes(n int) ([]byte, error) {
	return v.readBytes(n)
}

// ReadFull consumes exactly len(dst) bytes, copying them into dst.
//
// Use it to fill fixed-size arrays, e.g. a 16-byte identifier:
//
//	var id [16]byte
//	if err := v.ReadFull(id[:]); err != nil {
//	    return err
//	}
//
// Returns errs.ErrUnexpectedEOF when fewer than len(dst) bytes remain; the
// view and dst are left unchanged on failure.
func (v *View) ReadFull(dst []byte) error {
	b, err := v.readBytes(len(dst))
	if err != nil {
		return err
	}

	copy(dst, b)

	return nil
}

// ReadUint8 consumes 1 byte and returns it.
func (v *View) ReadUint8() (uint8, error) {
	b, err := v.readBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 consumes 1 byte and returns it reinterpreted as signed.
func (v *View) ReadInt8() (int8, error) {
	b, err := v.readBytes(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

// ReadUint16 consumes 2 bytes and decodes them with the view's strategy.
func (v *View) ReadUint16() (uint16, error) {
	b, err := v.readBytes(2)
	if err != nil {
		return 0, err
	}

	return v.endian.Uint16(b), nil
}

// ReadInt16 consumes 2 bytes and decodes them as a signed integer.
func (v *View) ReadInt16() (int16, error) {
	b, err := v.readBytes(2)
	if err != nil {
		return 0, err
	}

	return v.endian.Int16(b), nil
}

// ReadUint32 consumes 4 bytes and decodes them with the view's strategy.
func (v *View) ReadUint32() (uint32, error) {
	b, err := v.readBytes(4)
	if err != nil {
		return 0, err
	}

	return v.endian.Uint32(b), nil
}

// ReadInt32 consumes 4 bytes and decodes them as a signed integer.
func (v *View) ReadInt32() (int32, error) {
	b, err := v.readBytes(4)
	if err != nil {
		return 0, err
	}

	return v.endian.Int32(b), nil
}

// ReadUint64 consumes 8 bytes and decodes them with the view's strategy.
func (v *View) ReadUint64() (uint64, error) {
	b, err := v.readBytes(8)
	if err != nil {
		return 0, err
	}

	return v.endian.Uint64(b), nil
}

// ReadInt64 consumes 8 bytes and decodes them as a signed integer.
func (v *View) ReadInt64() (int64, error) {
	b, err := v.readBytes(8)
	if err != nil {
		return 0, err
	}

	return v.endian.Int64(b), nil
}

// ReadUvarint consumes an unsigned LEB128-encoded integer.
//
// Each byte contributes 7 low bits; a clear high bit terminates the value.
// Returns errs.ErrUnexpectedEOF when the input ends mid-value and an
// overflow error when the value does not fit in 64 bits. The view is left
// unchanged on any failure.
func (v *View) ReadUvarint() (uint64, error) {
	rest := *v

	var result uint64
	var shift uint
	for i := 0; ; i++ {
		b, err := rest.ReadUint8()
		if err != nil {
			return 0, err
		}

		if b < 0x80 {
			if i == 9 && b > 1 {
				return 0, errVarintOverflow
			}
			*v = rest

			return result | uint64(b)<<shift, nil
		}
		if i == 9 {
			// 10th byte must terminate a 64-bit value
			return 0, errVarintOverflow
		}

		result |= uint64(b&0x7f) << shift
		shift += 7
	}
}

// ReadVarint consumes a signed LEB128-encoded integer.
//
// The encoding is sign-extended: the sign bit of the final byte propagates
// through the remaining high bits. Returns errs.ErrUnexpectedEOF when the
// input ends mid-value and an overflow error when the value does not fit in
// 64 bits. The view is left unchanged on any failure.
func (v *View) ReadVarint() (int64, error) {
	rest := *v

	var result int64
	var shift uint
	for {
		b, err := rest.ReadUint8()
		if err != nil {
			return 0, err
		}

		if shift == 63 && b != 0x00 && b != 0x7f {
			// The 10th byte only contributes bit 63; anything besides pure
			// sign-extension bits encodes a value outside int64.
			return 0, errVarintOverflow
		}

		result |= int64(b&0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			*v = rest

			return result, nil
		}
	}
}
