package view

import (
	"bytes"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/binview/endian"
	"github.com/arloliu/binview/errs"
	"github.com/arloliu/binview/internal/hash"
)

// View is a byte region with an associated endianness strategy.
//
// A View does not own the bytes it reads; it borrows them from an
// externally-owned buffer that must stay alive and unmodified for as long as
// any view derived from it is in use. Construct views with New; the zero
// value is an empty view with no strategy and can only be used where no
// multi-byte decode occurs.
type View struct {
	data   []byte
	endian endian.Endianness
}

// New wraps the entire given buffer with the given strategy.
//
// The view borrows data; the caller must not modify the buffer while the
// view or any view derived from it is in use.
func New(data []byte, e endian.Endianness) View {
	return View{data: data, endian: e}
}

// Bytes returns the current byte region without copying.
//
// The returned slice aliases the backing buffer. Do not modify it.
func (v View) Bytes() []byte {
	return v.data
}

// Endianness returns the view's byte order strategy.
func (v View) Endianness() endian.Endianness {
	return v.endian
}

// Len returns the number of bytes remaining in the view.
func (v View) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view has no bytes remaining.
//
// An empty view is still usable: zero-length reads succeed and any
// positive-length read fails with errs.ErrUnexpectedEOF.
func (v View) IsEmpty() bool {
	return len(v.data) == 0
}

// OffsetFrom returns the byte distance from the start of base's region to
// the start of v's region.
//
// It is only defined when v is a sub-region of base drawn from the same
// backing buffer, as produced by the slicing and cursor operations. Calling
// it with an unrelated base is a caller bug and panics.
func (v View) OffsetFrom(base View) int {
	basePtr := uintptr(unsafe.Pointer(unsafe.SliceData(base.data)))
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))

	if ptr < basePtr || ptr+uintptr(len(v.data)) > basePtr+uintptr(len(base.data)) {
		panic("view: OffsetFrom called with a view that is not a sub-region of base")
	}

	return int(ptr - basePtr)
}

// Range returns a new view over the [start, end) sub-range of the current
// region, preserving the strategy.
//
// Like native slice indexing, an out-of-bounds range panics. Use the cursor
// operations instead when the bounds come from untrusted input.
func (v View) Range(start, end int) View {
	if start < 0 || end < start || end > len(v.data) {
		panic(fmt.Sprintf("view: range [%d:%d] out of bounds for length %d", start, end, len(v.data)))
	}

	return View{data: v.data[start:end], endian: v.endian}
}

// RangeFrom returns a new view over the [start, Len()) sub-range of the
// current region, preserving the strategy. Panics when start is out of bounds.
func (v View) RangeFrom(start int) View {
	return v.Range(start, len(v.data))
}

// RangeTo returns a new view over the [0, end) sub-range of the current
// region, preserving the strategy. Panics when end is out of bounds.
func (v View) RangeTo(end int) View {
	return v.Range(0, end)
}

// SplitAt splits the view at idx, returning the prefix [0, idx) and the
// suffix [idx, Len()). Both halves keep the view's strategy.
// Panics when idx is out of bounds.
func (v View) SplitAt(idx int) (prefix View, suffix View) {
	return v.RangeTo(idx), v.RangeFrom(idx)
}

// Find returns the index of the first occurrence of b in the view, or -1 if
// b is not present.
func (v View) Find(b byte) int {
	return bytes.IndexByte(v.data, b)
}

// Equal reports whether two views have the same visible bytes and the same
// strategy.
//
// Equality is over content, not position: views over different backing
// buffers, or different offsets within one buffer, are equal whenever their
// bytes and strategies match.
func (v View) Equal(other View) bool {
	return v.endian == other.endian && bytes.Equal(v.data, other.data)
}

// Hash returns the xxHash64 of the view's visible bytes.
//
// Useful as a map key or for cheap content deduplication across views.
func (v View) Hash() uint64 {
	return hash.Sum64(v.data)
}

// Text converts the view's entire region to a string using strict UTF-8
// validation. It does not consume any bytes.
//
// Returns errs.ErrBadUTF8 when the region is not valid UTF-8.
func (v View) Text() (string, error) {
	if !utf8.Valid(v.data) {
		return "", errs.ErrBadUTF8
	}

	return string(v.data), nil
}

// TextLossy converts the view's entire region to a string, substituting the
// Unicode replacement character for invalid UTF-8 sequences. It never fails
// and does not consume any bytes.
func (v View) TextLossy() string {
	return string(bytes.ToValidUTF8(v.data, []byte(string(utf8.RuneError))))
}

// ByteSlice returns an owned copy of the view's current region.
//
// Use it when the bytes must outlive the backing buffer; prefer Bytes when
// borrowing is acceptable.
func (v View) ByteSlice() []byte {
	b := make([]byte, len(v.data))
	copy(b, v.data)

	return b
}
