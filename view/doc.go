// Package view provides a zero-copy, bounds-checked cursor over an immutable
// byte buffer with an associated byte order.
//
// A View is a lightweight value: a borrowed byte region plus an endianness
// strategy. Binary-format decoders wrap their whole input in one View and
// then repeatedly slice and read typed values from it without copying the
// underlying data.
//
// # Two operation families
//
// The slicing operations (Range, RangeFrom, RangeTo, SplitAt) mirror native
// slice indexing: they panic on out-of-bounds arguments and are intended for
// internal use after lengths have already been validated.
//
// The cursor operations (Skip, Split, Truncate, ReadUint32, ReadUvarint and
// friends) are the safe counterparts for decoding untrusted input: they check
// remaining length first and return errs.ErrUnexpectedEOF instead of
// panicking. A failed cursor operation leaves the view unchanged, so a
// decoder can fail one structure and continue at a different offset.
//
// # Basic Usage
//
//	v := view.New(data, endian.LittleEndian{})
//	magic, err := v.ReadUint32()
//	if err != nil {
//	    return err // truncated input
//	}
//	payload, err := v.Split(int(size))
//	if err != nil {
//	    return err
//	}
//
// # Value semantics
//
// Views are freely copyable. Copying a View copies only the region bounds
// and the strategy, never the bytes. Cursor operations mutate only the local
// copy they are called on; independent views over the same buffer never
// interfere, and concurrent readers are safe because the backing buffer is
// treated as read-only for the lifetime of every view derived from it.
package view
