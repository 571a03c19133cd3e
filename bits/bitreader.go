/*
DESCRIPTION
  bitreader.go provides a bit reader implementation that reads big-endian,
  MSB-first bits from a byte slice, tracking position as an absolute bit
  offset rather than consuming from an io.Reader.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a bit reader implementation that reads from a
// fixed, in-memory byte slice. Unlike an io.Reader backed bit reader, the
// full window of bytes to be parsed must be available up front; this
// suits a frame parser that is always handed a pre-buffered window and
// needs to report its absolute bit position (for CRC spans, for
// skip-and-return-to-boundary, and for detecting buffer overrun).
package bits

// Reader is a cursor over an immutable byte slice with a current bit
// position 0 <= pos <= 8*len(buf).
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a new Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of bits available in the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf) * 8
}

// Pos returns the current absolute bit offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Overrun reports whether the reader has been advanced past the end of
// the underlying buffer. Callers that need to distinguish a short buffer
// (INCOMPLETE) from a malformed one (INVALID) should check this after a
// sequence of reads rather than after each individual read, since Read
// and Peek return zero bits rather than an error when they run off the
// end.
func (r *Reader) Overrun() bool {
	return r.pos > r.Len()
}

// bitsAt extracts n bits (n <= 64) starting at absolute bit offset pos
// from buf, treating bits beyond the end of buf as zero.
func bitsAt(buf []byte, pos, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		bitIdx := pos + i
		byteIdx := bitIdx >> 3
		var bit uint64
		if byteIdx < len(buf) {
			shift := uint(7 - bitIdx&7)
			bit = uint64((buf[byteIdx] >> shift) & 1)
		}
		v = v<<1 | bit
	}
	return v
}

// Read returns the next n bits (n <= 64) as an unsigned integer,
// big-endian, MSB-first, and advances the cursor by n. Reading past the
// end of the buffer yields zero bits for the missing portion; use
// Overrun to detect this.
func (r *Reader) Read(n int) uint64 {
	v := bitsAt(r.buf, r.pos, n)
	r.pos += n
	return v
}

// Read1 reads a single bit and returns it as a bool.
func (r *Reader) Read1() bool {
	return r.Read(1) != 0
}

// Peek returns the next n bits without advancing the cursor.
func (r *Reader) Peek(n int) uint64 {
	return bitsAt(r.buf, r.pos, n)
}

// Skip advances the cursor by n bits without returning a value.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// AlignTo advances the cursor forward to the given absolute bit offset.
// It is a no-op, not a rewind, if the cursor is already at or past
// offset; callers that need exact alignment (e.g. to the byte following
// an FTOC) should only call it when moving forward is known to be
// correct.
func (r *Reader) AlignTo(offset int) {
	if offset > r.pos {
		r.pos = offset
	}
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (r *Reader) ByteAligned() bool {
	return r.pos&7 == 0
}
