/*
DESCRIPTION
  bitwriter.go is the write-side counterpart to bitreader.go: it packs
  big-endian, MSB-first bitfields into a growable byte buffer.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

// Writer accumulates bitfields, MSB-first, into a byte buffer.
type Writer struct {
	buf  []byte
	nbit int // number of valid bits in the last byte of buf.
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write appends the low n bits of v (n <= 64), most significant first.
func (w *Writer) Write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		if w.nbit == 0 {
			w.buf = append(w.buf, 0)
		}
		w.buf[len(w.buf)-1] |= bit << uint(7-w.nbit)
		w.nbit = (w.nbit + 1) % 8
	}
}

// Write1 appends a single bit.
func (w *Writer) Write1(b bool) {
	if b {
		w.Write(1, 1)
	} else {
		w.Write(0, 1)
	}
}

// PadToByte appends zero bits until the writer is byte aligned,
// returning the number of padding bits written.
func (w *Writer) PadToByte() int {
	if w.nbit == 0 {
		return 0
	}
	n := 8 - w.nbit
	w.Write(0, n)
	return n
}

// Bytes returns the accumulated bytes. The buffer must be byte aligned;
// callers should call PadToByte first if it might not be.
func (w *Writer) Bytes() []byte {
	return w.buf
}
