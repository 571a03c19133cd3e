/*
DESCRIPTION
  bitreader_test.go tests Reader against known bit-packed fixtures.

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

import "testing"

func TestReadBasic(t *testing.T) {
	r := NewReader([]byte{0b10110100, 0b11000000})

	if got := r.Read(3); got != 0b101 {
		t.Errorf("Read(3) = %b, want %b", got, 0b101)
	}
	if got := r.Read(5); got != 0b10100 {
		t.Errorf("Read(5) = %b, want %b", got, 0b10100)
	}
	if got := r.Read(2); got != 0b11 {
		t.Errorf("Read(2) = %b, want %b", got, 0b11)
	}
	if r.Pos() != 10 {
		t.Errorf("Pos() = %d, want 10", r.Pos())
	}
}

func TestRead1(t *testing.T) {
	r := NewReader([]byte{0b10000000})
	if !r.Read1() {
		t.Error("Read1() = false, want true")
	}
	if r.Read1() {
		t.Error("Read1() = true, want false")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if got := r.Peek(4); got != 0xF {
		t.Errorf("Peek(4) = %x, want %x", got, 0xF)
	}
	if r.Pos() != 0 {
		t.Errorf("Pos() after Peek = %d, want 0", r.Pos())
	}
	if got := r.Read(4); got != 0xF {
		t.Errorf("Read(4) = %x, want %x", got, 0xF)
	}
}

func TestSkipAndAlignTo(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF})
	r.Skip(5)
	if r.Pos() != 5 {
		t.Fatalf("Pos() = %d, want 5", r.Pos())
	}
	r.AlignTo(3) // behind the cursor: no-op.
	if r.Pos() != 5 {
		t.Errorf("AlignTo(3) moved cursor backward: Pos() = %d", r.Pos())
	}
	r.AlignTo(16)
	if r.Pos() != 16 {
		t.Errorf("AlignTo(16) = %d, want 16", r.Pos())
	}
	if !r.ByteAligned() {
		t.Error("ByteAligned() = false after AlignTo(16)")
	}
}

func TestOverrun(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if r.Overrun() {
		t.Fatal("Overrun() = true before any read")
	}
	r.Read(8)
	if r.Overrun() {
		t.Error("Overrun() = true exactly at end of buffer")
	}
	r.Read(1)
	if !r.Overrun() {
		t.Error("Overrun() = false after reading past end")
	}
	// Reading past the end yields zero bits, not a panic.
	if got := r.Peek(8); got != 0 {
		t.Errorf("Peek past end = %d, want 0", got)
	}
}

func TestReadWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Write(0b101, 3)
	w.Write1(true)
	w.Write(0b0110, 4)
	w.PadToByte()

	r := NewReader(w.Bytes())
	if got := r.Read(3); got != 0b101 {
		t.Errorf("Read(3) = %b, want %b", got, 0b101)
	}
	if !r.Read1() {
		t.Error("Read1() = false, want true")
	}
	if got := r.Read(4); got != 0b0110 {
		t.Errorf("Read(4) = %b, want %b", got, 0b0110)
	}
}
