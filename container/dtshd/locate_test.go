/*
DESCRIPTION
  locate_test.go tests the DTS-HD container payload locator: chunk
  walking to the STRMDATA payload, the raw (non-container) fallback, and
  clamping a truncated chunk size to the available data.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dtshd

import (
	"encoding/binary"
	"testing"
)

func chunk(tag string, payload []byte) []byte {
	b := make([]byte, chunkHdLen+len(payload))
	copy(b, tag)
	binary.BigEndian.PutUint64(b[tagLen:chunkHdLen], uint64(len(payload)))
	copy(b[chunkHdLen:], payload)
	return b
}

func TestLocateFindsStrmData(t *testing.T) {
	header := chunk(headerTag, []byte("XXXX"))
	strmPayload := make([]byte, 32)
	for i := range strmPayload {
		strmPayload[i] = byte(i)
	}
	strm := chunk(strmTag, strmPayload)

	data := append(append([]byte{}, header...), strm...)
	k := len(header) // offset where the STRMDATA tag begins.

	off, size := Locate(data)
	if off != k+chunkHdLen {
		t.Errorf("offset = %d, want %d", off, k+chunkHdLen)
	}
	if size != len(strmPayload) {
		t.Errorf("size = %d, want %d", size, len(strmPayload))
	}
}

func TestLocateSkipsIntermediateChunks(t *testing.T) {
	header := chunk(headerTag, nil)
	extra := chunk("FOOOBARR", []byte{1, 2, 3, 4})
	strm := chunk(strmTag, []byte("payload-bytes"))

	data := append(append(append([]byte{}, header...), extra...), strm...)
	k := len(header) + len(extra)

	off, size := Locate(data)
	if off != k+chunkHdLen {
		t.Errorf("offset = %d, want %d", off, k+chunkHdLen)
	}
	if size != len("payload-bytes") {
		t.Errorf("size = %d, want %d", size, len("payload-bytes"))
	}
}

func TestLocateNotAContainer(t *testing.T) {
	data := []byte{0x40, 0x41, 0x1B, 0xF2, 0x00, 0x00, 0x00, 0x00, 0xAA}
	off, size := Locate(data)
	if off != 0 || size != len(data) {
		t.Errorf("Locate() = (%d, %d), want (0, %d)", off, size, len(data))
	}
}

func TestLocateClampsTruncatedStrmSize(t *testing.T) {
	header := chunk(headerTag, nil)
	strm := chunk(strmTag, []byte("0123456789"))
	data := append(append([]byte{}, header...), strm...)
	data = data[:len(data)-4] // truncate the declared payload.

	off, size := Locate(data)
	wantOff := len(header) + chunkHdLen
	if off != wantOff {
		t.Errorf("offset = %d, want %d", off, wantOff)
	}
	if size != len(data)-wantOff {
		t.Errorf("size = %d, want %d (clamped to available data)", size, len(data)-wantOff)
	}
}
