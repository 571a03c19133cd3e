/*
DESCRIPTION
  locate.go implements the DTS-HD container payload locator (section 6):
  it walks the "DTSHDHDR"-prefixed chunk sequence to find the "STRMDATA"
  chunk holding the raw DTS-UHD frame stream.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dtshd locates the raw audio payload within a DTS-HD container
// file, in the style of the teacher's container/mts chunk walker.
package dtshd

import "encoding/binary"

const (
	headerTag  = "DTSHDHDR"
	strmTag    = "STRMDATA"
	tagLen     = 8
	sizeLen    = 8
	chunkHdLen = tagLen + sizeLen
)

// Locate finds the STRMDATA chunk within a DTS-HD container file. It
// returns the byte offset of the chunk's payload (immediately following
// its own 16-byte tag+size header) and the payload's size.
//
// If data does not begin with the "DTSHDHDR" tag, Locate treats the
// input as raw, unwrapped DTS-UHD frames: it returns offset 0 and a size
// covering the entire input, so callers can parse from byte 0 without a
// special case.
func Locate(data []byte) (offset int, size int) {
	if len(data) < tagLen || string(data[:tagLen]) != headerTag {
		return 0, len(data)
	}

	pos := 0
	for pos+chunkHdLen <= len(data) {
		tag := string(data[pos : pos+tagLen])
		chunkSize := int(binary.BigEndian.Uint64(data[pos+tagLen : pos+chunkHdLen]))
		payloadOff := pos + chunkHdLen

		if tag == strmTag {
			if payloadOff+chunkSize > len(data) {
				chunkSize = len(data) - payloadOff
			}
			return payloadOff, chunkSize
		}

		if chunkSize < 0 || payloadOff+chunkSize > len(data) {
			break
		}
		pos = payloadOff + chunkSize
	}

	return 0, len(data)
}
