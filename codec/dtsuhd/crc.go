/*
DESCRIPTION
  crc.go implements the CRC-16 validation scheme used by the FTOC and by
  individual metadata chunks. The bitstream embeds the CRC of a span
  within that same span, so a valid span always CRCs to a zero residue;
  there is no separate "expected" value to compare against.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dtsuhd

// crcTable is the 16-entry nibble-indexed table for the CCITT-like
// (poly 0x1021) CRC-16 used for both the FTOC CRC and each chunk's CRC.
var crcTable = [16]uint16{
	0x0000, 0x1021, 0x2042, 0x3063,
	0x4084, 0x50A5, 0x60C6, 0x70E7,
	0x8108, 0x9129, 0xA14A, 0xB16B,
	0xC18C, 0xD1AD, 0xE1CE, 0xF1EF,
}

// crc16 computes the running CRC-16 residue over data, processing each
// byte as two 4-bit nibbles, most significant nibble first.
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = (crc << 4) ^ crcTable[(crc>>12)^uint16(b>>4)]
		crc = (crc << 4) ^ crcTable[(crc>>12)^uint16(b&0xF)]
	}
	return crc
}

// crcValid reports whether the byte span data (a bit-aligned, byte
// sized region that embeds its own CRC-16) validates to a zero residue.
func crcValid(data []byte) bool {
	return crc16(data) == 0
}
