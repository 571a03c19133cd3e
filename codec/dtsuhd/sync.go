/*
DESCRIPTION
  sync.go implements the 32-bit aligned syncword scanner used by the
  streaming adapter to re-establish frame alignment, and the constants
  shared by the frame parser.

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

import "encoding/binary"

// Wire-level constants (section 3).
const (
	SyncWord    uint32 = 0x40411BF2
	NonSyncWord uint32 = 0x71C442E8

	// MaxFrameSize is the largest a single DTS-UHD frame may be.
	MaxFrameSize = 4096
)

// FindSync scans d for the next 32-bit aligned occurrence of either
// syncword, starting at byte offset 0 and advancing 4 bytes at a time.
// It returns the byte offset of the match and whether the matched word
// was the sync (as opposed to non-sync) syncword. It returns ok=false if
// no syncword is found in a complete 4-byte-aligned window of d.
func FindSync(d []byte) (offset int, isSync bool, ok bool) {
	for i := 0; i+4 <= len(d); i += 4 {
		w := binary.BigEndian.Uint32(d[i : i+4])
		switch w {
		case SyncWord:
			return i, true, true
		case NonSyncWord:
			return i, false, true
		}
	}
	return 0, false, false
}
