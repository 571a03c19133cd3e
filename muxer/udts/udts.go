/*
DESCRIPTION
  udts.go builds the "udts" descriptor extradata box (section 6): a
  big-endian, bit-packed MP4 sample-entry extension box summarising a
  DTS-UHD stream's DescriptorInfo.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package udts builds the MP4 extradata box that carries a DTS-UHD
// stream's decoder-configuration descriptor. The box's payload is
// sub-byte bit-packed (section 6's field table), which sits below the
// byte-oriented box model github.com/abema/go-mp4 provides; BoxType is
// used here only to give the box a type identity that composes with
// go-mp4-based muxers, while the payload itself is built with a plain
// bit writer (see DESIGN.md).
package udts

import (
	"encoding/binary"

	"github.com/abema/go-mp4"

	"github.com/ausocean/dtsuhd/bits"
	"github.com/ausocean/dtsuhd/codec/dtsuhd"
)

// BoxType is the four-character code for this extradata box.
var BoxType = mp4.StrToBoxType("udts")

// Build packs d into a complete "udts" box per section 6's field table,
// returning the full box including its 32-bit size prefix.
func Build(d dtsuhd.DescriptorInfo) []byte {
	w := bits.NewWriter()

	w.Write(0, 32) // box_size placeholder, overwritten below.
	w.Write(uint64(BoxType[0]), 8)
	w.Write(uint64(BoxType[1]), 8)
	w.Write(uint64(BoxType[2]), 8)
	w.Write(uint64(BoxType[3]), 8)

	w.Write(uint64(d.DecoderProfileCode), 6)
	w.Write(uint64(d.FrameDurationCode), 2)
	w.Write(uint64(d.MaxPayloadCode), 3)
	w.Write(uint64(d.NumPresCode), 5)
	w.Write(uint64(d.ChannelMask), 32)
	w.Write(uint64(d.BaseSampleFreqCode), 1)
	w.Write(uint64(d.SampleRateMod), 2)
	w.Write(uint64(d.RepType), 3)
	w.Write(0, 3) // reserved.
	w.Write(0, 1) // reserved.

	for i := 0; i <= d.NumPresCode; i++ {
		w.Write1(false) // id-tag-presence, all zero.
	}

	w.PadToByte()

	out := w.Bytes()
	binary.BigEndian.PutUint32(out, uint32(len(out)))
	return out
}
