/*
DESCRIPTION
  ftoc_test.go tests stage 2 (FTOC size) and stage 5 (chunk navigation),
  including the navi table's present/purge lifecycle across frames.

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

import (
	"testing"

	"github.com/ausocean/dtsuhd/bits"
)

func TestParseFTOCSize(t *testing.T) {
	w := bits.NewWriter()
	w.Write1(false)
	w.Write(10, 5) // ftoc_bytes = 11.
	w.PadToByte()
	r := bits.NewReader(w.Bytes())

	if got := parseFTOCSize(r); got != 11 {
		t.Errorf("parseFTOCSize() = %d, want 11", got)
	}
}

func TestParseChunkNavFullChannelMixSync(t *testing.T) {
	w := bits.NewWriter()
	writeVarFieldRaw(w, chunkBytesWidths, 3) // chunks[0].bytes.
	writeVarFieldRaw(w, audioChunkWidths, 7) // navi[0].id.
	writeVarFieldRaw(w, naviBytesWidths, 0)  // navi[0].bytes.
	w.PadToByte()
	r := bits.NewReader(w.Bytes())

	s := &ParserState{fullChannelMixFlag: true}
	parseChunkNav(s, r, true)

	if len(s.chunks) != 1 || s.chunks[0].bytes != 3 {
		t.Errorf("chunks = %+v, want one entry with bytes=3", s.chunks)
	}
	if s.chunks[0].crcFlag {
		t.Error("chunks[0].crcFlag = true, want false under full_channel_mix_flag")
	}
	if len(s.navi) != 1 || !s.navi[0].present || s.navi[0].id != 7 {
		t.Errorf("navi = %+v, want one present entry with id=7", s.navi)
	}
	if s.chunkBytes != 3 {
		t.Errorf("chunkBytes = %d, want 3", s.chunkBytes)
	}
}

func TestParseChunkNavNonSyncReusesNaviID(t *testing.T) {
	// Establish an existing slot via a prior sync call.
	w1 := bits.NewWriter()
	writeVarFieldRaw(w1, chunkBytesWidths, 5)
	writeVarFieldRaw(w1, audioChunkWidths, 9)
	writeVarFieldRaw(w1, naviBytesWidths, 0)
	w1.PadToByte()
	s := &ParserState{fullChannelMixFlag: true}
	parseChunkNav(s, bits.NewReader(w1.Bytes()), true)

	// A subsequent non-sync call only reads the navi slot's byte count.
	w2 := bits.NewWriter()
	writeVarFieldRaw(w2, naviBytesWidths, 4)
	w2.PadToByte()
	parseChunkNav(s, bits.NewReader(w2.Bytes()), false)

	if len(s.chunks) != 0 {
		t.Errorf("chunks = %+v, want none on a non-sync frame", s.chunks)
	}
	if s.navi[0].id != 9 {
		t.Errorf("navi[0].id = %d, want 9 (retained from the sync frame)", s.navi[0].id)
	}
	if s.navi[0].bytes != 4 {
		t.Errorf("navi[0].bytes = %d, want 4", s.navi[0].bytes)
	}
	if s.chunkBytes != 4 {
		t.Errorf("chunkBytes = %d, want 4", s.chunkBytes)
	}
}

// writeVarFieldRaw packs value into w using the narrowest table entry
// that can represent it, mirroring varField's own encoding scheme.
func writeVarFieldRaw(w *bits.Writer, table widthTable, value int) {
	off := 0
	for idx := 0; idx < 4; idx++ {
		width := table[idx]
		limit := 1 << uint(width)
		if idx < 3 && value-off >= limit {
			off += limit
			continue
		}
		switch idx {
		case 0:
			w.Write1(false)
		case 1:
			w.Write(0b10, 2)
		case 2:
			w.Write(0b110, 3)
		case 3:
			w.Write(0b111, 3)
		}
		if width > 0 {
			w.Write(uint64(value-off), width)
		}
		return
	}
}
