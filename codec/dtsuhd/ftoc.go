/*
DESCRIPTION
  ftoc.go implements stage 2 (FTOC size) and stage 5 (chunk navigation,
  section 4.6) of the frame parser: the chunk descriptor array and the
  audio-chunk navigation table, the latter of which survives across
  frames.

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

import "github.com/ausocean/dtsuhd/bits"

// parseFTOCSize implements stage 2: ftoc_bytes = VarField({5,8,10,12}, add=true) + 1.
func parseFTOCSize(r *bits.Reader) int {
	return varField(r, ftocSizeWidths, true) + 1
}

// parseChunkNav implements stage 5.
func parseChunkNav(s *ParserState, r *bits.Reader, isSync bool) {
	var chunkCount int
	if s.fullChannelMixFlag {
		if isSync {
			chunkCount = 1
		}
	} else {
		chunkCount = varField(r, chunkCountWidths, true)
	}

	if cap(s.chunks) < chunkCount {
		s.chunks = append(s.chunks[:cap(s.chunks)], make([]chunkDesc, chunkCount-cap(s.chunks))...)
	}
	s.chunks = s.chunks[:chunkCount]

	s.chunkBytes = 0
	for i := 0; i < chunkCount; i++ {
		s.chunks[i].bytes = varField(r, chunkBytesWidths, true)
		if s.fullChannelMixFlag {
			s.chunks[i].crcFlag = false
		} else {
			s.chunks[i].crcFlag = r.Read1()
		}
		s.chunkBytes += s.chunks[i].bytes
	}

	var audioChunks int
	if s.fullChannelMixFlag {
		audioChunks = 1
	} else {
		audioChunks = varField(r, audioChunkWidths, true)
	}

	if isSync {
		s.navi = s.navi[:0]
	} else {
		for i := range s.navi {
			s.navi[i].present = false
		}
	}

	for j := 0; j < audioChunks; j++ {
		var index int
		if s.fullChannelMixFlag {
			index = 0
		} else {
			index = varField(r, audioChunkWidths, true)
		}

		slot := findNaviSlot(s, index)

		var idPresent bool
		switch {
		case isSync:
			idPresent = true
		case s.fullChannelMixFlag:
			idPresent = false
		default:
			idPresent = r.Read1()
		}
		if idPresent {
			slot.id = varField(r, audioChunkWidths, true)
		}

		slot.bytes = varField(r, naviBytesWidths, true)
		s.chunkBytes += slot.bytes
	}

	// Purge: any entry not touched this frame has its size zeroed, but
	// the slot (and its index) is retained.
	for i := range s.navi {
		if !s.navi[i].present {
			s.navi[i].bytes = 0
		}
	}
}

// findNaviSlot locates the navi entry for index, marking it present. If
// no entry exists, it reuses the lowest slot with present==false &&
// bytes==0, otherwise appends a new slot.
func findNaviSlot(s *ParserState, index int) *naviEntry {
	for i := range s.navi {
		if s.navi[i].index == index {
			s.navi[i].present = true
			return &s.navi[i]
		}
	}
	for i := range s.navi {
		if !s.navi[i].present && s.navi[i].bytes == 0 {
			s.navi[i] = naviEntry{index: index, id: maxObjectSlot, present: true}
			return &s.navi[i]
		}
	}
	s.navi = append(s.navi, naviEntry{index: index, id: maxObjectSlot, present: true})
	return &s.navi[len(s.navi)-1]
}
