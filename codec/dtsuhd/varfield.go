/*
DESCRIPTION
  varfield.go implements the bitstream's custom variable-length integer
  encoding: a 3-bit prefix selects one of four width-table entries, and
  only the bits of the prefix actually consumed by the selected entry are
  removed from the stream (see table in section 4.2 of the format
  description).

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

// widthTable is a 4-entry table of additional-bit widths, one entry per
// VarField prefix index. Each call site to varField supplies its own
// table; these are declared together here as the set the frame parser
// draws on, matching the layout of section 4 of the format description.
type widthTable [4]int

var (
	ftocSizeWidths   = widthTable{5, 8, 10, 12}
	numPresWidths    = widthTable{0, 2, 4, 5}
	depMaskVarWidths = widthTable{4, 8, 16, 32}
	chunkCountWidths = widthTable{2, 4, 6, 8}
	chunkBytesWidths = widthTable{6, 9, 12, 15}
	audioChunkWidths = widthTable{2, 4, 6, 8}
	naviBytesWidths  = widthTable{9, 11, 13, 16}
	objListCntWidths = widthTable{3, 4, 6, 8}
	staticPktsWidths = widthTable{0, 6, 9, 12}
	staticSizeWidths = widthTable{5, 7, 9, 11}
	rejectLenWidths  = widthTable{8, 10, 12, 14}
	chMaskIdxWidths  = widthTable{1, 4, 4, 8}
	chMaskTypeWidths = widthTable{3, 3, 4, 8}
)

// prefixIndex maps a 3-bit prefix value to the VarField table index and
// the number of prefix bits actually consumed.
func prefixIndex(p uint64) (index, bitsUsed int) {
	switch {
	case p <= 3:
		return 0, 1
	case p <= 5:
		return 1, 2
	case p == 6:
		return 2, 3
	default: // p == 7
		return 3, 3
	}
}

// varField reads a VarField per section 4.2: a 3-bit prefix is peeked,
// the index and consumed bit count are derived from it, bitsUsed bits are
// then actually consumed, and if the selected table entry has non-zero
// width, that many additional bits are read and combined with an
// accumulated offset (when add is true) to form the final value.
func varField(r *bits.Reader, w widthTable, add bool) int {
	p := r.Peek(3)
	index, bitsUsed := prefixIndex(p)
	r.Skip(bitsUsed)

	v := 0
	if w[index] > 0 {
		v = int(r.Read(w[index]))
	}
	if add {
		for j := 0; j < index; j++ {
			v += 1 << uint(w[j])
		}
	}
	return v
}
