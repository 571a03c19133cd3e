/*
DESCRIPTION
  activitymap.go reproduces the 20-row channel-activity map (section 6)
  that translates a per-object channel-activity bitmask into a normative
  32-bit channel mask (ETSI TS 103 491 Table 7-28) and a 64-bit host-side
  channel mask.

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

// Host-side channel positions, bit-indexed into HostChannelMask. Names
// follow the abstract positions named in section 6; exact bit
// assignments match the row table below, not any single external
// framework's channel layout enum.
const (
	hostFrontCenter = 1 << iota
	hostFrontL
	hostFrontR
	hostSideL
	hostSideR
	hostLFE
	hostBackCenter
	hostTopFrontL
	hostTopFrontR
	hostBackL
	hostBackR
	hostTopFrontCenter
	hostTopCenter
	hostFrontLOfCenter
	hostFrontROfCenter
	hostWideL
	hostWideR
	hostSurroundDirectL
	hostSurroundDirectR
	hostLFE2
	hostTopSideL
	hostTopSideR
	hostTopBackCenter
	hostTopBackL
	hostTopBackR
	hostBottomFrontCenter
	hostBottomFrontL
	hostBottomFrontR
)

// activityRow is one row of the activity map: activityBit is the bit in
// the object's channel-activity mask that, when set, contributes
// channelMask and hostMask to the accumulated descriptor.
type activityRow struct {
	activityBit uint32
	channelMask uint32
	hostMask    uint64
}

// activityMap is reproduced verbatim from section 6 and kept in document
// order for traceability; OR-accumulation does not depend on row order.
var activityMap = [20]activityRow{
	{0x000001, 0x00000001, hostFrontCenter},
	{0x000002, 0x00000006, hostFrontL | hostFrontR},
	{0x000004, 0x00000018, hostSideL | hostSideR},
	{0x000008, 0x00000020, hostLFE},
	{0x000010, 0x00000040, hostBackCenter},
	{0x000020, 0x0000A000, hostTopFrontL | hostTopFrontR},
	{0x000040, 0x00000180, hostBackL | hostBackR},
	{0x000080, 0x00004000, hostTopFrontCenter},
	{0x000100, 0x00080000, hostTopCenter},
	{0x000200, 0x00001800, hostFrontLOfCenter | hostFrontROfCenter},
	{0x000400, 0x00060000, hostWideL | hostWideR},
	{0x000800, 0x00000600, hostSurroundDirectL | hostSurroundDirectR},
	{0x001000, 0x00010000, hostLFE2},
	{0x002000, 0x00300000, hostTopSideL | hostTopSideR},
	{0x004000, 0x00400000, hostTopBackCenter},
	{0x008000, 0x01800000, hostTopBackL | hostTopBackR},
	{0x010000, 0x02000000, hostBottomFrontCenter},
	{0x020000, 0x0C000000, hostBottomFrontL | hostBottomFrontR},
	{0x140000, 0x30000000, hostTopFrontL | hostTopFrontR},
	{0x080000, 0xC0000000, hostTopBackL | hostTopBackR},
}

// chActivityLUT is the fixed 14-entry channel-activity-mask table
// indexed by ch_index (section 4.7.3), used when ch_index is not the
// 16-bit (14) or 32-bit (15) escape value.
var chActivityLUT = [14]int{
	0x1, 0x2, 0x6, 0xF, 0x1F, 0x84B, 0x2F,
	0x802F, 0x486B, 0x886B, 0x3FBFB, 0x3, 0x7, 0x843,
}

// translateActivityMask OR-accumulates the activity map rows whose
// activity bit is set in mask, returning the normative and host-side
// channel masks.
func translateActivityMask(mask int) (channelMask uint32, hostMask uint64) {
	m := uint32(mask)
	for _, row := range activityMap {
		if m&row.activityBit != 0 {
			channelMask |= row.channelMask
			hostMask |= row.hostMask
		}
	}
	return channelMask, hostMask
}

// popcount32 returns the number of set bits in v.
func popcount32(v uint32) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
