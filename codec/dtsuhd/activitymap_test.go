/*
DESCRIPTION
  activitymap_test.go tests the channel-activity mask translation and its
  popcount-equals-channel-count property.

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

import "testing"

func TestTranslateActivityMaskMono(t *testing.T) {
	channelMask, hostMask := translateActivityMask(0x1)
	if channelMask != 0x00000001 {
		t.Errorf("channelMask = %#x, want %#x", channelMask, 0x00000001)
	}
	if hostMask != hostFrontCenter {
		t.Errorf("hostMask = %#x, want %#x", hostMask, hostFrontCenter)
	}
	if got := popcount32(channelMask); got != 1 {
		t.Errorf("popcount32(channelMask) = %d, want 1", got)
	}
}

func TestTranslateActivityMaskAccumulates(t *testing.T) {
	// front_center | front_l/r | lfe.
	mask := 0x000001 | 0x000002 | 0x000008
	channelMask, _ := translateActivityMask(mask)
	want := uint32(0x00000001 | 0x00000006 | 0x00000020)
	if channelMask != want {
		t.Errorf("channelMask = %#x, want %#x", channelMask, want)
	}
	if got := popcount32(channelMask); got != 4 {
		t.Errorf("popcount32(channelMask) = %d, want 4", got)
	}
}

func TestPopcount32(t *testing.T) {
	tests := []struct {
		v    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{0xFFFFFFFF, 32},
		{0b10110, 3},
	}
	for _, test := range tests {
		if got := popcount32(test.v); got != test.want {
			t.Errorf("popcount32(%#x) = %d, want %d", test.v, got, test.want)
		}
	}
}
