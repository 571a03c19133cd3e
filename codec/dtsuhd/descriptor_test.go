/*
DESCRIPTION
  descriptor_test.go tests the default-object selection and descriptor
  builder (section 4.8): presentation-selectability gating, pres_index/id
  tie-breaking, and the dtsx/dtsy coding-name and profile-code split.

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

	"github.com/google/go-cmp/cmp"
)

func newTestState() *ParserState {
	s := &ParserState{majorVersion: 2, sampleRate: 32000, numAudioPres: 1}
	s.audio[0].selectable = true
	return s
}

func TestSelectDefaultObjectNoneStarted(t *testing.T) {
	s := newTestState()
	s.md01 = append(s.md01, &MD01{chunkID: 1})

	if obj := selectDefaultObject(s); obj != nil {
		t.Errorf("selectDefaultObject() = %+v, want nil", obj)
	}
}

func TestSelectDefaultObjectIgnoresUnselectablePresentation(t *testing.T) {
	s := newTestState()
	s.audio[0].selectable = false
	md := &MD01{chunkID: 1}
	md.object[5] = MDObject{started: true, presIndex: 0, chActivityMask: 0x1}
	s.md01 = append(s.md01, md)

	if obj := selectDefaultObject(s); obj != nil {
		t.Errorf("selectDefaultObject() = %+v, want nil", obj)
	}
}

func TestSelectDefaultObjectPrefersLowestPresIndexThenID(t *testing.T) {
	s := newTestState()
	s.numAudioPres = 2
	s.audio[1].selectable = true

	md := &MD01{chunkID: 1}
	md.object[10] = MDObject{started: true, presIndex: 1, chActivityMask: 0x2}
	md.object[3] = MDObject{started: true, presIndex: 0, chActivityMask: 0x1}
	md.object[4] = MDObject{started: true, presIndex: 0, chActivityMask: 0x4}
	s.md01 = append(s.md01, md)

	obj := selectDefaultObject(s)
	if obj == nil || obj.chActivityMask != 0x1 {
		t.Fatalf("selectDefaultObject() = %+v, want the pres_index=0, id=3 object", obj)
	}
}

func TestBuildDescriptorMono(t *testing.T) {
	s := newTestState()
	md := &MD01{chunkID: 1}
	md.object[maxObjectSlot] = MDObject{started: true, presIndex: 0, chActivityMask: 0x1}
	s.md01 = append(s.md01, md)

	got := buildDescriptor(s)
	want := DescriptorInfo{
		Valid:           true,
		CodingName:      [4]byte{'d', 't', 's', 'x'},
		SampleRate:      32000,
		SampleSize:      16,
		ChannelCount:    1,
		ChannelMask:     1,
		HostChannelMask: hostFrontCenter,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildDescriptor() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDescriptorHigherProfile(t *testing.T) {
	s := newTestState()
	s.majorVersion = 3
	s.sampleRate = 48000
	md := &MD01{chunkID: 1}
	md.object[maxObjectSlot] = MDObject{started: true, presIndex: 0, chActivityMask: 0x1}
	s.md01 = append(s.md01, md)

	d := buildDescriptor(s)
	if d.CodingName != [4]byte{'d', 't', 's', 'y'} {
		t.Errorf("CodingName = %q, want dtsy", d.CodingName)
	}
	if d.DecoderProfileCode != 1 {
		t.Errorf("DecoderProfileCode = %d, want 1", d.DecoderProfileCode)
	}
	if d.MaxPayloadCode != 1 {
		t.Errorf("MaxPayloadCode = %d, want 1", d.MaxPayloadCode)
	}
	if d.BaseSampleFreqCode != 1 {
		t.Errorf("BaseSampleFreqCode = %d, want 1", d.BaseSampleFreqCode)
	}
}

func TestBuildDescriptorNoObject(t *testing.T) {
	s := newTestState()
	d := buildDescriptor(s)
	if d.Valid {
		t.Error("descriptor valid with no started object")
	}
}
