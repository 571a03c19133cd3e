/*
DESCRIPTION
  descriptor.go implements the descriptor builder (section 4.8): it
  selects the "default audio" object across the parsed MD01 chunks and
  translates its channel-activity mask into a full DescriptorInfo
  suitable for constructing an MP4-style sample entry.

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

// selectDefaultObject returns the "default audio" object: across all
// MD01 chunks and objects, the first object that has been started, whose
// presentation is selectable, preferring the smallest pres_index and
// breaking ties on the smallest object id. It returns nil if no such
// object exists.
func selectDefaultObject(s *ParserState) *MDObject {
	var best *MDObject
	bestPres, bestID := 1<<31, 1<<31

	for _, md := range s.md01 {
		for id := range md.object {
			obj := &md.object[id]
			if !obj.started {
				continue
			}
			if obj.presIndex < 0 || obj.presIndex >= maxAudioPres || !s.audio[obj.presIndex].selectable {
				continue
			}
			if obj.presIndex < bestPres || (obj.presIndex == bestPres && id < bestID) {
				best, bestPres, bestID = obj, obj.presIndex, id
			}
		}
	}
	return best
}

// buildDescriptor implements section 4.8, producing the DescriptorInfo
// for the current sync frame.
func buildDescriptor(s *ParserState) DescriptorInfo {
	var d DescriptorInfo

	obj := selectDefaultObject(s)
	if obj == nil {
		return d
	}

	channelMask, hostMask := translateActivityMask(obj.chActivityMask)

	d.Valid = true
	d.RepType = obj.repType
	d.ChannelMask = channelMask
	d.HostChannelMask = hostMask
	d.ChannelCount = popcount32(channelMask)

	if s.sampleRate == 48000 {
		d.BaseSampleFreqCode = 1
	}
	d.DecoderProfileCode = s.majorVersion - 2
	if s.majorVersion > 2 {
		d.MaxPayloadCode = 1
		d.CodingName = [4]byte{'d', 't', 's', 'y'}
	} else {
		d.CodingName = [4]byte{'d', 't', 's', 'x'}
	}
	d.NumPresCode = s.numAudioPres - 1
	d.FrameDurationCode = s.frameDurationCode
	d.SampleRateMod = s.sampleRateMod
	d.SampleRate = s.sampleRate
	d.SampleSize = 16

	return d
}
