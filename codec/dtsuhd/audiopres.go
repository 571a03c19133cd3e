/*
DESCRIPTION
  audiopres.go implements stage 4 of the frame parser: per-presentation
  selection state (section 4.5). Only sync frames set num_audio_pres and
  the per-presentation selectable/mask fields; non-sync frames reuse the
  values already in ParserState.

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

// parseAudioPres implements stage 4.
func parseAudioPres(s *ParserState, r *bits.Reader, isSync bool) {
	if isSync {
		if s.fullChannelMixFlag {
			s.numAudioPres = 1
		} else {
			s.numAudioPres = varField(r, numPresWidths, true) + 1
		}
		for p := 0; p < s.numAudioPres && p < maxAudioPres; p++ {
			s.audio[p] = audioPres{}
		}
	}

	for p := 0; p < s.numAudioPres && p < maxAudioPres; p++ {
		pres := &s.audio[p]

		if isSync {
			if s.fullChannelMixFlag {
				pres.selectable = true
			} else {
				pres.selectable = r.Read1()
			}
		}

		if !pres.selectable {
			continue
		}

		if isSync {
			// Dependency mask has width equal to the presentation index;
			// presentation 0 can depend on nothing, so it reads 0 bits.
			depMask := 0
			if p > 0 {
				depMask = int(r.Read(p))
			}
			for i := 0; i < p; i++ {
				if depMask&(1<<uint(i)) != 0 {
					bit := r.Read(1)
					pres.mask |= int(bit) << uint(i)
				}
			}
		}

		for i := 0; i < p; i++ {
			if pres.mask&(1<<uint(i)) == 0 {
				continue
			}
			if isSync || r.Read1() {
				varField(r, depMaskVarWidths, true)
			}
		}
	}
}
