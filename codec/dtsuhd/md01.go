/*
DESCRIPTION
  md01.go implements stage 7 of the frame parser: parsing of the MD01
  (chunk id 1) metadata chunk, including the object list, the optional
  multi-frame static metadata packets, render-suitability filtering, and
  per-object representation/channel-activity metadata (section 4.7).

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

// RepType enumerates the object representation types (glossary).
type RepType int

const (
	RepChMaskBased RepType = iota
	RepMtrx2D
	RepMtrx3D
	RepBinaural
	RepAmbisonic
	RepAudioTracks
	Rep3DObjectSingleSrc
	Rep3DMonoObjectSingleSrc
)

func isChMaskBased(rt int) bool {
	switch RepType(rt) {
	case RepBinaural, RepChMaskBased, RepMtrx2D, RepMtrx3D:
		return true
	default:
		return false
	}
}

func is3DMetadata(rt int) bool {
	switch RepType(rt) {
	case Rep3DObjectSingleSrc, Rep3DMonoObjectSingleSrc:
		return true
	default:
		return false
	}
}

// parseMD01 implements section 4.7.
func parseMD01(s *ParserState, r *bits.Reader, isSync bool) {
	md := s.md01For(1)

	if s.fullChannelMixFlag {
		md.objectList = append(md.objectList[:0], maxObjectSlot)
	} else {
		count := varField(r, objListCntWidths, true)
		md.objectList = md.objectList[:0]
		for i := 0; i < count; i++ {
			var id int
			if r.Read1() {
				id = int(r.Read(8))
			} else {
				id = int(r.Read(4))
			}
			md.objectList = append(md.objectList, id)
		}
	}

	// Scaling blocks and multi-frame static metadata are gated on the
	// selectability of presentation 0, the presentation this metadata
	// chunk's loudness data is associated with when no other context is
	// given (see DESIGN.md for this reading of an underspecified field).
	if s.audio[0].selectable {
		for i := 0; i < 4; i++ {
			if r.Read1() {
				r.Skip(5)
			}
		}
		if r.Read1() {
			parseStaticMDPacket(s, md, r, isSync)
		}
	}

	for i := range md.object {
		md.object[i] = MDObject{}
	}

	if !s.fullChannelMixFlag && r.Read1() {
		r.Skip(11)
	}

	for i, rawID := range md.objectList {
		obj, id := md.objectSlot(rawID)

		if !isSuitableForRender(r, rawID) {
			continue
		}

		firstSight := !obj.started
		obj.presIndex = i
		obj.started = true

		r.Skip(1) // "id != 256" gating bit; not branched on further here.

		if id <= 223 || id == maxObjectSlot {
			parseObjectMetadata(s, r, obj, id, firstSight)
		}

		break
	}
}

// isSuitableForRender implements section 4.7.2. Object-group ids
// (objectID >= 224) bypass suitability testing entirely and consume no
// bits, per the format's behaviour (see DESIGN.md open question).
func isSuitableForRender(r *bits.Reader, objectID int) bool {
	if objectID >= 224 {
		return true
	}
	if r.Read1() {
		return true
	}
	r.Skip(1) // reject marker.
	n := varField(r, rejectLenWidths, true)
	r.Skip(n)
	return false
}

// parseObjectMetadata implements section 4.7.3.
func parseObjectMetadata(s *ParserState, r *bits.Reader, obj *MDObject, id int, startFrame bool) {
	if startFrame {
		obj.repType = int(r.Read(3))
	}

	chMaskBased := isChMaskBased(obj.repType)
	md3D := is3DMetadata(obj.repType)

	if chMaskBased && id != maxObjectSlot {
		r.Skip(3)
		if r.Read1() {
			if r.Read1() {
				r.Skip(3)
			} else {
				r.Skip(5)
			}
		}
		varField(r, chMaskIdxWidths, true)
		varField(r, chMaskTypeWidths, true)
		if r.Read1() {
			r.Skip(8) // loudness.
		}
		if r.Read1() && s.interactiveObjLimitsPresent && r.Read1() {
			n := 5
			if md3D {
				n += 6
			}
			r.Skip(n)
		}
	}

	var chIndex int
	if RepType(obj.repType) == RepBinaural {
		chIndex = 1
	} else {
		chIndex = int(r.Read(4))
	}

	switch chIndex {
	case 14:
		obj.chActivityMask = int(r.Read(16))
	case 15:
		obj.chActivityMask = int(r.Read(32))
	default:
		obj.chActivityMask = chActivityLUT[chIndex]
	}
}
