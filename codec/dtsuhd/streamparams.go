/*
DESCRIPTION
  streamparams.go implements stage 3 of the frame parser: the FTOC's
  stream-parameter fields (version, frame duration, clock rate, sample
  rate) together with the FTOC CRC check that covers them.

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
	"github.com/ausocean/dtsuhd/bits"
	"github.com/pkg/errors"
)

// ErrBadFTOCCRC is returned when the FTOC CRC residue is non-zero.
var ErrBadFTOCCRC = errors.New("ftoc crc check failed")

// ErrZeroFrameDuration is returned when a sync frame encodes a reserved
// (zero) frame duration.
var ErrZeroFrameDuration = errors.New("frame duration is zero")

// ErrZeroClockRate is returned when a sync frame encodes a reserved
// (zero) clock rate.
var ErrZeroClockRate = errors.New("clock rate is zero")

var frameDurationTable = [4]int{512, 480, 384, 0}
var clockRateTable = [4]int{32000, 44100, 48000, 0}

// parseStreamParams implements stage 3. frame is the full frame buffer
// (used for the FTOC CRC check, which covers the first ftocBytes bytes
// of it); r is positioned just after the ftocBytes VarField.
func parseStreamParams(s *ParserState, r *bits.Reader, frame []byte, isSync bool) error {
	if isSync {
		s.fullChannelMixFlag = r.Read1()
	}

	if !s.fullChannelMixFlag || isSync {
		if !crcValid(frame[:s.ftocBytes]) {
			return ErrBadFTOCCRC
		}
	}

	if !isSync {
		return nil
	}

	if s.fullChannelMixFlag {
		s.majorVersion = 2
	} else {
		wide := r.Read1()
		width := 3
		if wide {
			width = 6
		}
		first := int(r.Read(width))
		r.Skip(width)
		s.majorVersion = first + 2
	}

	durIdx := int(r.Read(2))
	frameDuration := frameDurationTable[durIdx]
	frameDurationCode := int(r.Read(3))
	frameDuration *= frameDurationCode + 1

	rateIdx := int(r.Read(2))
	clockRate := clockRateTable[rateIdx]

	if frameDuration == 0 {
		return ErrZeroFrameDuration
	}
	if clockRate == 0 {
		return ErrZeroClockRate
	}
	s.frameDuration, s.frameDurationCode, s.clockRate = frameDuration, frameDurationCode, clockRate

	if r.Read1() {
		r.Skip(36) // timestamp.
	}

	s.sampleRateMod = int(r.Read(2))
	s.sampleRate = s.clockRate << uint(s.sampleRateMod)

	if !s.fullChannelMixFlag {
		r.Skip(1) // reserved.
		s.interactiveObjLimitsPresent = r.Read1()
	}

	return nil
}
