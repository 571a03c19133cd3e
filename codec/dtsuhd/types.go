/*
DESCRIPTION
  types.go declares the data model shared across the DTS-UHD frame
  parser: the cross-frame ParserState along with its MD01/MDObject
  children, and the per-call FrameInfo/DescriptorInfo outputs.

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
	"io"
	"time"

	"github.com/ausocean/dtsuhd/bits"
	"github.com/ausocean/utils/logging"
)

// maxObjectSlot is the id of the distinguished "default" object slot;
// object ids outside [0,255] are normalised to it (invariant 6).
const maxObjectSlot = 256

// maxAudioPres is the largest number of presentations a frame may carry.
const maxAudioPres = 32

// audioPres holds per-presentation selection state that is retained
// across frames; only sync frames mutate it (section 4.5).
type audioPres struct {
	selectable bool
	mask       int
}

// chunkDesc is one entry of the FTOC's chunk descriptor array (section
// 4.6), rebuilt fresh on every frame.
type chunkDesc struct {
	crcFlag bool
	bytes   int
}

// naviEntry is one row of the audio-chunk navigation table. It survives
// across frames; see section 4.6 for its present/purge lifecycle.
type naviEntry struct {
	index   int
	id      int
	bytes   int
	present bool
}

// MDObject holds per-object state within a metadata chunk (section 4.7).
type MDObject struct {
	started        bool // set when the object was first observed since the last reset.
	presIndex      int  // presentation this object belongs to.
	repType        int  // RepType, 0..7.
	chActivityMask int
}

// MD01 is the state of a single metadata chunk, keyed by chunk id. Only
// id 1 is currently defined by the format.
type MD01 struct {
	chunkID int

	objectList []int // object ids referenced this frame.

	object [maxObjectSlot + 1]MDObject // one slot per id, 0..256 inclusive.

	staticMDPackets     int
	staticMDPacketSize  int
	packetsAcquired     int
	staticMDUpdateFlag  bool
	staticMDExtracted   bool
	buf                 []byte      // accumulation buffer for static metadata spread across multiple frames.
	gbMD01              *bits.Reader // cursor into buf, used while parsing static params.
}

// objectSlot returns a pointer to the object slot for id, normalising
// any out-of-range id to the default slot (invariant 6).
func (md *MD01) objectSlot(id int) (*MDObject, int) {
	if id < 0 || id > 255 {
		id = maxObjectSlot
	}
	return &md.object[id], id
}

// ParserState lives across frames for a single DTS-UHD stream. It must
// not be shared between distinct streams; see the concurrency model.
type ParserState struct {
	log logging.Logger

	sawSync                     bool
	majorVersion                int
	fullChannelMixFlag          bool
	interactiveObjLimitsPresent bool

	frameDuration     int
	frameDurationCode int
	clockRate         int
	sampleRate        int
	sampleRateMod     int

	ftocBytes  int
	chunkBytes int
	frameBytes int

	numAudioPres int
	audio        [maxAudioPres]audioPres

	chunks []chunkDesc
	navi   []naviEntry

	md01 []*MD01
}

// NewState returns a freshly initialised ParserState, ready to parse the
// first frame of a new stream. log may be nil, in which case a no-op
// logger is used.
func NewState(log logging.Logger) *ParserState {
	if log == nil {
		log = logging.New(logging.Error, io.Discard, true)
	}
	return &ParserState{log: log}
}

// md01For returns the MD01 record for chunkID, appending a new one if
// this is the first time it has been seen.
func (s *ParserState) md01For(chunkID int) *MD01 {
	for _, m := range s.md01 {
		if m.chunkID == chunkID {
			return m
		}
	}
	m := &MD01{chunkID: chunkID}
	s.md01 = append(s.md01, m)
	return m
}

// DescriptorInfo is produced on a successful sync-frame parse when the
// caller has requested it, and holds the fields needed to build an
// MP4-style sample entry descriptor.
type DescriptorInfo struct {
	Valid bool

	CodingName [4]byte // "dtsx" if majorVersion <= 2, else "dtsy".

	DecoderProfileCode int
	FrameDurationCode  int
	MaxPayloadCode     int
	NumPresCode        int
	BaseSampleFreqCode int
	SampleRateMod      int
	RepType            int

	SampleRate int
	SampleSize int // always 16.

	ChannelCount    int
	ChannelMask     uint32 // normative channel mask.
	HostChannelMask uint64 // host-side channel mask.
}

// FrameInfo is produced for every successfully parsed frame.
type FrameInfo struct {
	Sync        bool
	FrameBytes  int
	SampleRate  int
	SampleCount int
	Duration    time.Duration
}
