/*
DESCRIPTION
  stream.go implements the streaming adapter (section 5): a bounded
  ring-like window that accepts appended bytes, compacts on overflow
  rather than growing, and yields successive parsed frames.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package stream provides a bounded, compacting byte window for feeding
// a live DTS-UHD bitstream to the frame parser, along with a one-shot
// demuxer adapter for whole files and a format prober.
package stream

import (
	"io"

	"github.com/ausocean/dtsuhd/codec/dtsuhd"
	"github.com/ausocean/utils/logging"
)

// windowSize is the fixed capacity of the streaming adapter's window:
// 128 frames' worth of the largest possible frame.
const windowSize = 128 * dtsuhd.MaxFrameSize

// Streamer feeds a live byte stream to the frame parser through a fixed
// window, per the memory discipline in section 5. It is not safe for
// concurrent use; like ParserState, one Streamer drives one stream.
type Streamer struct {
	log   logging.Logger
	state *dtsuhd.ParserState

	buf        []byte
	start, end int

	wantDescriptor bool
}

// NewStreamer returns a Streamer ready to accept bytes for a new stream.
// log may be nil. wantDescriptor is forwarded to every ParseFrame call.
func NewStreamer(wantDescriptor bool, log logging.Logger) *Streamer {
	if log == nil {
		log = logging.New(logging.Error, io.Discard, true)
	}
	return &Streamer{
		log:            log,
		state:          dtsuhd.NewState(log),
		buf:            make([]byte, windowSize),
		wantDescriptor: wantDescriptor,
	}
}

// Write appends as much of p as fits in the free window, compacting the
// window first if needed. It returns the number of bytes actually
// consumed, which may be less than len(p) when the window is full; the
// caller is expected to retry the residue after draining frames with
// Next.
func (s *Streamer) Write(p []byte) (n int, err error) {
	free := len(s.buf) - s.end
	if free < len(p) && s.start > 0 {
		s.end = copy(s.buf, s.buf[s.start:s.end])
		s.start = 0
		free = len(s.buf) - s.end
	}

	n = len(p)
	if n > free {
		n = free
	}
	copy(s.buf[s.end:s.end+n], p[:n])
	s.end += n

	s.log.Debug("wrote to stream window", "consumed", n, "buffered", s.end-s.start)
	return n, nil
}

// Next parses the next frame out of the buffered window. On
// dtsuhd.OK it consumes the frame's bytes; on dtsuhd.Invalid or
// dtsuhd.NoSync it resynchronises by scanning forward for the next
// syncword so a subsequent call can make progress; on dtsuhd.Incomplete
// or dtsuhd.Null it leaves the window untouched so the caller can Write
// more data and retry.
func (s *Streamer) Next() (dtsuhd.Status, *dtsuhd.FrameInfo, *dtsuhd.DescriptorInfo, error) {
	status, info, desc, err := dtsuhd.ParseFrame(s.state, s.buf[s.start:s.end], s.wantDescriptor)

	switch status {
	case dtsuhd.OK:
		s.start += info.FrameBytes
	case dtsuhd.Invalid, dtsuhd.NoSync:
		s.resync()
	}

	return status, info, desc, err
}

// resync advances start past the current (bad) syncword to the next
// 32-bit aligned occurrence of either syncword, or to end if none is
// found in the buffered window. With fewer than 8 bytes buffered it
// leaves start unchanged.
func (s *Streamer) resync() {
	window := s.buf[s.start:s.end]
	if len(window) < 8 {
		return
	}
	off, _, ok := dtsuhd.FindSync(window[4:])
	if !ok {
		s.start = s.end
		return
	}
	s.start += 4 + off
}
