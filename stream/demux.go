/*
DESCRIPTION
  demux.go implements the one-shot demuxer adapter over a whole,
  in-memory DTS-HD file or raw frame buffer, and the `.dtsx` format
  prober (section 6).

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package stream

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ausocean/dtsuhd/codec/dtsuhd"
	"github.com/ausocean/dtsuhd/container/dtshd"
	"github.com/ausocean/utils/logging"
)

// Ext is the file extension recognised by the demuxer adapter.
const Ext = ".dtsx"

// maxProbeScore is this format's best-possible probe score; Probe
// reports maxProbeScore-3 on a confident match, matching the headroom
// section 6 reserves for stronger container-level signatures.
const maxProbeScore = 100

// ErrNoFrame is returned by Demuxer.Next when the payload is exhausted
// without yielding a full frame.
var ErrNoFrame = errors.New("no further frames in payload")

// Demuxer locates and walks the raw DTS-UHD frame payload of a whole,
// already-read file, building the descriptor from the first sync frame
// and then yielding successive raw packets.
type Demuxer struct {
	id  uuid.UUID
	log logging.Logger

	state *dtsuhd.ParserState

	payload []byte
	pos     int

	Descriptor *dtsuhd.DescriptorInfo
}

// NewDemuxer locates the DTS-UHD payload within data (using
// dtshd.Locate) and parses its first sync frame to build the
// descriptor. log may be nil.
func NewDemuxer(data []byte, log logging.Logger) (*Demuxer, error) {
	if log == nil {
		log = logging.New(logging.Error, io.Discard, true)
	}

	off, size := dtshd.Locate(data)
	end := off + size
	if end > len(data) {
		end = len(data)
	}

	d := &Demuxer{
		id:      uuid.New(),
		log:     log,
		state:   dtsuhd.NewState(log),
		payload: data[off:end],
	}

	status, _, desc, err := dtsuhd.ParseFrame(d.state, d.payload, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing initial sync frame")
	}
	if status == dtsuhd.OK {
		d.Descriptor = desc
	}

	d.log.Info("opened stream", "id", d.id, "payload_bytes", len(d.payload))
	return d, nil
}

// Next returns the next raw frame packet from the payload, up to
// dtsuhd.MaxFrameSize bytes, and advances past it. It returns
// ErrNoFrame once the payload is exhausted. Unlike Streamer, there is no
// "more data later" for a whole-buffer demuxer: on dtsuhd.Incomplete the
// trailing bytes can never complete a frame, so pos is advanced past
// them; on dtsuhd.Invalid or dtsuhd.NoSync, pos is advanced the same way
// Streamer.resync does. Either way, every call makes forward progress,
// so a caller looping on Next until dtsuhd.Null is guaranteed to
// terminate.
func (d *Demuxer) Next() ([]byte, dtsuhd.Status, *dtsuhd.FrameInfo, error) {
	if d.pos >= len(d.payload) {
		return nil, dtsuhd.Null, nil, ErrNoFrame
	}

	window := d.payload[d.pos:]
	if len(window) > dtsuhd.MaxFrameSize {
		window = window[:dtsuhd.MaxFrameSize]
	}

	status, info, _, err := dtsuhd.ParseFrame(d.state, window, false)
	switch status {
	case dtsuhd.OK:
		pkt := d.payload[d.pos : d.pos+info.FrameBytes]
		d.pos += info.FrameBytes
		return pkt, status, info, nil
	case dtsuhd.Invalid, dtsuhd.NoSync:
		d.resync()
	default: // dtsuhd.Incomplete, dtsuhd.Null.
		d.pos = len(d.payload)
	}
	return nil, status, info, err
}

// resync advances pos past the current (bad or trailing-incomplete)
// data to the next 32-bit aligned occurrence of either syncword within
// the payload, or to the end of the payload if none is found. Mirrors
// Streamer.resync, operating on the whole buffered payload rather than
// a sliding window.
func (d *Demuxer) resync() {
	window := d.payload[d.pos:]
	if len(window) < 8 {
		d.pos = len(d.payload)
		return
	}
	off, _, ok := dtsuhd.FindSync(window[4:])
	if !ok {
		d.pos = len(d.payload)
		return
	}
	d.pos += 4 + off
}

// Probe scores data's likelihood of being a DTS-UHD stream: it looks
// for an aligned syncword and confirms the frame starting there parses
// OK, per section 6.
func Probe(data []byte) int {
	off, _, ok := dtsuhd.FindSync(data)
	if !ok {
		return 0
	}

	st := dtsuhd.NewState(nil)
	status, _, _, _ := dtsuhd.ParseFrame(st, data[off:], false)
	if status != dtsuhd.OK {
		return 0
	}

	return maxProbeScore - 3
}
