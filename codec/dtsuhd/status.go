/*
DESCRIPTION
  status.go defines the outcome taxonomy returned by ParseFrame.

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

// Status is the outcome of a single ParseFrame call.
type Status int

const (
	// OK indicates a complete, valid frame was parsed.
	OK Status = iota

	// Incomplete indicates the buffer does not yet hold a full frame;
	// the caller should supply more bytes and retry.
	Incomplete

	// Invalid indicates a parse or CRC failure; the current frame cannot
	// be recovered and the caller should resynchronise.
	Invalid

	// NoSync indicates a non-sync frame was received before any sync
	// frame had been seen; the caller should skip to the next syncword.
	NoSync

	// Null indicates the caller passed a missing (nil) buffer.
	Null
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Incomplete:
		return "INCOMPLETE"
	case Invalid:
		return "INVALID"
	case NoSync:
		return "NOSYNC"
	case Null:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}
