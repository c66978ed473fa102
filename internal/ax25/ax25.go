// Package ax25 assembles AX.25 link-layer frames: address encoding,
// control/PID injection, CRC-CCITT framing, and fragmentation of payloads
// larger than one frame's capacity into a sequenced run of frames.
package ax25

import "errors"

const (
	// Flag delimits the start and end of every AX.25 frame on the wire.
	Flag byte = 0x7E
	// Control marks an unnumbered information (UI) frame.
	Control byte = 0x03
	// PID signals "no layer 3 protocol" above this frame.
	PID byte = 0xF0

	// MaxPayload is the largest payload a single AX.25 frame may carry.
	MaxPayload = 256
	// MaxCallsign is the longest callsign the address field can hold.
	MaxCallsign = 6
	// MaxSSID is the largest value the 6-bit SSID field can hold.
	MaxSSID = 63
)

// ErrInvalidInput reports a payload, callsign, or SSID outside the limits
// the AX.25 address and frame encoders accept.
var ErrInvalidInput = errors.New("ax25: invalid input")

// FrameType tags the role a frame plays in a (possibly fragmented) payload.
type FrameType uint8

const (
	Beacon FrameType = iota
	DataHeader
	DataFirst
	Data
	DataEnd
	Message
)

func (t FrameType) String() string {
	switch t {
	case Beacon:
		return "BEACON"
	case DataHeader:
		return "DATA_HEADER"
	case DataFirst:
		return "DATA_FIRST"
	case Data:
		return "DATA"
	case DataEnd:
		return "DATA_END"
	case Message:
		return "MESSAGE"
	default:
		return "UNKNOWN"
	}
}

// HasFragmentHeader reports whether frames of this type carry the 5-byte
// fragment header. Only MESSAGE frames omit it.
func (t FrameType) HasFragmentHeader() bool {
	return t != Message
}

// Config is the immutable station identity a frame builder stamps into
// every frame it produces.
type Config struct {
	SourceCall string
	SourceSSID uint8
	DestCall   string
	DestSSID   uint8
}
