package ax25

// Packetize splits payload into a sequence of frames of at most
// MaxPayload bytes each. A payload that fits in a single frame produces
// one DATA_HEADER frame; longer payloads produce DATA_FIRST, then zero or
// more DATA, then DATA_END, with contiguous zero-based sequence numbers
// and the overall fragment count stamped into every frame's Total field.
// Only the final fragment may be shorter than MaxPayload.
func Packetize(payload []byte) []Frame {
	if len(payload) == 0 {
		return []Frame{{Type: DataHeader, Sequence: 0, Total: 1, Payload: nil}}
	}

	total := (len(payload) + MaxPayload - 1) / MaxPayload
	frames := make([]Frame, 0, total)

	for i := 0; i < total; i++ {
		start := i * MaxPayload
		end := start + MaxPayload
		if end > len(payload) {
			end = len(payload)
		}

		var t FrameType
		switch {
		case total == 1:
			t = DataHeader
		case i == 0:
			t = DataFirst
		case i == total-1:
			t = DataEnd
		default:
			t = Data
		}

		frames = append(frames, Frame{
			Type:     t,
			Sequence: uint16(i),
			Total:    uint16(total),
			Payload:  payload[start:end],
		})
	}

	return frames
}
