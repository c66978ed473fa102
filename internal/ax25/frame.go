package ax25

import "github.com/HarshLk/rs-and-fx.25/internal/crc"

// Frame is one AX.25 link-layer frame ready to be written to the wire or
// into a hex-dump packet record.
type Frame struct {
	Type     FrameType
	Sequence uint16
	Total    uint16
	Payload  []byte
}

// Builder stamps a fixed station identity into every frame it produces.
type Builder struct {
	cfg Config
}

// NewBuilder validates cfg once so every subsequent Build call is cheap.
func NewBuilder(cfg Config) (*Builder, error) {
	if len(cfg.SourceCall) > MaxCallsign || len(cfg.DestCall) > MaxCallsign {
		return nil, ErrInvalidInput
	}
	if cfg.SourceSSID > MaxSSID || cfg.DestSSID > MaxSSID {
		return nil, ErrInvalidInput
	}
	return &Builder{cfg: cfg}, nil
}

// Build writes f's wire bytes in the order FLAG | dest | source | CONTROL |
// PID | [fragment header] | payload | FCS(2, little-endian) | FLAG and
// returns them. The FCS covers everything between the two flags.
func (b *Builder) Build(f Frame) ([]byte, error) {
	if len(f.Payload) > MaxPayload {
		return nil, ErrInvalidInput
	}

	dest, err := encodeAddress(b.cfg.DestCall, b.cfg.DestSSID, false)
	if err != nil {
		return nil, err
	}
	src, err := encodeAddress(b.cfg.SourceCall, b.cfg.SourceSSID, true)
	if err != nil {
		return nil, err
	}

	body := make([]byte, 0, 7+7+2+5+len(f.Payload))
	body = append(body, dest[:]...)
	body = append(body, src[:]...)
	body = append(body, Control, PID)

	if f.Type.HasFragmentHeader() {
		hdr := FragmentHeader{Type: f.Type, Sequence: f.Sequence, Total: f.Total}.encode()
		body = append(body, hdr[:]...)
	}
	body = append(body, f.Payload...)

	out := make([]byte, 0, 1+len(body)+2+1)
	out = append(out, Flag)
	out = append(out, body...)
	out = crc.AppendLE(out, body)
	out = append(out, Flag)

	return out, nil
}
