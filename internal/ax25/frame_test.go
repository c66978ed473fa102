package ax25

import (
	"bytes"
	"testing"

	"github.com/HarshLk/rs-and-fx.25/internal/crc"
)

// S1: payload "HELLO", source N0CALL/0, dest CQ/0, type BEACON. The frame
// body is built directly from the §4.5 address formula and §4.6 byte
// order; the FCS is cross-checked against the crc package independently
// of the builder.
func TestS1HelloBeaconFrame(t *testing.T) {
	cfg := Config{SourceCall: "N0CALL", SourceSSID: 0, DestCall: "CQ", DestSSID: 0}
	b, err := NewBuilder(cfg)
	if err != nil {
		t.Fatalf("NewBuilder error: %v", err)
	}

	frame, err := b.Build(Frame{Type: Beacon, Sequence: 0, Total: 1, Payload: []byte("HELLO")})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	want := []byte{
		0x7E,
		0x86, 0xA2, 0x40, 0x40, 0x40, 0x40, 0x00, // dest CQ, last=0
		0x9C, 0x60, 0x86, 0x82, 0x98, 0x98, 0x01, // source N0CALL, last=1
		0x03, 0xF0, // control, PID
		0x00, 0x00, 0x00, 0x00, 0x01, // fragment header: BEACON, seq 0, total 1
		0x48, 0x45, 0x4C, 0x4C, 0x4F, // "HELLO"
		0x56, 0xE6, // FCS, little-endian
		0x7E,
	}

	if !bytes.Equal(frame, want) {
		t.Fatalf("frame =\n% X\nwant\n% X", frame, want)
	}
}

func TestFrameBeginsAndEndsWithFlag(t *testing.T) {
	cfg := Config{SourceCall: "N0CALL", SourceSSID: 1, DestCall: "CQ", DestSSID: 0}
	b, _ := NewBuilder(cfg)

	frame, err := b.Build(Frame{Type: Message, Payload: []byte("hi")})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if frame[0] != Flag || frame[len(frame)-1] != Flag {
		t.Errorf("frame does not begin/end with 0x7E: % X", frame)
	}
}

// Property 7: control byte 0x03, PID 0xF0, source SSID byte bit0=1,
// dest SSID byte bit0=0, and the FCS verifies.
func TestFrameControlPIDAndSSIDBits(t *testing.T) {
	cfg := Config{SourceCall: "N0CALL", SourceSSID: 5, DestCall: "CQ", DestSSID: 3}
	b, _ := NewBuilder(cfg)

	frame, err := b.Build(Frame{Type: Beacon, Total: 1, Payload: []byte("x")})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	body := frame[1 : len(frame)-3]
	destSSIDByte := body[6]
	srcSSIDByte := body[13]
	control := body[14]
	pid := body[15]

	if control != Control {
		t.Errorf("control = %#x, want %#x", control, Control)
	}
	if pid != PID {
		t.Errorf("pid = %#x, want %#x", pid, PID)
	}
	if destSSIDByte&1 != 0 {
		t.Errorf("dest SSID byte bit0 = 1, want 0 (% X)", destSSIDByte)
	}
	if srcSSIDByte&1 != 1 {
		t.Errorf("source SSID byte bit0 = 0, want 1 (% X)", srcSSIDByte)
	}

	wantFCS := crc.CCITT(frame[1 : len(frame)-3])
	gotFCS := uint16(frame[len(frame)-3]) | uint16(frame[len(frame)-2])<<8
	if gotFCS != wantFCS {
		t.Errorf("FCS = %#04x, want %#04x", gotFCS, wantFCS)
	}
}

func TestBuildRejectsOversizedPayload(t *testing.T) {
	cfg := Config{SourceCall: "N0CALL", DestCall: "CQ"}
	b, _ := NewBuilder(cfg)

	_, err := b.Build(Frame{Type: Message, Payload: make([]byte, MaxPayload+1)})
	if err != ErrInvalidInput {
		t.Fatalf("Build error = %v, want ErrInvalidInput", err)
	}
}

func TestNewBuilderRejectsInvalidConfig(t *testing.T) {
	cases := []Config{
		{SourceCall: "TOOLONGCALL", DestCall: "CQ"},
		{SourceCall: "N0CALL", DestCall: "CQ", SourceSSID: 64},
	}
	for _, cfg := range cases {
		if _, err := NewBuilder(cfg); err != ErrInvalidInput {
			t.Errorf("NewBuilder(%+v) error = %v, want ErrInvalidInput", cfg, err)
		}
	}
}

func TestMessageFrameOmitsFragmentHeader(t *testing.T) {
	cfg := Config{SourceCall: "N0CALL", DestCall: "CQ"}
	b, _ := NewBuilder(cfg)

	withHeader, _ := b.Build(Frame{Type: Beacon, Total: 1, Payload: []byte("x")})
	withoutHeader, _ := b.Build(Frame{Type: Message, Payload: []byte("x")})

	if len(withHeader)-len(withoutHeader) != 5 {
		t.Errorf("fragment header overhead = %d bytes, want 5", len(withHeader)-len(withoutHeader))
	}
}
