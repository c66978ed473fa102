package hexdump

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteThenReadAllRoundTrips(t *testing.T) {
	packets := [][]byte{
		[]byte("HELLO"),
		bytes.Repeat([]byte{0xAB}, 40),
		{},
	}

	var buf bytes.Buffer
	if err := WriteAll(&buf, packets); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}

	got, err := ReadAll(&buf, nil)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}

	if len(got) != len(packets) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(packets))
	}
	for i := range packets {
		if !bytes.Equal(got[i], packets[i]) {
			t.Errorf("packet %d = % X, want % X", i, got[i], packets[i])
		}
	}
}

func TestReadAllTolerantOfWhitespace(t *testing.T) {
	input := "Packet 0 (3 bytes):\n  01   02 03  \n\n"
	got, err := ReadAll(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(got) != 1 || !bytes.Equal(got[0], []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("got = %v, want [[1 2 3]]", got)
	}
}

func TestReadAllSkipsMalformedPacket(t *testing.T) {
	input := "Packet 0 (bytes):\nZZ ZZ\n\nPacket 1 (2 bytes):\n01 02\n\n"

	var skipped int
	got, err := ReadAll(strings.NewReader(input), func(error) { skipped++ })
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(got) != 1 || !bytes.Equal(got[0], []byte{0x01, 0x02}) {
		t.Fatalf("got = %v, want [[1 2]]", got)
	}
}

func TestWriteAllSplitsAt16BytesPerLine(t *testing.T) {
	packet := make([]byte, 20)
	for i := range packet {
		packet[i] = byte(i)
	}

	var buf bytes.Buffer
	if err := WriteAll(&buf, [][]byte{packet}); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header, 16-byte line, 4-byte line
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3: %q", len(lines), buf.String())
	}
	if got := len(strings.Fields(lines[1])); got != 16 {
		t.Errorf("first data line has %d tokens, want 16", got)
	}
	if got := len(strings.Fields(lines[2])); got != 4 {
		t.Errorf("second data line has %d tokens, want 4", got)
	}
}
