// Package hexdump reads and writes the textual hex-dump interchange
// format used to bridge the AX.25 and FX.25 pipeline stages: a header
// line mentioning "Packet" and "bytes", followed by 16 uppercase
// two-digit hex bytes per line, with a blank line terminating each
// packet.
package hexdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrParse reports a malformed packet; the reader skips to the next
// packet boundary rather than aborting the whole stream.
var ErrParse = errors.New("hexdump: malformed packet")

// WriteAll writes packets to w, one "Packet N (L bytes):" header per
// packet followed by its bytes at 16 per line and a trailing blank line.
func WriteAll(w io.Writer, packets [][]byte) error {
	bw := bufio.NewWriter(w)
	for i, packet := range packets {
		if _, err := fmt.Fprintf(bw, "Packet %d (%d bytes):\n", i, len(packet)); err != nil {
			return err
		}
		if err := writePacket(bw, packet); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writePacket(w *bufio.Writer, packet []byte) error {
	for i := 0; i < len(packet); i += 16 {
		end := i + 16
		if end > len(packet) {
			end = len(packet)
		}
		line := make([]string, 0, 16)
		for _, b := range packet[i:end] {
			line = append(line, fmt.Sprintf("%02X", b))
		}
		if _, err := w.WriteString(strings.Join(line, " ")); err != nil {
			return err
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll parses packets out of r, tolerating arbitrary whitespace
// between hex tokens. A packet boundary is recognized by a header line
// containing both "Packet" and "bytes"; a blank line ends the current
// packet. Malformed hex tokens are reported via a callback rather than
// aborting the stream: onError, if non-nil, is invoked with ErrParse for
// each packet skipped, and parsing resumes at the next header line.
func ReadAll(r io.Reader, onError func(error)) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var packets [][]byte
	var current []byte
	inPacket := false
	malformed := false

	flush := func() {
		if inPacket {
			if malformed {
				if onError != nil {
					onError(ErrParse)
				}
			} else {
				packets = append(packets, current)
			}
		}
		current = nil
		inPacket = false
		malformed = false
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if isHeader(trimmed) {
			flush()
			inPacket = true
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if !inPacket {
			continue
		}

		bytesOnLine, err := parseHexLine(trimmed)
		if err != nil {
			malformed = true
			continue
		}
		current = append(current, bytesOnLine...)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return packets, err
	}
	return packets, nil
}

func isHeader(line string) bool {
	return strings.Contains(line, "Packet") && strings.Contains(line, "bytes")
}

func parseHexLine(line string) ([]byte, error) {
	fields := strings.Fields(line)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, ErrParse
		}
		out = append(out, byte(v))
	}
	return out, nil
}
