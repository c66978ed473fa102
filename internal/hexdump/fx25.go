package hexdump

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteAllFX25 writes FX.25 frames using the interchange variant with
// explicit "Correlation Tag:" and "RS Codeword:" labeled sections per
// packet. tagLen splits each frame into its tag and codeword portions.
func WriteAllFX25(w io.Writer, frames [][]byte, tagLen int) error {
	bw := bufio.NewWriter(w)
	for i, frame := range frames {
		if len(frame) < tagLen {
			return ErrParse
		}
		if _, err := fmt.Fprintf(bw, "Packet %d (%d bytes):\n", i, len(frame)); err != nil {
			return err
		}
		if _, err := bw.WriteString("Correlation Tag:\n"); err != nil {
			return err
		}
		if err := writePacket(bw, frame[:tagLen]); err != nil {
			return err
		}
		if _, err := bw.WriteString("RS Codeword:\n"); err != nil {
			return err
		}
		if err := writePacket(bw, frame[tagLen:]); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadAllFX25 parses the tag/codeword labeled FX.25 interchange format
// produced by WriteAllFX25, reassembling each packet's tag and codeword
// sections into one frame.
func ReadAllFX25(r io.Reader, onError func(error)) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frames [][]byte
	var tag, codeword []byte
	inPacket := false
	section := ""
	malformed := false

	flush := func() {
		if inPacket {
			if malformed || len(tag) == 0 || len(codeword) == 0 {
				if onError != nil {
					onError(ErrParse)
				}
			} else {
				frames = append(frames, append(append([]byte{}, tag...), codeword...))
			}
		}
		tag, codeword = nil, nil
		inPacket = false
		section = ""
		malformed = false
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case isHeader(trimmed):
			flush()
			inPacket = true
			continue
		case trimmed == "":
			flush()
			continue
		case !inPacket:
			continue
		case strings.HasPrefix(trimmed, "Correlation Tag"):
			section = "tag"
			continue
		case strings.HasPrefix(trimmed, "RS Codeword"):
			section = "codeword"
			continue
		}

		bytesOnLine, err := parseHexLine(trimmed)
		if err != nil {
			malformed = true
			continue
		}

		switch section {
		case "tag":
			tag = append(tag, bytesOnLine...)
		case "codeword":
			codeword = append(codeword, bytesOnLine...)
		default:
			malformed = true
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return frames, err
	}
	return frames, nil
}
