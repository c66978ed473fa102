// Package fx25 wraps an AX.25 frame with a fixed correlation tag and a
// Reed-Solomon RS(255,223) codeword so a receiver can locate and recover
// the frame in a noisy bit-stream without relying on HDLC flags.
package fx25

import (
	"errors"

	"github.com/HarshLk/rs-and-fx.25/internal/rs"
)

// TagLen is the correlation tag's byte length.
const TagLen = 8

// FrameLen is the total wire length of every FX.25 frame: the tag plus
// one full RS(255,223) codeword.
const FrameLen = TagLen + rs.N

// Tag is the fixed correlation tag prefixing every FX.25 frame.
var Tag = [TagLen]byte{0xCC, 0x8F, 0x8A, 0xE4, 0x85, 0xE2, 0x98, 0x01}

// ErrPayloadTooLarge reports an AX.25 frame longer than rs.K bytes, which
// cannot fit in a single RS(255,223) codeword's data symbols.
var ErrPayloadTooLarge = errors.New("fx25: payload exceeds RS data capacity")

// Wrapper wraps AX.25 frames into FX.25 frames and unwraps them back,
// both ends sharing one RS codec instance (see DESIGN.md on the
// unified RS parameterization).
type Wrapper struct {
	codec *rs.Codec
}

// New creates a Wrapper around codec.
func New(codec *rs.Codec) *Wrapper {
	return &Wrapper{codec: codec}
}

// Wrap copies frame into a zero-padded K-byte block, computes its RS
// parity, and prepends the correlation tag. The result is always
// FrameLen bytes.
func (w *Wrapper) Wrap(frame []byte) ([]byte, error) {
	if len(frame) > rs.K {
		return nil, ErrPayloadTooLarge
	}

	codeword, err := w.codec.Encode(frame)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, FrameLen)
	out = append(out, Tag[:]...)
	out = append(out, codeword[:]...)
	return out, nil
}

// Unwrap validates the correlation tag, RS-decodes the codeword, and
// returns the corrected K data symbols together with the decoder's error
// count (0 meaning clean). It returns rs.ErrUncorrectable if the block
// could not be corrected.
func (w *Wrapper) Unwrap(fxFrame []byte) ([]byte, int, error) {
	if len(fxFrame) != FrameLen {
		return nil, 0, ErrInvalidFrame
	}
	for i := 0; i < TagLen; i++ {
		if fxFrame[i] != Tag[i] {
			return nil, 0, ErrInvalidFrame
		}
	}

	var codeword [rs.N]byte
	copy(codeword[:], fxFrame[TagLen:])

	corrected, status, err := w.codec.Decode(codeword)
	if err != nil {
		return nil, 0, err
	}

	data := make([]byte, rs.K)
	copy(data, corrected[:rs.K])
	return data, status, nil
}

// ErrInvalidFrame reports an FX.25 frame of the wrong length or one
// whose correlation tag does not match.
var ErrInvalidFrame = errors.New("fx25: invalid frame or correlation tag")
