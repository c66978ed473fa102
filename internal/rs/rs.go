// Package rs implements the systematic Reed-Solomon (255,223) codec over
// GF(2^8) used by FX.25, built on the CCSDS generator polynomial with
// first consecutive root exponent 0 (see DESIGN.md on the dual
// RS-parameterization bug this module deliberately avoids).
package rs

import (
	"errors"
	"fmt"

	"github.com/HarshLk/rs-and-fx.25/internal/gf"
)

const (
	// N is the RS(255,223) codeword length.
	N = 255
	// K is the number of information symbols per codeword.
	K = 223
	// Parity is the number of parity symbols appended by the encoder.
	Parity = N - K // 32
	// T is the maximum number of symbol errors the code can correct.
	T = Parity / 2 // 16
	// Alpha is the primitive element the generator polynomial's roots are powers of.
	Alpha = gf.Alpha
)

// ErrInvalidInput reports a block longer than K symbols handed to Encode.
var ErrInvalidInput = errors.New("rs: input exceeds K symbols")

// ErrUncorrectable reports a received word with more errors than the code
// can correct, or an internally inconsistent decode.
var ErrUncorrectable = errors.New("rs: uncorrectable block")

// Codec holds a GF(2^8) field and the RS(255,223) generator polynomial
// built over it. A Codec is immutable after New and safe to share across
// goroutines; it carries no per-call state.
type Codec struct {
	field *gf.Field
	gen   [Parity + 1]uint8 // low-to-high coefficients, deg(gen) == Parity
}

// New builds the generator polynomial g(x) = prod_{i=0}^{Parity-1} (x - alpha^i)
// over field, per the CCSDS convention of first consecutive root exponent 0.
func New(field *gf.Field) *Codec {
	c := &Codec{field: field}
	c.gen[0] = 1

	for i := 0; i < Parity; i++ {
		alphaI := field.Pow(Alpha, i)
		for j := i + 1; j > 0; j-- {
			c.gen[j] = c.gen[j-1] ^ field.Mul(c.gen[j], alphaI)
		}
		c.gen[0] = field.Mul(c.gen[0], alphaI)
	}

	return c
}

// Generator returns a copy of the 33 generator-polynomial coefficients,
// low-to-high, deg(gen) == 32.
func (c *Codec) Generator() [Parity + 1]uint8 {
	return c.gen
}

// Field returns the GF(2^8) field the codec was built over.
func (c *Codec) Field() *gf.Field {
	return c.field
}

func (c *Codec) String() string {
	return fmt.Sprintf("rs.Codec(N=%d,K=%d,T=%d)", N, K, T)
}
