package rs

// Encode produces a systematic N-symbol codeword from data: the input is
// copied verbatim into positions [0,K), zero-padded if shorter than K, and
// 32 parity symbols computed by polynomial-division LFSR are appended at
// [K,N). Returns ErrInvalidInput if len(data) > K.
//
// codeword[j] is the coefficient of x^j, the same convention the decoder
// uses. The parity is (m(x) * x^Parity) mod g(x), so the LFSR is fed the
// data from the highest-degree symbol down.
func (c *Codec) Encode(data []byte) ([N]byte, error) {
	if len(data) > K {
		return [N]byte{}, ErrInvalidInput
	}

	var codeword [N]byte
	copy(codeword[:K], data)

	var remainder [Parity]uint8
	for i := K - 1; i >= 0; i-- {
		feedback := codeword[i] ^ remainder[Parity-1]

		for j := Parity - 1; j > 0; j-- {
			remainder[j] = remainder[j-1] ^ c.field.Mul(c.gen[j], feedback)
		}
		remainder[0] = c.field.Mul(c.gen[0], feedback)
	}

	copy(codeword[K:], remainder[:])
	return codeword, nil
}
