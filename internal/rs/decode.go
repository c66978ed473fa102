package rs

import "github.com/HarshLk/rs-and-fx.25/internal/gf"

// maxLambdaLen bounds the error-locator polynomial's coefficient slice.
// Berlekamp-Massey run over Parity syndromes never needs more than
// Parity+1 coefficients to represent Lambda or its scaled predecessor.
const maxLambdaLen = Parity + 1

// Decode corrects received in place conceptually and returns the
// corrected codeword together with the number of symbol errors found.
// A return of (corrected, 0, nil) means no errors were detected. A
// non-nil error is always ErrUncorrectable: more than T errors, or an
// internally inconsistent decode; the caller should fall back to the
// received word unchanged (see DESIGN.md / spec §7 Uncorrectable policy).
func (c *Codec) Decode(received [N]byte) ([N]byte, int, error) {
	corrected := received

	s := c.syndromes(received)

	allZero := true
	for _, v := range s {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return corrected, 0, nil
	}

	lambda, degLambda := c.berlekampMassey(s)
	if degLambda == 0 {
		// Non-zero syndromes but no locator found: the decoder
		// conservatively reports no correction rather than guessing.
		return corrected, 0, nil
	}
	if degLambda > T {
		return received, 0, ErrUncorrectable
	}

	omega := c.errorEvaluator(s, lambda, degLambda)

	positions, numErrors, ok := c.chienSearch(lambda)
	if !ok {
		return received, 0, ErrUncorrectable
	}

	for _, pos := range positions {
		xInv := c.field.Pow(Alpha, (255-pos)%255)

		omegaVal := hornerEval(c.field, omega[:], xInv)
		lambdaPrime := c.derivativeEval(lambda, degLambda, xInv)

		if lambdaPrime != 0 {
			// Forney's formula gives Y * Xp^-1; multiply back by Xp = alpha^pos
			// to recover the error magnitude Y itself.
			magnitude := c.field.Mul(c.field.Pow(Alpha, pos), c.field.Div(omegaVal, lambdaPrime))
			corrected[pos] ^= magnitude
		}
	}

	if numErrors != degLambda {
		return received, 0, ErrUncorrectable
	}

	return corrected, numErrors, nil
}

// syndromes evaluates the received word at alpha^0..alpha^(Parity-1)
// using Horner's method: s_i = received(alpha^i) treating received[j]
// as the coefficient of y^j.
func (c *Codec) syndromes(received [N]byte) [Parity]uint8 {
	var s [Parity]uint8
	for i := 0; i < Parity; i++ {
		y := c.field.Pow(Alpha, i)
		s[i] = hornerEval(c.field, received[:], y)
	}
	return s
}

// hornerEval evaluates the polynomial with coefficients coeffs (coeffs[0]
// the constant term) at x using Horner's rule, processing from the
// highest-degree term down.
func hornerEval(f *gf.Field, coeffs []uint8, x uint8) uint8 {
	var acc uint8
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = f.Mul(acc, x) ^ coeffs[i]
	}
	return acc
}

// berlekampMassey derives the error-locator polynomial Lambda from the
// syndrome sequence s, returning its coefficients (low-to-high, trimmed
// to the true polynomial degree) and that degree.
func (c *Codec) berlekampMassey(s [Parity]uint8) ([]uint8, int) {
	field := c.field

	lambda := make([]uint8, maxLambdaLen)
	b := make([]uint8, maxLambdaLen)
	lambda[0] = 1
	b[0] = 1

	L := 0
	m := 1
	bCoef := uint8(1)

	for n := 0; n < Parity; n++ {
		delta := s[n]
		for i := 1; i <= L; i++ {
			delta ^= field.Mul(lambda[i], s[n-i])
		}

		if delta == 0 {
			m++
			continue
		}

		t := make([]uint8, maxLambdaLen)
		copy(t, lambda)

		coef := field.Div(delta, bCoef)
		for i := 0; i < maxLambdaLen-m; i++ {
			lambda[i+m] ^= field.Mul(coef, b[i])
		}

		if 2*L <= n {
			L = n + 1 - L
			b = t
			bCoef = delta
			m = 1
		} else {
			m++
		}
	}

	degLambda := 0
	for j := maxLambdaLen - 1; j > 0; j-- {
		if lambda[j] != 0 {
			degLambda = j
			break
		}
	}

	return lambda[:degLambda+1], degLambda
}

// errorEvaluator computes Omega(x) = (S(x) * Lambda(x)) mod x^Parity.
func (c *Codec) errorEvaluator(s [Parity]uint8, lambda []uint8, degLambda int) [Parity]uint8 {
	var omega [Parity]uint8
	for i := 0; i < Parity; i++ {
		var acc uint8
		for j := 0; j <= degLambda && j <= i; j++ {
			acc ^= c.field.Mul(s[i-j], lambda[j])
		}
		omega[i] = acc
	}
	return omega
}

// chienSearch evaluates Lambda at alpha^-i for every codeword position i,
// returning the positions where it vanishes. Aborts with ok=false if the
// running count ever exceeds T.
func (c *Codec) chienSearch(lambda []uint8) ([]int, int, bool) {
	positions := make([]int, 0, T)

	for i := 0; i < N; i++ {
		xInv := c.field.Pow(Alpha, (255-i)%255)
		if hornerEval(c.field, lambda, xInv) == 0 {
			positions = append(positions, i)
			if len(positions) > T {
				return nil, 0, false
			}
		}
	}

	return positions, len(positions), true
}

// derivativeEval evaluates the formal derivative of Lambda at x. Over
// GF(2^m) only odd-power terms survive: Lambda'(x) = sum_{j odd} lambda[j] * x^(j-1).
func (c *Codec) derivativeEval(lambda []uint8, degLambda int, x uint8) uint8 {
	var acc uint8
	for j := 1; j <= degLambda; j += 2 {
		acc ^= c.field.Mul(lambda[j], c.field.Pow(x, j-1))
	}
	return acc
}
