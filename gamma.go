package exo

// defaultMaxGammaBits bounds the unary prefix of a gamma code. Without the
// bound a corrupt stream keeps the decoder scanning zero bits until the
// input ends.
const defaultMaxGammaBits = 16

// readGamma decodes a unary-prefixed variable-length integer: k zero bits,
// a one bit and k payload bits give (1<<k) | payload. The shortest code, a
// single one bit, decodes to 1. A prefix longer than maxBits fails with
// ErrMalformedGamma; an input ending inside the code fails with the
// reader's error.
func (br *bitReader) readGamma(maxBits int) (uint32, error) {
	k := 0
	for {
		b, err := br.readBit()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			break
		}
		if k++; k > maxBits {
			return 0, ErrMalformedGamma
		}
	}
	if k == 0 {
		return 1, nil
	}
	p, err := br.readBits(k)
	if err != nil {
		return 0, err
	}
	return 1<<uint(k) | p, nil
}
