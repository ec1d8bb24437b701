package exo

import "io"

// bitReader reads single bits from a byte reader, most significant bit of
// each byte first. A new byte is pulled exactly when the buffered byte has
// no bits left.
type bitReader struct {
	r io.ByteReader
	// buffered byte and the number of its bits still unread
	b     byte
	nbits int
}

func (br *bitReader) init(r io.ByteReader) {
	*br = bitReader{r: r}
}

// readBit returns the next bit of the stream. The end of the input is
// reported with the error of the underlying byte reader, usually io.EOF.
func (br *bitReader) readBit() (bit byte, err error) {
	if br.nbits == 0 {
		if br.b, err = br.r.ReadByte(); err != nil {
			return 0, err
		}
		br.nbits = 8
	}
	br.nbits--
	return (br.b >> uint(br.nbits)) & 1, nil
}

// readBits reads n bits, 0 <= n <= 16, and composes them into an unsigned
// integer, first bit read highest. n = 0 consumes nothing. If the input
// ends mid-read the whole read fails; the bits consumed so far are lost.
func (br *bitReader) readBits(n int) (v uint32, err error) {
	if !(0 <= n && n <= 16) {
		panic("exo: readBits bit count out of range")
	}
	for i := 0; i < n; i++ {
		b, err := br.readBit()
		if err != nil {
			return 0, err
		}
		v = v<<1 | uint32(b)
	}
	return v, nil
}
