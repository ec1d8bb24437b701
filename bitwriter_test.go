package exo

import "math/bits"

// bitWriter builds raw streams for tests, most significant bit of each
// byte first, mirroring the decoder's bit order.
type bitWriter struct {
	buf   []byte
	b     byte
	nbits int
}

func (w *bitWriter) writeBit(b byte) {
	w.b = w.b<<1 | (b & 1)
	if w.nbits++; w.nbits == 8 {
		w.buf = append(w.buf, w.b)
		w.b, w.nbits = 0, 0
	}
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit(byte(v>>uint(i)) & 1)
	}
}

// writeGamma emits the gamma code for v >= 1: k zero bits, a one bit and
// the k low bits of v.
func (w *bitWriter) writeGamma(v uint32) {
	k := bits.Len32(v) - 1
	for i := 0; i < k; i++ {
		w.writeBit(0)
	}
	w.writeBit(1)
	w.writeBits(v&(1<<uint(k)-1), k)
}

// literal emits a literal run command followed by the run bytes;
// 1 <= len(p) <= 32.
func (w *bitWriter) literal(p []byte) {
	w.writeBit(0)
	w.writeBits(uint32(len(p)-1), 5)
	for _, c := range p {
		w.writeBits(uint32(c), 8)
	}
}

// gammaCopyNew emits a gamma copy coding a new distance; length >= 4.
func (w *bitWriter) gammaCopyNew(length, dist int) {
	w.writeBits(0xf, 4)
	w.writeGamma(uint32(length - 3))
	w.writeBit(0)
	w.writeGamma(uint32(dist))
}

// gammaCopyReuse emits a gamma copy reusing the previous distance.
func (w *bitWriter) gammaCopyReuse(length int) {
	w.writeBits(0xf, 4)
	w.writeGamma(uint32(length - 3))
	w.writeBit(1)
}

// bytes returns the stream, the last byte padded with zero bits.
func (w *bitWriter) bytes() []byte {
	buf := w.buf
	if w.nbits > 0 {
		buf = append(buf, w.b<<uint(8-w.nbits))
	}
	return buf
}
