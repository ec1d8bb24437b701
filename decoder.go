package exo

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/lz"
)

// minWindowSize is the smallest window the decoder buffer is set up with,
// so that tiny output sizes still get a workable buffer.
const minWindowSize = 1 << 12

// decoder holds the complete state of one decompression run. Runs are
// independent of each other; a decoder value must not be shared.
type decoder struct {
	buffer lz.DecoderBuffer
	br     bitReader

	maxGammaBits int
	offsetReuse  bool

	// most recent gamma-coded distance; 0 means none recorded yet
	lastDist int
	// bytes produced and the output capacity
	n, limit int
}

// init sets up the decoder for a single run. The configuration must have
// defaults applied; OutputSize may be zero for an empty output region.
func (d *decoder) init(z io.ByteReader, cfg ReaderConfig) error {
	*d = decoder{
		maxGammaBits: cfg.MaxGammaBits,
		offsetReuse:  !cfg.NoOffsetReuse,
		limit:        cfg.OutputSize,
	}
	win := cfg.OutputSize
	if win < minWindowSize {
		win = minWindowSize
	}
	// the buffer requires WindowSize < BufferSize
	err := d.buffer.Init(lz.DecoderConfig{
		WindowSize: win,
		BufferSize: 2 * win,
	})
	if err != nil {
		return err
	}
	d.br.init(z)
	return nil
}

// eos maps the end of the byte source to io.ErrUnexpectedEOF. Running out
// of bits is the format's only termination signal; the caller decides
// whether the shorter output is acceptable.
func eos(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// decode runs the command loop until the output region is full or the
// stream ends. It returns io.ErrUnexpectedEOF when the stream ended first;
// all output produced up to that point stays valid.
func (d *decoder) decode() error {
	for d.n < d.limit {
		e, err := d.br.readCmd()
		if err != nil {
			return eos(err)
		}
		switch e.kind {
		case cmdLiteral:
			err = d.literals(int(e.param) + 1)
		case cmdCopy2:
			err = d.shortCopy(2, int(e.param))
		case cmdCopy3:
			err = d.shortCopy(3, int(e.param))
		case cmdGamma:
			err = d.gammaCopy()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// literals appends a run of k literal bytes. Literal bytes are raw 8-bit
// reads off the bit cursor; they are not realigned to input bytes. A run
// reaching the output capacity is cut short.
func (d *decoder) literals(k int) error {
	for ; k > 0 && d.n < d.limit; k-- {
		v, err := d.br.readBits(8)
		if err != nil {
			return eos(err)
		}
		if err = d.buffer.WriteByte(byte(v)); err != nil {
			return err
		}
		d.n++
	}
	return nil
}

// shortCopy executes the fixed-length copy commands. The distance is coded
// in distBits bits, offset by one. Short copies never touch the reuse slot.
func (d *decoder) shortCopy(length, distBits int) error {
	v, err := d.br.readBits(distBits)
	if err != nil {
		return eos(err)
	}
	return d.copy(length, int(v)+1)
}

// gammaCopy executes the sentinel command: a gamma-coded length offset by
// 3, then either the reused previous distance or a new gamma-coded
// distance. Only new distances enter the reuse slot.
func (d *decoder) gammaCopy() error {
	g, err := d.br.readGamma(d.maxGammaBits)
	if err != nil {
		return eos(err)
	}
	length := int(g) + 3
	reuse := false
	if d.offsetReuse {
		b, err := d.br.readBit()
		if err != nil {
			return eos(err)
		}
		reuse = b != 0
	}
	var dist int
	if reuse {
		if d.lastDist == 0 {
			return ErrNoPriorOffset
		}
		dist = d.lastDist
	} else {
		if g, err = d.br.readGamma(d.maxGammaBits); err != nil {
			return eos(err)
		}
		dist = int(g)
		d.lastDist = dist
	}
	return d.copy(length, dist)
}

// copy reproduces length bytes from dist bytes behind the write position.
// Distances reaching before the start of the output are rejected before
// anything is written. A copy overrunning the output capacity is clipped;
// the command loop terminates afterwards. The buffer copies byte order
// preserving, so a distance smaller than the length repeats the bytes the
// same command has just written.
func (d *decoder) copy(length, dist int) error {
	if dist <= 0 || dist > d.n {
		return fmt.Errorf("%w: distance %d with %d bytes produced",
			ErrInvalidBackReference, dist, d.n)
	}
	if k := d.limit - d.n; length > k {
		length = k
	}
	if length == 0 {
		return nil
	}
	if _, err := d.buffer.WriteMatch(uint32(length), uint32(dist)); err != nil {
		return err
	}
	d.n += length
	return nil
}

// DecodeInto decompresses the stream z into the caller-provided region dst
// and returns the number of bytes written. The error is nil if dst has
// been filled completely; input left over behind the filling commands is
// not consumed. If the stream ends first, io.ErrUnexpectedEOF is returned
// and dst[:n] contains everything the stream encoded. The errors
// ErrInvalidBackReference, ErrMalformedGamma and ErrNoPriorOffset report a
// corrupt stream; dst[:n] still holds the output of the commands decoded
// before the corruption.
func DecodeInto(dst []byte, z io.ByteReader) (n int, err error) {
	var d decoder
	cfg := ReaderConfig{
		OutputSize:   len(dst),
		MaxGammaBits: defaultMaxGammaBits,
	}
	if err = d.init(z, cfg); err != nil {
		return 0, err
	}
	derr := d.decode()
	n, _ = d.buffer.Read(dst)
	return n, derr
}

// Decode decompresses src into a new buffer of at most outLen bytes. A
// stream ending before outLen bytes were produced is not an error; the
// shorter result is returned. outLen bounds both the output and the work
// spent on corrupt input.
func Decode(src []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrOutputSize, outLen)
	}
	dst := make([]byte, outLen)
	n, err := DecodeInto(dst, bytes.NewReader(src))
	if err == io.ErrUnexpectedEOF {
		err = nil
	}
	return dst[:n], err
}
