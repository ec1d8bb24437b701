package exo

import (
	"bufio"
	"fmt"
	"io"
)

// ReaderConfig parameterizes a decompression run.
type ReaderConfig struct {
	// OutputSize is the size of the decoded output in bytes. The raw
	// format carries no length header, so the caller provides the size,
	// or an upper bound to decode until the stream ends.
	OutputSize int
	// MaxGammaBits bounds the unary prefix of gamma codes. Zero selects
	// the default of 16.
	MaxGammaBits int
	// NoOffsetReuse disables the reuse bit of gamma-coded copies, for
	// streams produced without offset reuse. The default, reuse enabled,
	// is the variant the format's tooling emits.
	NoOffsetReuse bool
}

// ApplyDefaults replaces zero fields by their default values.
func (cfg *ReaderConfig) ApplyDefaults() {
	if cfg.MaxGammaBits == 0 {
		cfg.MaxGammaBits = defaultMaxGammaBits
	}
}

// Verify checks the configuration for consistency.
func (cfg *ReaderConfig) Verify() error {
	if cfg.OutputSize <= 0 {
		return fmt.Errorf("%w: OutputSize %d", ErrOutputSize,
			cfg.OutputSize)
	}
	if !(1 <= cfg.MaxGammaBits && cfg.MaxGammaBits <= 16) {
		return fmt.Errorf(
			"exo: MaxGammaBits must be in range 1..16; got %d",
			cfg.MaxGammaBits)
	}
	return nil
}

// Reader reads the decompressed form of an Exomizer raw stream. The
// complete stream is decoded when the Reader is created; Read and WriteTo
// drain the result. A corrupt stream reports its error after the output
// decoded before the corruption has been drained.
type Reader struct {
	d   decoder
	err error
}

// NewReader creates a Reader decoding z. outputSize gives the size of the
// decompressed data, or an upper bound when only the end of the stream
// limits the output.
func NewReader(z io.Reader, outputSize int) (*Reader, error) {
	return NewReaderConfig(z, ReaderConfig{OutputSize: outputSize})
}

// NewReaderConfig creates a Reader using the given configuration.
func NewReaderConfig(z io.Reader, cfg ReaderConfig) (*Reader, error) {
	cfg.ApplyDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	br, ok := z.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(z)
	}
	r := new(Reader)
	if err := r.d.init(br, cfg); err != nil {
		return nil, err
	}
	r.err = r.d.decode()
	if r.err == nil || r.err == io.ErrUnexpectedEOF {
		r.err = io.EOF
	}
	return r, nil
}

// Read drains decompressed data.
func (r *Reader) Read(p []byte) (n int, err error) {
	n, _ = r.d.buffer.Read(p)
	if n == 0 && len(p) > 0 {
		return 0, r.err
	}
	return n, nil
}

// WriteTo writes the remaining decompressed data to w. A decode error is
// reported after the data decoded before it has been written out.
func (r *Reader) WriteTo(w io.Writer) (n int64, err error) {
	n, err = r.d.buffer.WriteTo(w)
	if err != nil {
		return n, err
	}
	if r.err != io.EOF {
		return n, r.err
	}
	return n, nil
}
