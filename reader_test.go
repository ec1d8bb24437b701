package exo

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderHello(t *testing.T) {
	r, err := NewReader(bytes.NewReader(helloStream), 40)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if string(out) != "Hello" {
		t.Fatalf("read: got %q; want %q", out, "Hello")
	}
}

func TestReaderWriteTo(t *testing.T) {
	r, err := NewReader(bytes.NewReader(helloStream), 40)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo error %s", err)
	}
	if n != 5 || buf.String() != "Hello" {
		t.Fatalf("WriteTo: got %d, %q; want 5, %q", n, buf.String(),
			"Hello")
	}
}

func TestReaderNonByteReader(t *testing.T) {
	// io.LimitReader hides the ByteReader of the underlying bytes.Reader
	z := io.LimitReader(bytes.NewReader(helloStream), 7)
	r, err := NewReader(z, 40)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if string(out) != "Hello" {
		t.Fatalf("read: got %q; want %q", out, "Hello")
	}
}

func TestReaderCorruptStream(t *testing.T) {
	var w bitWriter
	w.literal([]byte("A"))
	w.gammaCopyNew(4, 5)
	r, err := NewReader(bytes.NewReader(w.bytes()), 16)
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	// the valid prefix drains first, then the error surfaces
	out, err := io.ReadAll(r)
	if !errors.Is(err, ErrInvalidBackReference) {
		t.Fatalf("read: got error %v; want %v", err,
			ErrInvalidBackReference)
	}
	if string(out) != "A" {
		t.Fatalf("read: got %q; want %q", out, "A")
	}
}

func TestReaderNoOffsetReuse(t *testing.T) {
	// without offset reuse the reuse bit is absent and every gamma copy
	// codes its distance directly
	var w bitWriter
	w.literal([]byte("A"))
	w.writeBits(0xf, 4)
	w.writeGamma(1) // length 4
	w.writeGamma(1) // distance 1, no reuse bit in between
	r, err := NewReaderConfig(bytes.NewReader(w.bytes()), ReaderConfig{
		OutputSize:    5,
		NoOffsetReuse: true,
	})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if string(out) != "AAAAA" {
		t.Fatalf("read: got %q; want %q", out, "AAAAA")
	}
}

func TestReaderConfigVerify(t *testing.T) {
	if _, err := NewReader(bytes.NewReader(helloStream), 0); err == nil {
		t.Error("NewReader with output size 0: no error")
	}
	_, err := NewReaderConfig(bytes.NewReader(helloStream), ReaderConfig{
		OutputSize:   16,
		MaxGammaBits: 17,
	})
	if err == nil {
		t.Error("NewReaderConfig with MaxGammaBits 17: no error")
	}
}

func TestReaderConfigDefaults(t *testing.T) {
	var cfg ReaderConfig
	cfg.ApplyDefaults()
	if cfg.MaxGammaBits != defaultMaxGammaBits {
		t.Errorf("MaxGammaBits: got %d; want %d", cfg.MaxGammaBits,
			defaultMaxGammaBits)
	}
	if cfg.NoOffsetReuse {
		t.Error("NoOffsetReuse: got true; want false")
	}
}
