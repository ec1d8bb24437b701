// Package exo decodes Exomizer raw streams, an entropy- and
// dictionary-compressed bit format designed for memory-constrained 8-bit
// targets.
//
// The raw format has no container: it is a plain sequence of bits, most
// significant bit of each byte first. A fixed prefix code selects commands
// from a constant 145-entry table; commands emit runs of literal bytes or
// copy back references out of the output produced so far. Lengths and
// distances use a unary-prefixed gamma code, and gamma-coded copies can
// reuse the most recently used distance. There is no terminator symbol;
// the stream simply ends.
//
// Because the format carries no length header the caller provides the
// output size, or an upper bound when only the end of the stream limits
// the output:
//
//	out, err := exo.Decode(src, 4096)
//
// Reader offers the same decoding behind io.Reader, and DecodeInto
// decodes into a caller-provided buffer. The package implements only a
// decoder; the compressed streams come from the format's own tooling.
package exo
