// Package base32768 implements base32768, a binary-to-text codec that packs
// raw octets into UTF-16 code units drawn from a curated set of 32,768
// "primary" code points plus 128 "short" code points reserved for
// end-of-stream padding.
//
// # Overview
//
// Eight code units encode fifteen bytes (versus six bytes per eight
// characters for base64), so base32768 output is substantially more
// compact than base64 wherever the transport already speaks UTF-16 or
// accepts arbitrary BMP text - JSON string values, for instance.
//
// The package exposes two independent, style-parallel ways to drive the
// codec:
//
//   - Encoder / Decoder: a buffered, byte-oriented write-encoder and a
//     block-buffered pull-decoder, the natural fit for io.Writer/io.Reader
//     style pipelines.
//   - The stream sub-package: three non-blocking pipeline stage functions
//     over typed, backpressure-aware pipes, for embedders that want to
//     interleave codec work with their own I/O loop instead of blocking on
//     Write/Read.
//
// Both are built on the same alphabet tables and block codec; either may be
// chosen without affecting the bytes produced.
//
// # Basic usage
//
//	var sink base32768.CodeUnitSink // anything implementing WriteCodeUnits
//	enc := base32768.NewEncoder(sink)
//	enc.Write([]byte("hello world"))
//	enc.Finish() // required: flushes the trailing partial block
//
//	var src base32768.CodeUnitSource // anything implementing ReadCodeUnits
//	dec := base32768.NewDecoder(src, 15*64) // buffer 64 blocks at a time
//	data, err := io.ReadAll(dec)
//
// # Errors
//
// Decoding can fail three ways: InvalidCodePointError (a code unit outside
// either alphabet), ErrUnexpectedEndOfStream (a short-tagged code unit
// appeared before the last position, or more tail words arrived than a
// block can finalise), and InvalidPaddingError (the tail's padding bits
// don't match its declared bit residue). Once returned, a Decoder is
// closed and returns the same error on every subsequent read. Encoding
// cannot fail.
package base32768
