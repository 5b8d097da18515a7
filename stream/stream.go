// Package stream implements the streaming pipeline stages (C5): three pure
// functions over borrowed pipe endpoints that move data through
// bytes_in -> u16_out -> u15s -> bytes_out, decoupling alphabet lookup
// (EncodeBytesToU16, DecodeU16ToU15) from bit unpacking (DecodeU15ToBytes).
// Stages never block and never retry; callers drive them in a fixed-point
// loop (see Drive) until a full pass makes no progress.
package stream

import (
	"github.com/streamcodec/base32768/internal/blockcodec"
	"github.com/streamcodec/base32768/internal/pipebuf"
)

// EncodeBytesToU16 reads bytes_in and writes u16_out. It always succeeds:
// encoding cannot fail. It returns true iff it changed observable state on
// either pipe.
func EncodeBytesToU16(r pipebuf.Reader[byte], w pipebuf.Writer[uint16]) bool {
	progress := false

	if r.ConsumePush() {
		w.Push()
		progress = true
	}

	tb := blockcodec.Get()
	var buf [blockcodec.BlockUnits]uint16
	for r.Len() >= blockcodec.BlockBytes && w.HasSpace(blockcodec.BlockUnits) {
		n := blockcodec.EncodeBlock(buf[:], r.Data()[:blockcodec.BlockBytes], tb)
		w.Write(buf[:n])
		r.Consume(blockcodec.BlockBytes)
		progress = true
	}

	if r.IsAborted() {
		if r.IsClosed() && !w.IsAborted() {
			w.Abort()
			progress = true
		}
		return progress
	}

	if r.IsClosed() && !w.IsClosed() && r.Len() < blockcodec.BlockBytes && (r.Len() == 0 || w.HasSpace(blockcodec.BlockUnits)) {
		if r.Len() > 0 {
			n := blockcodec.EncodeBlock(buf[:], r.Data(), tb)
			w.Write(buf[:n])
			r.Consume(r.Len())
		}
		w.Close()
		progress = true
	}

	return progress
}

// DecodeU16ToU15 reads u16_out (primary alphabet code units) and writes
// u15s (the same values resolved through the alphabet, short tag preserved
// in bit 15). It performs no bit unpacking and no short-position
// validation - that is DecodeU15ToBytes's job, kept separate so a corrupt
// code unit is reported at the earliest possible point. It may fail with
// InvalidCodePointError.
func DecodeU16ToU15(r pipebuf.Reader[uint16], w pipebuf.Writer[uint16]) (bool, error) {
	progress := false

	if r.ConsumePush() {
		w.Push()
		progress = true
	}

	tb := blockcodec.Get()
	var one [1]uint16
	for r.Len() > 0 && w.HasSpace(1) {
		u := r.Data()[0]
		v, ok := tb.Lookup(u)
		if !ok {
			w.Abort()
			return true, blockcodec.InvalidCodePointError{CodeUnit: u}
		}
		one[0] = v
		w.Write(one[:])
		r.Consume(1)
		progress = true
	}

	if r.IsAborted() {
		if r.IsClosed() && !w.IsAborted() {
			w.Abort()
			progress = true
		}
		return progress, nil
	}

	if r.IsClosed() && !w.IsClosed() && r.IsEmpty() {
		w.Close()
		progress = true
	}

	return progress, nil
}

// DecodeU15ToBytes reads u15s (alphabet-decoded words, short tag meaningful
// in bit 15) and writes bytes_out, reconstructing each 15-byte block and
// validating the tail's padding. It may fail with
// ErrUnexpectedEndOfStream or InvalidPaddingError.
func DecodeU15ToBytes(r pipebuf.Reader[uint16], w pipebuf.Writer[byte]) (bool, error) {
	progress := false

	if r.ConsumePush() {
		w.Push()
		progress = true
	}

	var buf [blockcodec.BlockBytes]byte
	backpressure := false
	for r.Len() >= blockcodec.BlockUnits {
		if !w.HasSpace(blockcodec.BlockBytes) {
			backpressure = true
			break
		}
		chunk := r.Data()[:blockcodec.BlockUnits]
		// Exactly one group ending in a short word may be the stream's
		// final tail; leave it for finalisation.
		if r.Len() == blockcodec.BlockUnits && chunk[blockcodec.BlockUnits-1]&blockcodec.ShortFlag != 0 {
			break
		}
		for _, word := range chunk {
			if word&blockcodec.ShortFlag != 0 {
				w.Abort()
				return true, blockcodec.ErrUnexpectedEndOfStream
			}
		}
		n, err := blockcodec.DecodeWords(buf[:], chunk)
		if err != nil {
			w.Abort()
			return true, err
		}
		w.Write(buf[:n])
		r.Consume(blockcodec.BlockUnits)
		progress = true
	}

	if r.IsAborted() {
		if r.IsClosed() && !w.IsAborted() {
			w.Abort()
			progress = true
		}
		return progress, nil
	}

	if r.IsClosed() && !w.IsClosed() {
		// r.Len() > BlockUnits here means real excess tail words only if the
		// loop above ran to exhaustion on its own terms; if it stopped
		// because bytes_out had no room, that is ordinary backpressure, not
		// a framing error, and the next drive pass will make progress once
		// the consumer drains bytes_out.
		if !backpressure && r.Len() > blockcodec.BlockUnits {
			w.Abort()
			return true, blockcodec.ErrUnexpectedEndOfStream
		}
		if !backpressure && w.HasSpace(blockcodec.BlockBytes) {
			n, err := blockcodec.DecodeWords(buf[:], r.Data())
			if err != nil {
				w.Abort()
				return true, err
			}
			w.Write(buf[:n])
			r.Consume(r.Len())
			w.Close()
			progress = true
		}
	}

	return progress, nil
}
