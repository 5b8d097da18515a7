package base32768

import "github.com/streamcodec/base32768/internal/blockcodec"

// CodeUnitSink receives batches of encoded code units. It is the Go
// analogue of the "extend(iter of u16)" sink contract described for the
// buffered write-encoder: it accepts an arbitrary finite sequence and must
// not fail.
type CodeUnitSink interface {
	WriteCodeUnits(units []uint16)
}

// Encoder is a sink-polymorphic, buffered write-encoder. It accepts bytes
// incrementally, batches them into full 15-byte blocks, and flushes a
// trailing partial block only when Finish is called. It owns a tiny
// 15-byte staging buffer and allocates nothing else on the steady-state
// path.
type Encoder struct {
	sink    CodeUnitSink
	tables  *blockcodec.Tables
	staging [blockcodec.BlockBytes]byte
	staged  int
	units   [blockcodec.BlockUnits]uint16
}

// NewEncoder returns an Encoder that writes code units to sink.
func NewEncoder(sink CodeUnitSink) *Encoder {
	return &Encoder{sink: sink, tables: blockcodec.Get()}
}

// Write implements io.Writer. Writing never fails; the sink's contract
// forbids it. Write always makes progress unless p is empty: it either
// drains p directly in whole 15-byte chunks or tops up the staging buffer.
func (e *Encoder) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if e.staged == 0 && len(p) >= blockcodec.BlockBytes {
			n := blockcodec.EncodeBlock(e.units[:], p[:blockcodec.BlockBytes], e.tables)
			e.sink.WriteCodeUnits(e.units[:n])
			p = p[blockcodec.BlockBytes:]
			continue
		}
		k := copy(e.staging[e.staged:], p)
		e.staged += k
		p = p[k:]
		if e.staged == blockcodec.BlockBytes {
			n := blockcodec.EncodeBlock(e.units[:], e.staging[:], e.tables)
			e.sink.WriteCodeUnits(e.units[:n])
			e.staged = 0
		}
	}
	return total, nil
}

// Flush emits any full block staged by a prior Write. Write always drains a
// completed staging buffer before returning, so under normal use there is
// never a full block left pending; Flush exists to make that guarantee
// explicit and cheap to call defensively.
func (e *Encoder) Flush() {
	if e.staged != blockcodec.BlockBytes {
		return
	}
	n := blockcodec.EncodeBlock(e.units[:], e.staging[:], e.tables)
	e.sink.WriteCodeUnits(e.units[:n])
	e.staged = 0
}

// Finish flushes the staging buffer as a partial tail block, if any bytes
// remain staged, and resets the encoder. It MUST be called to emit the
// tail; an Encoder dropped without Finish silently loses it.
func (e *Encoder) Finish() {
	if e.staged == 0 {
		return
	}
	n := blockcodec.EncodeBlock(e.units[:], e.staging[:e.staged], e.tables)
	e.sink.WriteCodeUnits(e.units[:n])
	e.staged = 0
}
