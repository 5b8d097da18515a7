package base32768

import (
	"io"

	"github.com/streamcodec/base32768/internal/blockcodec"
)

// CodeUnitSource supplies code units lazily, at most len(buf) per call -
// the Go analogue of the lazy finite u16 sequence the block-buffered
// decoder pulls from. It signals end of stream with (0, io.EOF). The
// Decoder takes a call that returns fewer than len(buf) units as the end
// of the stream and makes no further calls; an error other than io.EOF is
// reported only when it comes with n == 0.
type CodeUnitSource interface {
	ReadCodeUnits(buf []uint16) (n int, err error)
}

// Decoder is a source-polymorphic, block-buffered pull decoder
// parameterised by an internal byte-buffer size that is a positive
// multiple of 15. It pulls up to (size/15)*8 code units from its source
// per refill, decodes them in one pass, and exposes the result through
// io.Reader and io.ByteReader.
//
// Once a decoding error occurs, or the source is exhausted, the Decoder is
// closed: it performs no further pulls and returns the same terminal error
// (or io.EOF) on every subsequent call.
type Decoder struct {
	src      CodeUnitSource
	tables   *blockcodec.Tables
	units    []uint16
	buf      []byte
	filled   int
	consumed int
	closed   bool
	err      error
}

// NewDecoder returns a Decoder reading from src, buffering up to size
// decoded bytes per refill. size must be a positive multiple of 15.
func NewDecoder(src CodeUnitSource, size int) *Decoder {
	if size <= 0 || size%blockcodec.BlockBytes != 0 {
		panic("base32768: decoder buffer size must be a positive multiple of 15")
	}
	return &Decoder{
		src:    src,
		tables: blockcodec.Get(),
		units:  make([]uint16, (size/blockcodec.BlockBytes)*blockcodec.BlockUnits),
		buf:    make([]byte, size),
	}
}

// FillBuf returns the currently buffered, unconsumed bytes, pulling and
// decoding a fresh batch from the source first if the buffer is empty.
func (d *Decoder) FillBuf() ([]byte, error) {
	if err := d.fillBuf(); err != nil {
		return nil, err
	}
	return d.buf[d.consumed:d.filled], nil
}

// Consume advances the consumed cursor by k bytes, as returned by FillBuf.
func (d *Decoder) Consume(k int) {
	d.consumed += k
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.fillBuf(); err != nil {
		return 0, err
	}
	if d.consumed >= d.filled {
		return 0, io.EOF
	}
	n := copy(p, d.buf[d.consumed:d.filled])
	d.consumed += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (d *Decoder) ReadByte() (byte, error) {
	if err := d.fillBuf(); err != nil {
		return 0, err
	}
	if d.consumed >= d.filled {
		return 0, io.EOF
	}
	b := d.buf[d.consumed]
	d.consumed++
	return b, nil
}

// fillBuf implements the refill rule of §4.4: pull up to one buffer's worth
// of code units and decode them in a single pass, deciding along the way
// whether this was an interior full refill (more data may follow) or the
// final one (source exhausted, or a short-tagged tail unit was seen).
func (d *Decoder) fillBuf() error {
	if d.consumed < d.filled {
		return nil
	}
	if d.closed {
		if d.err != nil {
			return d.err
		}
		return io.EOF
	}

	want := len(d.units)
	got, srcErr := d.src.ReadCodeUnits(d.units[:want])
	d.filled, d.consumed = 0, 0
	if got == 0 {
		d.closed = true
		if srcErr != nil && srcErr != io.EOF {
			d.err = srcErr
			return srcErr
		}
		return io.EOF
	}

	units := d.units[:got]
	lastVal, lastOK := d.tables.Lookup(units[got-1])
	lastIsPrimary := lastOK && lastVal&blockcodec.ShortFlag == 0

	if got == want && lastIsPrimary {
		filled, err := d.decodeFullBlocks(units)
		if err != nil {
			d.closed, d.err = true, err
			return err
		}
		d.filled = filled
		return nil
	}

	// Either the source is exhausted (got < want) or the final unit is
	// short-tagged: this refill is the last one regardless of outcome.
	d.closed = true
	filled, err := d.decodeFinalGroup(units)
	if err != nil {
		d.err = err
		return err
	}
	d.filled = filled
	if d.filled == 0 {
		return io.EOF
	}
	return nil
}

// decodeFullBlocks decodes a group of whole 8-unit blocks known to have a
// primary-tagged last unit overall. DecodeBlock only rejects a short tag
// before the last position of the single block it is given, so a short
// tag sitting at the end of an earlier block within this group (not the
// group's last unit) would otherwise slip through undetected. Scan the
// whole group up front, as the reference decoder does before splitting
// into blocks at all.
func (d *Decoder) decodeFullBlocks(units []uint16) (int, error) {
	for _, u := range units[:len(units)-1] {
		v, ok := d.tables.Lookup(u)
		if !ok {
			return 0, InvalidCodePointError{CodeUnit: u}
		}
		if v&blockcodec.ShortFlag != 0 {
			return 0, ErrUnexpectedEndOfStream
		}
	}
	filled := 0
	for i := 0; i < len(units); i += blockcodec.BlockUnits {
		n, err := blockcodec.DecodeBlock(d.buf[filled:], units[i:i+blockcodec.BlockUnits], d.tables)
		if err != nil {
			return 0, err
		}
		filled += n
	}
	return filled, nil
}

// decodeFinalGroup decodes every whole interior block, rejecting a
// short-tagged unit at any position within them (only the very last group
// of the whole stream may end short), then decodes the trailing 0..8 unit
// tail per §4.2.
func (d *Decoder) decodeFinalGroup(units []uint16) (int, error) {
	filled := 0
	i := 0
	for len(units)-i > blockcodec.BlockUnits {
		chunk := units[i : i+blockcodec.BlockUnits]
		for _, u := range chunk {
			v, ok := d.tables.Lookup(u)
			if !ok {
				return 0, InvalidCodePointError{CodeUnit: u}
			}
			if v&blockcodec.ShortFlag != 0 {
				return 0, ErrUnexpectedEndOfStream
			}
		}
		n, err := blockcodec.DecodeBlock(d.buf[filled:], chunk, d.tables)
		if err != nil {
			return 0, err
		}
		filled += n
		i += blockcodec.BlockUnits
	}
	n, err := blockcodec.DecodeBlock(d.buf[filled:], units[i:], d.tables)
	if err != nil {
		return 0, err
	}
	filled += n
	return filled, nil
}
