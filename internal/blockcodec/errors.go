package blockcodec

import (
	"errors"
	"fmt"
)

// InvalidCodePointError reports a code unit that belongs to neither the
// primary nor the secondary alphabet.
type InvalidCodePointError struct {
	CodeUnit uint16
}

func (e InvalidCodePointError) Error() string {
	return fmt.Sprintf("base32768: invalid code point U+%04X", e.CodeUnit)
}

// ErrUnexpectedEndOfStream indicates a short-tagged code unit appeared at a
// non-final position, or more tail words arrived than a single block can
// finalise.
var ErrUnexpectedEndOfStream = errors.New("base32768: unexpected end-of-stream marker")

// InvalidPaddingError reports a tail byte whose trailing-ones count does not
// match the padding implied by the declared bit residue.
type InvalidPaddingError struct {
	Residue byte
}

func (e InvalidPaddingError) Error() string {
	return fmt.Sprintf("base32768: invalid padding in residual byte 0x%02X", e.Residue)
}
