package base32768

import "github.com/streamcodec/base32768/internal/blockcodec"

// InvalidCodePointError reports a code unit that belongs to neither the
// primary nor the secondary alphabet.
type InvalidCodePointError = blockcodec.InvalidCodePointError

// ErrUnexpectedEndOfStream indicates a short-tagged code unit appeared at a
// non-final position, or more tail words arrived than a single block can
// finalise.
var ErrUnexpectedEndOfStream = blockcodec.ErrUnexpectedEndOfStream

// InvalidPaddingError reports a tail byte whose trailing-ones count does not
// match the padding implied by the declared bit residue. Carries the
// offending byte.
type InvalidPaddingError = blockcodec.InvalidPaddingError
