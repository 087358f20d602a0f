package objectid

import "errors"

var (
	// ErrInvalidHexDigit indicates a character outside [0-9a-fA-F].
	ErrInvalidHexDigit = errors.New("objectid: invalid hexadecimal digit")
	// ErrOddHexLength indicates an identifier hex string with an odd number of
	// digits. Only HexPrefix values may be odd; whole identifiers are byte
	// aligned.
	ErrOddHexLength = errors.New("objectid: identifier hex must have an even number of digits")
)
