package objectid

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexPrefix is a validated, immutable partial hex string used to match
// identifiers. It may have an odd number of digits; the trailing odd digit
// constrains only the high nibble of the corresponding identifier byte.
//
// The zero value is the empty prefix, which matches every identifier.
type HexPrefix struct {
	// digits is the lower-case hex digit string, possibly odd length.
	digits string
	// minPrefix is the byte-aligned lower bound: the digits decoded to bytes,
	// with a trailing odd digit padded by a zero nibble. Every identifier
	// matched by the prefix is >= minPrefix in byte order.
	minPrefix string
}

// NewHexPrefix validates and constructs a prefix query from hex text.
//
// Upper-case digits are folded to lower. Any character outside [0-9a-fA-F]
// fails with ErrInvalidHexDigit; this is the only place malformed query text
// is rejected, so downstream index operations never see an invalid prefix.
func NewHexPrefix(s string) (HexPrefix, error) {
	digits := strings.ToLower(s)
	padded := digits
	if len(padded)%2 != 0 {
		padded += "0"
	}
	b, err := hex.DecodeString(padded)
	if err != nil {
		return HexPrefix{}, fmt.Errorf("%w: %q", ErrInvalidHexDigit, s)
	}
	return HexPrefix{digits: digits, minPrefix: string(b)}, nil
}

// Hex returns the lower-case digit string, odd length preserved.
func (p HexPrefix) Hex() string { return p.digits }

// DigitCount returns the number of hex digits in the prefix.
func (p HexPrefix) DigitCount() int { return len(p.digits) }

// MinBytes returns the minimal byte sequence that lower-bounds every
// identifier beginning with these digits. It is suitable as a binary search
// bound over byte-lexicographically ordered keys.
func (p HexPrefix) MinBytes() []byte { return []byte(p.minPrefix) }

// Matches reports whether the identifier bytes begin with this prefix's
// digits. A prefix longer than the identifier's digit count never matches.
func (p HexPrefix) Matches(key []byte) bool {
	return p.matches(string(key))
}

// MatchesString is Matches for string-backed identifier types, avoiding the
// byte slice conversion on range-scan hot paths.
func MatchesString[K ~string](p HexPrefix, key K) bool {
	return p.matches(string(key))
}

func (p HexPrefix) matches(key string) bool {
	whole := len(p.digits) / 2
	if len(p.digits) > len(key)*2 {
		return false
	}
	if key[:whole] != p.minPrefix[:whole] {
		return false
	}
	if len(p.digits)%2 == 0 {
		return true
	}
	// Odd trailing digit: only the high nibble of the next byte is
	// constrained. minPrefix holds that digit zero-padded.
	return key[whole]>>4 == p.minPrefix[whole]>>4
}
