package objectid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	// CommitIDBytes is the canonical raw length of a commit identifier.
	CommitIDBytes = sha256.Size
	// ChangeIDBytes is the canonical raw length of a change identifier.
	ChangeIDBytes = 16
)

// CommitID identifies exactly one immutable commit object.
//
// The raw bytes are held in a string so that the natural ordering of the type
// (<, == on the string) is unsigned byte-lexicographic comparison, which is
// the order every index over identifiers relies on.
type CommitID string

// ChangeID identifies a logical change. Several commit ids may share one
// change id when the change has diverged.
type ChangeID string

// NewCommitID wraps raw identifier bytes. The bytes are copied.
func NewCommitID(b []byte) CommitID { return CommitID(b) }

// NewChangeIDFromBytes wraps raw identifier bytes. The bytes are copied.
func NewChangeIDFromBytes(b []byte) ChangeID { return ChangeID(b) }

// CommitIDFromHex decodes a full, even-length hex rendering of a commit id.
func CommitIDFromHex(s string) (CommitID, error) {
	b, err := idBytesFromHex(s)
	if err != nil {
		return "", err
	}
	return CommitID(b), nil
}

// ChangeIDFromHex decodes a full, even-length hex rendering of a change id.
func ChangeIDFromHex(s string) (ChangeID, error) {
	b, err := idBytesFromHex(s)
	if err != nil {
		return "", err
	}
	return ChangeID(b), nil
}

// CommitIDFromContent derives the commit id for the given content bytes.
func CommitIDFromContent(data []byte) CommitID {
	sum := sha256.Sum256(data)
	return CommitID(sum[:])
}

// NewChangeID mints a fresh random change id (ChangeIDBytes of entropy).
func NewChangeID() ChangeID {
	u := uuid.New()
	return ChangeID(u[:])
}

func (id CommitID) AsBytes() []byte { return []byte(id) }
func (id ChangeID) AsBytes() []byte { return []byte(id) }

// Hex returns the lower-case hexadecimal rendering of the id.
func (id CommitID) Hex() string { return hex.EncodeToString([]byte(id)) }

// Hex returns the lower-case hexadecimal rendering of the id.
func (id ChangeID) Hex() string { return hex.EncodeToString([]byte(id)) }

func idBytesFromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrOddHexLength, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexDigit, s)
	}
	return b, nil
}
