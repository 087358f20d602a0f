package snapshot

import "errors"

var (
	ErrBadCommitIDLength = errors.New("snapshot: commit id has the wrong length")
	ErrBadChangeIDLength = errors.New("snapshot: change id has the wrong length")
)
