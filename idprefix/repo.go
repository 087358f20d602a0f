package idprefix

import (
	"github.com/forestrie/go-idprefix/idindex"
	"github.com/forestrie/go-idprefix/objectid"
)

// Repo is the repository-snapshot contract consumed by Context.
//
// Commit resolution is answered by the snapshot's pre-built index over all
// objects it knows. Change-id resolution carries multi-value-per-key
// semantics: one change id resolves to every commit id it currently maps to,
// so a SingleMatch payload is a list even when the query names one change.
//
// Implementations must answer from state fixed at snapshot creation; Context
// performs no caching or invalidation of its own.
type Repo interface {
	ResolveCommitIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID]
	ShortestUniqueCommitIDPrefixLen(id objectid.CommitID) int
	ResolveChangeIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID]
	ShortestUniqueChangeIDPrefixLen(id objectid.ChangeID) int
}
