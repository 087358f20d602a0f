// Package snapshot provides a read-only repository snapshot satisfying the
// idprefix.Repo contract: an index over all known commits for commit-id
// queries, and an index over the visible (change id, commit id) pairs for
// change-id queries.
package snapshot

import (
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-idprefix/idindex"
	"github.com/forestrie/go-idprefix/objectid"
)

// Record is one commit's identity row in a snapshot.
//
// Hidden records are commits that remain known to the object store but are
// no longer in the visible set (obsolete revisions, abandoned heads). They
// participate in commit-id resolution and are excluded from change-id
// resolution, mirroring the index-over-all-objects vs
// change-index-over-visible-set split of the owning repository.
type Record struct {
	CommitID objectid.CommitID
	ChangeID objectid.ChangeID
	Hidden   bool
}

// Store is an immutable snapshot of commit identity records with both
// prefix indexes pre-built. Build once, query concurrently.
type Store struct {
	records     []Record
	commitIndex *idindex.IdIndex[objectid.CommitID, objectid.CommitID]
	changeIndex *idindex.IdIndex[objectid.ChangeID, objectid.CommitID]
}

// NewStore builds a snapshot from the given records. Construction always
// succeeds; the empty batch yields a store on which every resolution is a
// NoMatch and every shortest-prefix length is 0.
//
// Construction logs at debug, so the process must have initialized the
// package logger (logger.New) before the first NewStore call.
//
// NewStore takes ownership of the records slice.
func NewStore(records []Record) *Store {
	commitEntries := make([]idindex.Entry[objectid.CommitID, objectid.CommitID], 0, len(records))
	changeEntries := make([]idindex.Entry[objectid.ChangeID, objectid.CommitID], 0, len(records))
	for _, r := range records {
		commitEntries = append(commitEntries, idindex.Entry[objectid.CommitID, objectid.CommitID]{
			Key: r.CommitID, Value: r.CommitID,
		})
		if r.Hidden {
			continue
		}
		changeEntries = append(changeEntries, idindex.Entry[objectid.ChangeID, objectid.CommitID]{
			Key: r.ChangeID, Value: r.CommitID,
		})
	}
	s := &Store{
		records:     records,
		commitIndex: idindex.From(commitEntries),
		changeIndex: idindex.From(changeEntries),
	}
	logger.Sugar.Debugf(
		"snapshot: indexed %d commits, %d visible", len(records), s.changeIndex.Len())
	return s
}

// Records returns the snapshot's record batch. Callers must not modify it.
func (s *Store) Records() []Record { return s.records }

// ResolveCommitIDPrefix resolves a commit id prefix over all known commits,
// hidden included.
func (s *Store) ResolveCommitIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return s.commitIndex.ResolvePrefix(prefix)
}

// ShortestUniqueCommitIDPrefixLen returns the digit count disambiguating
// id among all known commits.
func (s *Store) ShortestUniqueCommitIDPrefixLen(id objectid.CommitID) int {
	return s.commitIndex.ShortestUniquePrefixLen(id)
}

// ResolveChangeIDPrefix resolves a change id prefix to the commit ids of the
// visible set. A diverged change yields a SingleMatch with several commits.
func (s *Store) ResolveChangeIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return s.changeIndex.ResolvePrefix(prefix)
}

// ShortestUniqueChangeIDPrefixLen returns the digit count disambiguating
// id among the visible set's change ids.
func (s *Store) ShortestUniqueChangeIDPrefixLen(id objectid.ChangeID) int {
	return s.changeIndex.ShortestUniquePrefixLen(id)
}
