// Package idprefix resolves abbreviated commit and change ids against one
// repository snapshot, and computes the shortest prefix lengths that keep
// them unambiguous.
package idprefix

import (
	"github.com/forestrie/go-idprefix/idindex"
	"github.com/forestrie/go-idprefix/objectid"
)

// Context routes id-prefix queries to the right index of one repository
// snapshot. It holds no state beyond the snapshot reference; every query is
// an independent, side-effect-free read. When the underlying object set
// changes, construct a new Context from the new snapshot.
type Context struct {
	repo Repo
}

// NewContext binds a context to a repository snapshot.
func NewContext(repo Repo) *Context {
	return &Context{repo: repo}
}

// ResolveCommitPrefix resolves a commit id prefix against the snapshot's
// index of all known commits.
func (c *Context) ResolveCommitPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return c.repo.ResolveCommitIDPrefix(prefix)
}

// ShortestCommitPrefixLen returns the shortest digit count of a prefix of
// commitID that ResolveCommitPrefix still resolves unambiguously.
func (c *Context) ShortestCommitPrefixLen(commitID objectid.CommitID) int {
	return c.repo.ShortestUniqueCommitIDPrefixLen(commitID)
}

// ResolveChangePrefix resolves a change id prefix to the commit ids it maps
// to. A diverged change yields a SingleMatch carrying all of its commits.
func (c *Context) ResolveChangePrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return c.repo.ResolveChangeIDPrefix(prefix)
}

// ShortestChangePrefixLen returns the shortest digit count of a prefix of
// changeID that ResolveChangePrefix still resolves unambiguously.
func (c *Context) ShortestChangePrefixLen(changeID objectid.ChangeID) int {
	return c.repo.ShortestUniqueChangeIDPrefixLen(changeID)
}
