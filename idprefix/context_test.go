package idprefix

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-idprefix/idindex"
	"github.com/forestrie/go-idprefix/objectid"
)

// indexRepo answers the Repo contract from two pre-built indexes, the way a
// snapshot does: commit queries over all known commits, change queries over
// the visible (change id, commit id) pairs.
type indexRepo struct {
	commits *idindex.IdIndex[objectid.CommitID, objectid.CommitID]
	changes *idindex.IdIndex[objectid.ChangeID, objectid.CommitID]
}

func (r *indexRepo) ResolveCommitIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return r.commits.ResolvePrefix(prefix)
}

func (r *indexRepo) ShortestUniqueCommitIDPrefixLen(id objectid.CommitID) int {
	return r.commits.ShortestUniquePrefixLen(id)
}

func (r *indexRepo) ResolveChangeIDPrefix(prefix objectid.HexPrefix) idindex.PrefixResolution[[]objectid.CommitID] {
	return r.changes.ResolvePrefix(prefix)
}

func (r *indexRepo) ShortestUniqueChangeIDPrefixLen(id objectid.ChangeID) int {
	return r.changes.ShortestUniquePrefixLen(id)
}

func commitID(t *testing.T, s string) objectid.CommitID {
	t.Helper()
	id, err := objectid.CommitIDFromHex(s)
	require.NoError(t, err)
	return id
}

func changeID(t *testing.T, s string) objectid.ChangeID {
	t.Helper()
	id, err := objectid.ChangeIDFromHex(s)
	require.NoError(t, err)
	return id
}

func hexPrefix(t *testing.T, s string) objectid.HexPrefix {
	t.Helper()
	p, err := objectid.NewHexPrefix(s)
	require.NoError(t, err)
	return p
}

func TestContextQueries(t *testing.T) {
	c1 := commitID(t, "1111")
	c2 := commitID(t, "1234")
	c3 := commitID(t, "1235")
	divergent := changeID(t, "aaaa")

	repo := &indexRepo{
		commits: idindex.From([]idindex.Entry[objectid.CommitID, objectid.CommitID]{
			{Key: c1, Value: c1},
			{Key: c2, Value: c2},
			{Key: c3, Value: c3},
		}),
		changes: idindex.From([]idindex.Entry[objectid.ChangeID, objectid.CommitID]{
			{Key: divergent, Value: c2},
			{Key: divergent, Value: c3},
			{Key: changeID(t, "ab00"), Value: c1},
		}),
	}
	ctx := NewContext(repo)

	// Commit resolution.
	got := ctx.ResolveCommitPrefix(hexPrefix(t, "11"))
	vs, ok := got.Single()
	require.True(t, ok)
	assert.Equal(t, []objectid.CommitID{c1}, vs)

	assert.Equal(t, idindex.KindAmbiguousMatch, ctx.ResolveCommitPrefix(hexPrefix(t, "123")).Kind())
	assert.Equal(t, idindex.KindNoMatch, ctx.ResolveCommitPrefix(hexPrefix(t, "9")).Kind())

	// Shortest commit prefix lengths.
	assert.Equal(t, 2, ctx.ShortestCommitPrefixLen(c1))
	assert.Equal(t, 4, ctx.ShortestCommitPrefixLen(c2))
	assert.Equal(t, 4, ctx.ShortestCommitPrefixLen(c3))

	// Change resolution: divergence aggregates into one SingleMatch.
	got = ctx.ResolveChangePrefix(hexPrefix(t, "aa"))
	vs, ok = got.Single()
	require.True(t, ok)
	slices.Sort(vs)
	assert.Equal(t, []objectid.CommitID{c2, c3}, vs)

	assert.Equal(t, idindex.KindAmbiguousMatch, ctx.ResolveChangePrefix(hexPrefix(t, "a")).Kind())

	// Shortest change prefix lengths.
	assert.Equal(t, 2, ctx.ShortestChangePrefixLen(divergent))
	assert.Equal(t, 2, ctx.ShortestChangePrefixLen(changeID(t, "ab00")))
}
