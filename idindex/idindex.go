package idindex

import (
	"cmp"
	"iter"
	"slices"
	"sort"

	"github.com/forestrie/go-idprefix/objectid"
)

// Entry associates one index key with one value. Duplicate keys across
// entries are legal; they represent multiple values attached to one key.
type Entry[K ~string, V any] struct {
	Key   K
	Value V
}

// IdIndex is an immutable ordered multimap over string-backed binary
// identifiers. It is built once from a finite batch of entries and then
// queried any number of times; there is no post-construction mutation, so a
// built index is safe for concurrent readers without locking.
type IdIndex[K ~string, V any] struct {
	// entries is sorted ascending by key. Order among entries sharing a key
	// is unspecified.
	entries []Entry[K, V]
}

// From builds an index from the given entries, sorting them by key.
// Construction always succeeds, including for the empty batch; no
// deduplication is performed.
//
// From takes ownership of the entries slice.
func From[K ~string, V any](entries []Entry[K, V]) *IdIndex[K, V] {
	slices.SortFunc(entries, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return &IdIndex[K, V]{entries: entries}
}

// Len returns the number of entries, counting duplicates.
func (x *IdIndex[K, V]) Len() int { return len(x.entries) }

// HasKey reports whether at least one entry has exactly this key.
func (x *IdIndex[K, V]) HasKey(key K) bool {
	_, ok := slices.BinarySearchFunc(x.entries, key, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
	return ok
}

// ResolvePrefixRange returns the ordered sequence of all entries whose key
// matches the prefix. The sequence is generated lazily and can be restarted
// by ranging again; each traversal recomputes from the index.
//
// The scan is bounded: binary search to the first key not below the prefix's
// byte-aligned lower bound, then forward only while keys still match, giving
// O(log n + m) for m matches.
func (x *IdIndex[K, V]) ResolvePrefixRange(prefix objectid.HexPrefix) iter.Seq2[K, V] {
	minKey := string(prefix.MinBytes())
	pos := sort.Search(len(x.entries), func(i int) bool {
		return string(x.entries[i].Key) >= minKey
	})
	return func(yield func(K, V) bool) {
		for _, e := range x.entries[pos:] {
			if !objectid.MatchesString(prefix, e.Key) {
				return
			}
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// ResolvePrefixWith resolves the prefix, applying valueMapper to each matched
// value. All matched entries sharing one key resolve to a SingleMatch
// carrying every mapped value, duplicates included; entries under two or more
// distinct keys resolve to AmbiguousMatch.
//
// This is a package function rather than a method because the mapped type U
// is an additional type parameter.
func ResolvePrefixWith[K ~string, V, U any](
	x *IdIndex[K, V], prefix objectid.HexPrefix, valueMapper func(V) U) PrefixResolution[[]U] {

	var firstKey K
	var matches []U
	for k, v := range x.ResolvePrefixRange(prefix) {
		if len(matches) == 0 {
			firstKey = k
		} else if k != firstKey {
			return AmbiguousMatch[[]U]()
		}
		matches = append(matches, valueMapper(v))
	}
	if len(matches) == 0 {
		return NoMatch[[]U]()
	}
	return SingleMatch(matches)
}

// ResolvePrefix is ResolvePrefixWith under the identity mapper.
func (x *IdIndex[K, V]) ResolvePrefix(prefix objectid.HexPrefix) PrefixResolution[[]V] {
	return ResolvePrefixWith(x, prefix, func(v V) V { return v })
}

// ShortestUniquePrefixLen returns the minimum number of leading hex digits of
// key that disambiguate it from every other distinct key in the index.
// Entries whose key equals key are never competitors, so duplicates of the
// key itself do not inflate the answer. The result is 0 when the index holds
// no other-keyed entry at all.
//
// The key need not be present in the index: the answer depends only on the
// two sorted neighbours of its insertion point.
//
// When some longer key in the index begins with every digit of key, the
// result is key's digit length + 1. No prefix of key, including all of it,
// distinguishes key from that neighbour; callers wanting a displayable
// prefix fall back to the identifier's full canonical length.
func (x *IdIndex[K, V]) ShortestUniquePrefixLen(key K) int {
	pos := sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].Key >= key
	})
	best := 0
	if pos > 0 {
		left := x.entries[pos-1].Key
		best = objectid.CommonHexLen([]byte(string(key)), []byte(string(left))) + 1
	}
	// The right neighbour is the smallest key strictly greater than key,
	// skipping entries exactly equal to it.
	for i := pos; i < len(x.entries); i++ {
		right := x.entries[i].Key
		if right == key {
			continue
		}
		if n := objectid.CommonHexLen([]byte(string(key)), []byte(string(right))) + 1; n > best {
			best = n
		}
		break
	}
	return best
}
