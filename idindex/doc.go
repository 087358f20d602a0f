package idindex

/*

# Ordered prefix index

This package provides IdIndex, the ordered multimap behind short-hash display
and short-hash parsing: prefix-range lookup, exact membership, and
shortest-unique-prefix computation over a flat, sorted batch of (key, value)
entries.

It follows the same "functional primitives" style as the other go-* index
packages:

- a dense, immutable backing slice rather than a node-based container
- partition-point binary searches for every lookup
- a burden of knowledge on the caller for construction invariants

## Why a sorted slice and not a trie

Shortest-unique-prefix computation sounds trie shaped, but in a sorted
collection the only keys that can share the longest common prefix with a
given key are its two immediate neighbours. Binary search to the insertion
point and two neighbour comparisons answer the query in O(log n), with none
of the construction or maintenance cost of a radix structure.

## Duplicate keys

Duplicate keys are legal and meaningful: they are how several values (for
example, the divergent commits of one change id) attach to a single key.
A prefix that matches only entries of one key resolves to a SingleMatch
carrying every attached value; distinct keys under one prefix are an
AmbiguousMatch. Order among entries sharing a key carries no meaning.

*/
