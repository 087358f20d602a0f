package objectid

/*

# Identifier primitives for prefix resolution

This package provides the identifier kinds used by go-idprefix and the
HexPrefix query type used to match them.

Identifiers are fixed-format byte sequences with a lower-case hexadecimal
rendering. The raw bytes are held in a string so that Go's built-in string
comparison is exactly the required total order: unsigned byte-lexicographic.

Two kinds are defined:

  - CommitID: a content hash identifying exactly one immutable object.
  - ChangeID: a stable identifier for a logical change. One change id may
    correspond to several commit ids at once when the change has diverged
    into concurrent revisions.

A HexPrefix is a validated partial hex string. It may have an odd number of
digits, in which case the final digit constrains only the high nibble of the
corresponding identifier byte. HexPrefix exposes the two primitives the index
layer needs: a byte-aligned lower bound for binary search, and a digit-wise
match predicate.

*/
