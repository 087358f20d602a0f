package idindex

// MatchKind discriminates the three possible outcomes of resolving a hex
// prefix against an index.
type MatchKind uint8

const (
	// KindNoMatch means no key in the index matched the prefix.
	KindNoMatch MatchKind = iota
	// KindSingleMatch means every matched entry shares one key.
	KindSingleMatch
	// KindAmbiguousMatch means the matched entries span two or more distinct
	// keys. Ambiguity is binary; the number of distinct keys is not counted.
	KindAmbiguousMatch
)

// PrefixResolution is the outcome of a prefix query. NoMatch and
// AmbiguousMatch are expected, frequent answers, not errors; absence and
// ambiguity never surface as error returns anywhere in this package.
type PrefixResolution[T any] struct {
	kind  MatchKind
	match T
}

// NoMatch returns the no-match outcome.
func NoMatch[T any]() PrefixResolution[T] {
	return PrefixResolution[T]{kind: KindNoMatch}
}

// SingleMatch returns the unambiguous outcome carrying the matched payload.
func SingleMatch[T any](match T) PrefixResolution[T] {
	return PrefixResolution[T]{kind: KindSingleMatch, match: match}
}

// AmbiguousMatch returns the ambiguous outcome.
func AmbiguousMatch[T any]() PrefixResolution[T] {
	return PrefixResolution[T]{kind: KindAmbiguousMatch}
}

// Kind returns the outcome discriminator.
func (r PrefixResolution[T]) Kind() MatchKind { return r.kind }

// Single returns the payload and true when the outcome is a single match.
func (r PrefixResolution[T]) Single() (T, bool) {
	return r.match, r.kind == KindSingleMatch
}
