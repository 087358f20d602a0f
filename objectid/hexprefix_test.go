package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHexPrefix(t *testing.T) {
	p, err := NewHexPrefix("0aB")
	require.NoError(t, err)
	assert.Equal(t, "0ab", p.Hex())
	assert.Equal(t, 3, p.DigitCount())
	assert.Equal(t, []byte{0x0a, 0xb0}, p.MinBytes())

	p, err = NewHexPrefix("")
	require.NoError(t, err)
	assert.Equal(t, 0, p.DigitCount())
	assert.Empty(t, p.MinBytes())

	_, err = NewHexPrefix("0g")
	require.ErrorIs(t, err, ErrInvalidHexDigit)

	_, err = NewHexPrefix("xyz")
	require.ErrorIs(t, err, ErrInvalidHexDigit)
}

// Prefix construction is length-agnostic: a query with more digits than any
// identifier is well formed, and is excluded at match time rather than at
// construction.
func TestNewHexPrefixLengthAgnostic(t *testing.T) {
	long := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef012345"
	p, err := NewHexPrefix(long)
	require.NoError(t, err)
	assert.Equal(t, len(long), p.DigitCount())

	id := CommitIDFromContent([]byte("anything"))
	assert.False(t, p.Matches(id.AsBytes()))

	// Identifier hex constructors likewise accept any even digit count; the
	// canonical lengths are a codec-boundary concern, not a type invariant.
	short, err := CommitIDFromHex("0abc")
	require.NoError(t, err)
	assert.Len(t, short.AsBytes(), 2)
}

func TestHexPrefixMatches(t *testing.T) {
	type args struct {
		prefix string
		key    []byte
	}
	tests := []struct {
		name    string
		args    args
		matches bool
	}{
		{
			name:    "empty prefix matches everything",
			args:    args{prefix: "", key: []byte{0xff, 0x00}},
			matches: true,
		},
		{
			name:    "empty prefix matches empty key",
			args:    args{prefix: "", key: nil},
			matches: true,
		},
		{
			name:    "even prefix matches",
			args:    args{prefix: "0a", key: []byte{0x0a, 0xff}},
			matches: true,
		},
		{
			name:    "even prefix differs",
			args:    args{prefix: "0b", key: []byte{0x0a, 0xff}},
			matches: false,
		},
		{
			name:    "odd prefix matches high nibble",
			args:    args{prefix: "0ab", key: []byte{0x0a, 0xbc}},
			matches: true,
		},
		{
			name:    "odd prefix rejects low-nibble-only agreement",
			args:    args{prefix: "0ab", key: []byte{0x0a, 0xcb}},
			matches: false,
		},
		{
			name:    "full-length prefix matches exact key",
			args:    args{prefix: "0abc", key: []byte{0x0a, 0xbc}},
			matches: true,
		},
		{
			name:    "prefix longer than key never matches",
			args:    args{prefix: "0abc0", key: []byte{0x0a, 0xbc}},
			matches: false,
		},
		{
			name:    "odd prefix at key boundary",
			args:    args{prefix: "0abc1", key: []byte{0x0a, 0xbc, 0x1f}},
			matches: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewHexPrefix(tt.args.prefix)
			require.NoError(t, err)
			if got := p.Matches(tt.args.key); got != tt.matches {
				t.Errorf("Matches() = %v, want %v", got, tt.matches)
			}
			if got := MatchesString(p, string(tt.args.key)); got != tt.matches {
				t.Errorf("MatchesString() = %v, want %v", got, tt.matches)
			}
		})
	}
}
