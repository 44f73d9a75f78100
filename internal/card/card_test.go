package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFromLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		label    string
		expected Rank
		hasError bool
	}{
		{name: "Ace", label: "A", expected: RankA},
		{name: "Ten", label: "10", expected: Rank10},
		{name: "Ten shorthand", label: "t", expected: Rank10},
		{name: "Two with spaces", label: " 2 ", expected: Rank2},
		{name: "Lowercase king", label: "k", expected: RankK},
		{name: "Joker is not tracked", label: "R", hasError: true},
		{name: "Empty", label: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rank, err := RankFromLabel(tt.label)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rank)
		})
	}
}

func TestRank_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10", Rank10.String())
	assert.Equal(t, "A", RankA.String())
	assert.Equal(t, "2", Rank2.String())
	assert.Equal(t, "99", Rank(99).String())
}

func TestDisplayOrder(t *testing.T) {
	t.Parallel()

	seen := make(map[Rank]bool)
	for _, r := range DisplayOrder {
		assert.True(t, r.Valid(), "rank %v should be valid", r)
		assert.False(t, seen[r], "rank %v listed twice", r)
		seen[r] = true
	}
	assert.Len(t, seen, RowCount)

	assert.Equal(t, 0, RowOf(Rank2))
	assert.Equal(t, 1, RowOf(RankA))
	assert.Equal(t, 12, RowOf(Rank3))
	assert.Equal(t, -1, RowOf(Rank(42)))
}
