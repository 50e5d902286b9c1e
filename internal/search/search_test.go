package search

import (
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var library = []domain.Entry{
	{Title: "The Left Hand of Darkness", Creator: "Ursula K. Le Guin", Rating: 9},
	{Title: "Dune", Creator: "Frank Herbert", Comment: "spice must flow", Rating: 10},
	{Title: "Emma", Creator: "Jane Austen", Rating: 7},
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	results := Filter(library, "  ")
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, library[i], r.Entry)
	}
}

func TestTitleMatchKeepsOriginalIndex(t *testing.T) {
	results := Filter(library, "dune")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, []int{0, 1, 2, 3}, results[0].MatchedIndexes)
}

func TestCaseInsensitive(t *testing.T) {
	results := Filter(library, "EMMA")
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Index)
}

func TestCreatorAndCommentFallback(t *testing.T) {
	results := Filter(library, "austen")
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Index)
	assert.Nil(t, results[0].MatchedIndexes)

	results = Filter(library, "spice")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
}

func TestNoMatch(t *testing.T) {
	assert.Empty(t, Filter(library, "zzzz"))
}

func TestRunePositions(t *testing.T) {
	// "ё" is two bytes; the byte offset of "ж" is 2
	assert.Equal(t, []int{0, 1}, runePositions("ёж", []int{0, 2}))
	assert.Nil(t, runePositions("abc", nil))
}

func TestMatchPositionsFollowDisplayedTitle(t *testing.T) {
	// Lowercasing "İ" yields two runes, which would shift every later position
	entries := []domain.Entry{{Title: "İyi Günler", Rating: 6}}

	results := Filter(entries, "Günler")
	require.Len(t, results, 1)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, results[0].MatchedIndexes)
}
