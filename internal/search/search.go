package search

import (
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Result is one entry that matched a filter query
type Result struct {
	Index          int // Position in the unfiltered list; edits and deletes use this
	Entry          domain.Entry
	MatchedIndexes []int // Rune positions in Title that matched (nil for creator/comment matches)
	Score          int
}

// entryIndex implements sahilm/fuzzy.Source over entry titles.
// sahilm/fuzzy folds case itself, so titles are matched as stored and the
// returned byte offsets line up with the displayed text.
type entryIndex []domain.Entry

// String returns the title at index i (implements fuzzy.Source)
func (idx entryIndex) String(i int) string { return idx[i].Title }

// Len returns the number of titles (implements fuzzy.Source)
func (idx entryIndex) Len() int { return len(idx) }

// Filter returns the entries matching query. Title matches come first, best
// score first; entries whose creator or comment match follow in list order.
// An empty query returns every entry in list order.
func Filter(entries []domain.Entry, query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]Result, len(entries))
		for i, e := range entries {
			results[i] = Result{Index: i, Entry: e}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, entryIndex(entries))

	results := make([]Result, 0, len(matches))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			Index:          m.Index,
			Entry:          entries[m.Index],
			MatchedIndexes: runePositions(entries[m.Index].Title, m.MatchedIndexes),
			Score:          m.Score,
		})
		seen[m.Index] = true
	}

	for i, e := range entries {
		if seen[i] {
			continue
		}
		if fuzzysearch.MatchNormalizedFold(query, e.Creator) || fuzzysearch.MatchNormalizedFold(query, e.Comment) {
			results = append(results, Result{Index: i, Entry: e})
		}
	}

	return results
}

// runePositions converts byte offsets into rune positions
func runePositions(s string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}
	want := make(map[int]bool, len(byteOffsets))
	for _, b := range byteOffsets {
		want[b] = true
	}
	var out []int
	r := 0
	for b := range s {
		if want[b] {
			out = append(out, r)
		}
		r++
	}
	return out
}
