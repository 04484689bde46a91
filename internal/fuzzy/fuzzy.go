// Package fuzzy scores a query against a single candidate name using
// subsequence matching. It wraps github.com/sahilm/fuzzy, which rewards
// word-boundary, camel-case and consecutive-character matches.
package fuzzy

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Match is the result of scoring one candidate.
type Match struct {
	Score int64
	// Indices are rune offsets into the candidate, ascending and unique.
	Indices []int
}

// Score reports whether query is a subsequence of candidate and, if so, how
// well it matches. Higher scores are better. Callers must not pass an empty
// query.
func Score(query, candidate string) (Match, bool) {
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return Match{}, false
	}
	m := matches[0]
	return Match{
		Score:   int64(m.Score),
		Indices: runeOffsets(candidate, m.MatchedIndexes),
	}, true
}

// runeOffsets converts byte offsets reported by the matcher into rune offsets
// so highlighting lines up with what is drawn on screen.
func runeOffsets(s string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}
	want := make(map[int]bool, len(byteOffsets))
	for _, b := range byteOffsets {
		want[b] = true
	}
	out := make([]int, 0, len(byteOffsets))
	runeIdx := 0
	for b := 0; b < len(s); {
		if want[b] {
			out = append(out, runeIdx)
		}
		_, size := utf8.DecodeRuneInString(s[b:])
		b += size
		runeIdx++
	}
	return out
}
