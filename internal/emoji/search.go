package emoji

import (
	"strings"

	"github.com/redaphid/emo/internal/model"
)

// Result is one resolved emoji. Record is nil when the character came from
// a memo rather than the catalog.
type Result struct {
	Char   rune
	Record *model.EmojiRecord
}

// matchFunc reports whether a record belongs to one search tier.
type matchFunc func(rec *model.EmojiRecord) bool

// Search runs the six-tier prioritized match over recs and returns up to
// limit results. Tiers are strict priorities: a tier is fully scanned (in
// catalog order) before the next is tried, and collection stops the moment
// limit distinct characters have been gathered. Results are deduplicated by
// decoded character, so two records mapping to the same character count
// once. Records that fail to decode are skipped.
func Search(recs []model.EmojiRecord, term string, limit int) []Result {
	words := splitLower(term)

	tiers := []struct {
		match matchFunc
		// candidates narrows the scan via the word index; nil means a
		// full linear scan. Candidate order is catalog order either way.
		candidates []int
	}{
		// 1. name equals the entire query
		{match: func(r *model.EmojiRecord) bool {
			return strings.EqualFold(r.Name, term)
		}},
		// 2. every query word is a whole word of name
		{
			match: func(r *model.EmojiRecord) bool {
				return allWordsMatch(r.Name, words, true)
			},
			candidates: indexCandidates(recs, words, false),
		},
		// 3. every query word is a whole word of one keyword
		{
			match: func(r *model.EmojiRecord) bool {
				return anyKeywordMatches(r, words, true)
			},
			candidates: indexCandidates(recs, words, true),
		},
		// 4. every query word is a substring of name
		{match: func(r *model.EmojiRecord) bool {
			return allWordsMatch(r.Name, words, false)
		}},
		// 5. every query word is a substring of one keyword
		{match: func(r *model.EmojiRecord) bool {
			return anyKeywordMatches(r, words, false)
		}},
		// 6. every query word is a substring of the definition
		{match: func(r *model.EmojiRecord) bool {
			return r.Definition != "" && allWordsMatch(r.Definition, words, false)
		}},
	}

	seen := make(map[rune]bool)
	var results []Result

	for _, tier := range tiers {
		scan := tier.candidates
		if scan == nil {
			scan = allPositions(len(recs))
		}
		for _, i := range scan {
			rec := &recs[i]
			if !tier.match(rec) {
				continue
			}
			c, err := ToChar(rec)
			if err != nil {
				continue
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			results = append(results, Result{Char: c, Record: rec})
			if len(results) >= limit {
				return results
			}
		}
	}

	return results
}

// indexCandidates prefilters an exact-word tier through the inverted index
// when searching the process-wide catalog. Any other slice (tests, fixtures)
// falls back to a linear scan.
func indexCandidates(recs []model.EmojiRecord, words []string, keywords bool) []int {
	if len(words) == 0 {
		return nil
	}
	loaded, err := Load()
	if err != nil || len(loaded) == 0 || len(recs) == 0 || &recs[0] != &loaded[0] {
		return nil
	}
	idx := GetIndex()
	if idx == nil {
		return nil
	}
	if keywords {
		return idx.KeywordCandidates(words)
	}
	return idx.NameCandidates(words)
}

func allPositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// allWordsMatch reports whether every search word occurs in text: as a whole
// word (boundaries are any non-alphanumeric rune) when exact is set, as a
// bare substring otherwise. Matching is case-folded.
func allWordsMatch(text string, words []string, exact bool) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if exact {
			if !isExactWordMatch(lower, w) {
				return false
			}
		} else if !strings.Contains(lower, w) {
			return false
		}
	}
	return true
}

func anyKeywordMatches(rec *model.EmojiRecord, words []string, exact bool) bool {
	for _, kw := range rec.Keywords {
		if allWordsMatch(kw, words, exact) {
			return true
		}
	}
	return false
}

func isExactWordMatch(text, search string) bool {
	for _, w := range splitWords(text) {
		if w == search {
			return true
		}
	}
	return false
}

func splitLower(term string) []string {
	fields := strings.Fields(term)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
