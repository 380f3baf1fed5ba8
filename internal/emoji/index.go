package emoji

import (
	"strings"
	"sync"
	"unicode"

	"github.com/redaphid/emo/internal/model"
)

// Index is an inverted word index over record names and keywords. Posting
// lists hold record positions in catalog order, so intersecting them yields
// candidates in catalog order and tier scans stay deterministic.
type Index struct {
	names    map[string][]int
	keywords map[string][]int
}

var (
	indexOnce sync.Once
	catIndex  *Index
)

// GetIndex returns the index over the loaded catalog, building it on first
// use. Returns nil if the catalog itself failed to load.
func GetIndex() *Index {
	indexOnce.Do(func() {
		recs, err := Load()
		if err != nil {
			return
		}
		catIndex = BuildIndex(recs)
	})
	return catIndex
}

// BuildIndex indexes every word of every record name and keyword. Words are
// split on non-alphanumeric boundaries so the index agrees with the
// exact-word match tiers.
func BuildIndex(recs []model.EmojiRecord) *Index {
	idx := &Index{
		names:    make(map[string][]int),
		keywords: make(map[string][]int),
	}
	for i := range recs {
		for _, w := range splitWords(recs[i].Name) {
			idx.names[w] = appendPosting(idx.names[w], i)
		}
		for _, kw := range recs[i].Keywords {
			for _, w := range splitWords(kw) {
				idx.keywords[w] = appendPosting(idx.keywords[w], i)
			}
		}
	}
	return idx
}

// NameCandidates returns, in catalog order, the records whose name contains
// every given word. An empty result means no candidates.
func (idx *Index) NameCandidates(words []string) []int {
	return intersect(idx.names, words)
}

// KeywordCandidates returns, in catalog order, the records with at least one
// keyword word matching each given word.
func (idx *Index) KeywordCandidates(words []string) []int {
	return intersect(idx.keywords, words)
}

// intersect returns the positions present in every word's posting list.
// The result is never nil: an empty slice means no record carries all words.
func intersect(postings map[string][]int, words []string) []int {
	out := append([]int(nil), postings[words[0]]...)
	for _, w := range words[1:] {
		if len(out) == 0 {
			break
		}
		out = intersectSorted(out, postings[w])
	}
	if out == nil {
		out = []int{}
	}
	return out
}

// intersectSorted merges two ascending posting lists.
func intersectSorted(a, b []int) []int {
	out := []int{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// appendPosting adds pos to a posting list, skipping consecutive duplicates
// (a word can occur in several keywords of one record).
func appendPosting(list []int, pos int) []int {
	if n := len(list); n > 0 && list[n-1] == pos {
		return list
	}
	return append(list, pos)
}

func splitWords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return words
}
