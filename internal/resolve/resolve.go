// Package resolve turns a query into ordered emoji results, blending memo
// overrides with the tiered lexical search.
package resolve

import (
	"math/rand"
	"strconv"
	"unicode/utf8"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/emoji"
	"github.com/redaphid/emo/internal/model"
)

// memoLookahead is the extra search depth requested when blending a memo
// with lexical results, so a memo colliding with top hits cannot shrink the
// output below count.
const memoLookahead = 5

// MemoSource supplies term overrides. *store.Store satisfies it.
type MemoSource interface {
	Lookup(term string) (string, bool)
}

// Resolve returns up to count results for term. A memo for term always
// occupies position zero; remaining positions come from lexical search with
// the memo's character filtered out. Without a memo the lexical results are
// returned verbatim.
func Resolve(recs []model.EmojiRecord, memos MemoSource, term string, count int) []emoji.Result {
	if memos != nil {
		if m, ok := memos.Lookup(term); ok {
			memoChar, _ := utf8.DecodeRuneInString(m)
			results := []emoji.Result{{Char: memoChar}}
			if count == 1 {
				return results
			}
			for _, r := range emoji.Search(recs, term, count+memoLookahead) {
				if r.Char == memoChar {
					continue
				}
				results = append(results, r)
				if len(results) >= count {
					break
				}
			}
			return results
		}
	}
	return emoji.Search(recs, term, count)
}

// MemoValue resolves the value to store for a memo. A positive integer
// target selects the 1-based nth fresh lexical result for term; anything
// else is taken literally, keeping only its first character.
func MemoValue(recs []model.EmojiRecord, term, target string) (string, error) {
	if n, err := strconv.Atoi(target); err == nil && n >= 0 {
		if n == 0 {
			return "", errors.InvalidInputf("index must be greater than 0")
		}
		results := emoji.Search(recs, term, n)
		if len(results) < n {
			return "", errors.InvalidInputf("only %d results found, cannot select index %d", len(results), n)
		}
		return string(results[n-1].Char), nil
	}

	r, size := utf8.DecodeRuneInString(target)
	if size == 0 {
		return "", errors.InvalidInputf("empty emoji")
	}
	return string(r), nil
}

// Define finds the record for term: a direct first-character lookup when the
// term starts with a catalog emoji, otherwise the top lexical hit. The
// second return is false when nothing matches.
func Define(recs []model.EmojiRecord, term string) (emoji.Result, bool) {
	first, size := utf8.DecodeRuneInString(term)
	if size > 0 {
		for i := range recs {
			c, err := emoji.ToChar(&recs[i])
			if err != nil {
				continue
			}
			if c == first {
				return emoji.Result{Char: c, Record: &recs[i]}, true
			}
		}
	}

	results := emoji.Search(recs, term, 1)
	if len(results) == 0 {
		return emoji.Result{}, false
	}
	return results[0], true
}

// Random picks one catalog record uniformly at random.
func Random(recs []model.EmojiRecord) (emoji.Result, error) {
	if len(recs) == 0 {
		return emoji.Result{}, errors.InvalidInputf("no emojis available")
	}
	rec := &recs[rand.Intn(len(recs))]
	c, err := emoji.ToChar(rec)
	if err != nil {
		return emoji.Result{}, err
	}
	return emoji.Result{Char: c, Record: rec}, nil
}
