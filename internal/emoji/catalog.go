// Package emoji holds the bundled catalog and the tiered lexical search.
package emoji

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/model"
)

//go:embed emojis.json
var rawCatalog []byte

var (
	loadOnce sync.Once
	records  []model.EmojiRecord
	loadErr  error
)

// Load returns the process-wide catalog. It parses the embedded dataset on
// first call and drops compound (multi-codepoint) sequences; the resulting
// slice is never mutated and is safe to share.
func Load() ([]model.EmojiRecord, error) {
	loadOnce.Do(func() {
		var all []model.EmojiRecord
		if err := json.Unmarshal(rawCatalog, &all); err != nil {
			loadErr = errors.Mark(errors.Wrap(err, "parse bundled emoji data"), errors.ErrSerialization)
			return
		}
		records = make([]model.EmojiRecord, 0, len(all))
		for _, r := range all {
			if strings.Contains(r.Unicode, " ") {
				continue
			}
			records = append(records, r)
		}
	})
	return records, loadErr
}

// ToChar decodes a record's code-point string into its character.
func ToChar(rec *model.EmojiRecord) (rune, error) {
	fields := strings.Fields(rec.Unicode)
	if len(fields) == 0 {
		return 0, errors.InvalidInputf("invalid unicode: %q", rec.Unicode)
	}

	hex := strings.TrimPrefix(fields[0], "U+")
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.InvalidInputf("invalid hex code: %q", hex)
	}

	r := rune(cp)
	if cp > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, errors.InvalidInputf("invalid code point: %d", cp)
	}
	return r, nil
}
