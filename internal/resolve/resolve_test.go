package resolve

import (
	"strings"
	"testing"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/emoji"
	"github.com/redaphid/emo/internal/model"
)

func testCatalog() []model.EmojiRecord {
	return []model.EmojiRecord{
		{Name: "fire", Unicode: "U+1F525", Keywords: []string{"flame"}, Definition: "A flickering flame."},
		{Name: "fire engine", Unicode: "U+1F692", Keywords: []string{"truck"}},
		{Name: "fire extinguisher", Unicode: "U+1F9EF", Keywords: []string{"quench"}},
		{Name: "firecracker", Unicode: "U+1F9E8", Keywords: []string{"explosive"}},
	}
}

type memoMap map[string]string

func (m memoMap) Lookup(term string) (string, bool) {
	v, ok := m[term]
	return v, ok
}

func chars(results []emoji.Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteRune(r.Char)
	}
	return b.String()
}

func TestResolveWithoutMemo(t *testing.T) {
	results := Resolve(testCatalog(), memoMap{}, "fire", 2)
	if got := chars(results); got != "\U0001F525\U0001F692" {
		t.Fatalf("Resolve = %q", got)
	}
}

func TestResolveMemoOnlyForSingleResult(t *testing.T) {
	memos := memoMap{"fire": "🧯"}
	results := Resolve(testCatalog(), memos, "fire", 1)
	if got := chars(results); got != "🧯" {
		t.Fatalf("Resolve = %q, want memo only", got)
	}
	if results[0].Record != nil {
		t.Fatal("memo result should carry no catalog record")
	}
}

func TestResolveBlendsMemoWithSearch(t *testing.T) {
	// The memo collides with a search hit; it must lead and never repeat.
	memos := memoMap{"fire": "\U0001F692"}
	results := Resolve(testCatalog(), memos, "fire", 3)
	if got := chars(results); got != "\U0001F692\U0001F525\U0001F9EF" {
		t.Fatalf("Resolve = %q", got)
	}
}

func TestResolveMemoForUnsearchableTerm(t *testing.T) {
	memos := memoMap{"xyzzy": "🔥"}
	results := Resolve(testCatalog(), memos, "xyzzy", 3)
	if got := chars(results); got != "🔥" {
		t.Fatalf("Resolve = %q, want memo alone", got)
	}
}

func TestMemoValueLiteral(t *testing.T) {
	v, err := MemoValue(testCatalog(), "fire", "🧯")
	if err != nil {
		t.Fatalf("MemoValue error: %v", err)
	}
	if v != "🧯" {
		t.Fatalf("MemoValue = %q", v)
	}
}

func TestMemoValueKeepsFirstCharacterOnly(t *testing.T) {
	v, err := MemoValue(testCatalog(), "fire", "🧯🔥")
	if err != nil {
		t.Fatalf("MemoValue error: %v", err)
	}
	if v != "🧯" {
		t.Fatalf("MemoValue = %q, want first character", v)
	}
}

func TestMemoValueByIndex(t *testing.T) {
	v, err := MemoValue(testCatalog(), "fire", "2")
	if err != nil {
		t.Fatalf("MemoValue error: %v", err)
	}
	if v != "\U0001F692" {
		t.Fatalf("MemoValue = %q, want second search result", v)
	}
}

func TestMemoValueIndexZero(t *testing.T) {
	_, err := MemoValue(testCatalog(), "fire", "0")
	if err == nil || !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestMemoValueIndexOutOfRange(t *testing.T) {
	_, err := MemoValue(testCatalog(), "fire", "99")
	if err == nil || !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestMemoValueNegativeIsLiteral(t *testing.T) {
	// A negative number is not an index; its first character is stored.
	v, err := MemoValue(testCatalog(), "fire", "-1")
	if err != nil {
		t.Fatalf("MemoValue error: %v", err)
	}
	if v != "-" {
		t.Fatalf("MemoValue = %q", v)
	}
}

func TestMemoValueEmpty(t *testing.T) {
	_, err := MemoValue(testCatalog(), "fire", "")
	if err == nil || !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestDefineByName(t *testing.T) {
	r, ok := Define(testCatalog(), "fire")
	if !ok {
		t.Fatal("Define(fire) found nothing")
	}
	if r.Record == nil || r.Record.Name != "fire" {
		t.Fatalf("Define(fire) = %+v", r)
	}
}

func TestDefineByCharacter(t *testing.T) {
	r, ok := Define(testCatalog(), "\U0001F692")
	if !ok {
		t.Fatal("Define by character found nothing")
	}
	if r.Record.Name != "fire engine" {
		t.Fatalf("Define by character = %q", r.Record.Name)
	}
}

func TestDefineUnknown(t *testing.T) {
	if _, ok := Define(testCatalog(), "xyzzy"); ok {
		t.Fatal("Define(xyzzy) unexpectedly matched")
	}
}

func TestRandom(t *testing.T) {
	recs := testCatalog()
	r, err := Random(recs)
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if r.Record == nil {
		t.Fatal("Random returned no record")
	}
}

func TestRandomEmptyCatalog(t *testing.T) {
	_, err := Random(nil)
	if err == nil || !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
