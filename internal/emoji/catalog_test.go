package emoji

import (
	"strings"
	"testing"

	"github.com/redaphid/emo/internal/model"
)

func TestLoadFiltersCompoundSequences(t *testing.T) {
	recs, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, r := range recs {
		if strings.Contains(r.Unicode, " ") {
			t.Fatalf("compound sequence survived filtering: %q (%s)", r.Unicode, r.Name)
		}
	}
}

func TestLoadContainsCommonEmojis(t *testing.T) {
	recs, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	byName := make(map[string]string, len(recs))
	for _, r := range recs {
		byName[r.Name] = r.Unicode
	}
	for name, unicode := range map[string]string{
		"fire":          "U+1F525",
		"grinning face": "U+1F600",
	} {
		if got := byName[name]; got != unicode {
			t.Fatalf("catalog %q = %q, want %q", name, got, unicode)
		}
	}
}

func TestToChar(t *testing.T) {
	tests := []struct {
		unicode string
		want    rune
		wantErr bool
	}{
		{unicode: "U+1F525", want: '\U0001F525'},
		{unicode: "U+2600", want: '☀'},
		{unicode: "U+1F468 U+200D U+1F4BB", want: '\U0001F468'},
		{unicode: "", wantErr: true},
		{unicode: "U+ZZZZ", wantErr: true},
		{unicode: "U+D800", wantErr: true},
	}
	for _, tt := range tests {
		rec := model.EmojiRecord{Unicode: tt.unicode}
		got, err := ToChar(&rec)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ToChar(%q): expected error, got %q", tt.unicode, string(got))
			}
			continue
		}
		if err != nil {
			t.Fatalf("ToChar(%q) error: %v", tt.unicode, err)
		}
		if got != tt.want {
			t.Fatalf("ToChar(%q) = %q, want %q", tt.unicode, string(got), string(tt.want))
		}
	}
}
