// Package store persists user emoji mappings.
//
// State lives in a single JSON document ({"mappings": {...}, "model": ...})
// in the per-user config directory. The lifecycle is read-entire-state,
// mutate in memory, write-entire-state-back; a missing file is an empty
// default, and no concurrent writers are assumed.
package store

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/model"
)

// Store holds the in-memory mappings state bound to its file path.
type Store struct {
	path string
	data model.Mappings
}

// DefaultPath returns the per-user mappings file location.
// XDG_CONFIG_HOME takes precedence so tests and custom setups can redirect it.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "emo", "config.json"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "determine config directory"), errors.ErrConfiguration)
	}
	return filepath.Join(dir, "emo", "config.json"), nil
}

// Load reads the mappings file at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: model.Mappings{Mappings: map[string]string{}},
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read mappings"), errors.ErrIO)
	}

	if err := json.Unmarshal(b, &s.data); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", path), errors.ErrSerialization)
	}
	if s.data.Mappings == nil {
		s.data.Mappings = map[string]string{}
	}
	return s, nil
}

// Lookup returns the memo for term, if one exists.
func (s *Store) Lookup(term string) (string, bool) {
	v, ok := s.data.Mappings[term]
	return v, ok
}

// Put binds term to emoji, replacing any existing memo.
func (s *Store) Put(term, emoji string) {
	s.data.Mappings[term] = emoji
}

// Erase removes the memo for term and reports whether one existed.
func (s *Store) Erase(term string) bool {
	if _, ok := s.data.Mappings[term]; !ok {
		return false
	}
	delete(s.data.Mappings, term)
	return true
}

// Mapping is one term/emoji pair for listing.
type Mapping struct {
	Term  string
	Emoji string
}

// List returns all memos sorted by term.
func (s *Store) List() []Mapping {
	out := make([]Mapping, 0, len(s.data.Mappings))
	for term, e := range s.data.Mappings {
		out = append(out, Mapping{Term: term, Emoji: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}

// Len reports the number of saved memos.
func (s *Store) Len() int {
	return len(s.data.Mappings)
}

// Model returns the persisted model identifier, or "" when unset.
func (s *Store) Model() string {
	if s.data.Model == nil {
		return ""
	}
	return *s.data.Model
}

// SetModel persists id as the preferred model for later invocations.
func (s *Store) SetModel(id string) {
	s.data.Model = &id
}

// Save rewrites the whole mappings file, creating parent directories as
// needed. There are no partial writes: the document is marshaled in full.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Mark(errors.Wrap(err, "create config dir"), errors.ErrIO)
	}
	b, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return errors.Mark(errors.Wrap(err, "encode mappings"), errors.ErrSerialization)
	}
	if err := os.WriteFile(s.path, append(b, '\n'), 0o644); err != nil {
		return errors.Mark(errors.Wrap(err, "write mappings"), errors.ErrIO)
	}
	return nil
}
