// Package model defines the core emoji data types.
package model

// EmojiRecord is one entry of the bundled emoji dataset.
//
// Unicode is a hex code-point string ("U+1F525"). Records whose raw field
// holds more than one space-separated code point are compound sequences and
// are dropped when the catalog loads, so a record admitted into the catalog
// always decodes to exactly one character.
type EmojiRecord struct {
	Keywords   []string `json:"keywords"`
	Unicode    string   `json:"unicode"`
	Name       string   `json:"name"`
	Shortcode  string   `json:"shortcode,omitempty"`
	Definition string   `json:"definition,omitempty"`
}

// Mappings is the persisted user state: memo overrides plus the preferred
// AI model identifier. It round-trips through the config file as
// {"mappings": {...}, "model": <string|null>}.
type Mappings struct {
	Mappings map[string]string `json:"mappings"`
	Model    *string           `json:"model"`
}
