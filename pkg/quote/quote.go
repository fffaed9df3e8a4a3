// Package quote holds the quote model and the rules applied to quotes fetched
// from the remote quotes API: random selection with an anti-repeat nudge and
// author sanitization.
package quote

import (
	"encoding/json"
	"regexp"
)

// UnknownAuthor replaces an author that is empty after sanitization.
const UnknownAuthor = "Unknown author"

// attribution matches the API's branding marker, optionally preceded by a
// comma and whitespace.
var attribution = regexp.MustCompile(`(,\s*)?type\.fit`)

// Quote is a text and its author.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`

	// noAuthor is set when a decoded record had a null or missing author.
	noAuthor bool
}

// UnmarshalJSON decodes a quote record, remembering whether the author was
// present at all. A null record decodes as a quote without an author.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text   string  `json:"text"`
		Author *string `json:"author"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = Quote{Text: raw.Text, noAuthor: raw.Author == nil}
	if raw.Author != nil {
		q.Author = *raw.Author
	}
	return nil
}

// HasAuthor reports whether the quote carries an author field, even an
// empty one.
func (q Quote) HasAuthor() bool {
	return !q.noAuthor
}

// Default returns the quote shown before anything has been fetched.
func Default() Quote {
	return Quote{
		Text:   "Perhaps the mission of an artist is to interpret beauty to people—the beauty within themselves.",
		Author: "Langston Hughes",
	}
}

// SanitizeAuthor strips every attribution marker from author and falls back
// to UnknownAuthor when nothing is left.
func SanitizeAuthor(author string) string {
	author = attribution.ReplaceAllString(author, "")
	if author == "" {
		return UnknownAuthor
	}
	return author
}

// Sanitized returns a copy of q with its author sanitized.
func (q Quote) Sanitized() Quote {
	q.Author = SanitizeAuthor(q.Author)
	return q
}
