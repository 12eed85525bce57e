// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for wiktitrage.
// Article and Page mirror the MediaWiki extracts response; Entry is the
// unit the rotation engine displays.
package types

import "strings"

// Article holds the pages returned by one Article Source fetch, keyed by
// page identifier. Iteration order over Pages is unspecified.
type Article struct {
	Pages map[string]Page `json:"pages" yaml:"pages"`
}

// Page is one page of an Article.
type Page struct {
	// ID is the MediaWiki page identifier. Missing pages have ID 0.
	ID uint64 `json:"pageid" yaml:"pageid"`

	// Title is the page title, usually the searched term.
	Title string `json:"title" yaml:"title"`

	// Text is the plain-text extract of the page, nil when the source
	// returned no extract.
	Text *string `json:"extract,omitempty" yaml:"extract,omitempty"`
}

// HasText reports whether the page carries an extract.
func (p Page) HasText() bool {
	return p.Text != nil
}

// Entry is the etymology paragraph of one language section.
type Entry struct {
	// Language is the language heading line verbatim, e.g. "== Français ==".
	Language string `json:"language" yaml:"language"`

	// Description is the first non-blank line after the Etymology heading.
	Description string `json:"description" yaml:"description"`
}

// LanguageName returns Language without its heading markers.
func (e Entry) LanguageName() string {
	return strings.TrimSpace(strings.Trim(e.Language, "="))
}
