// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a fetched Article into per-page entry sequences.
package extract

import (
	"errors"

	"github.com/pdiddy/wiktitrage/internal/wikitext"
	"github.com/pdiddy/wiktitrage/pkg/types"
)

// ErrNothingFound is returned when no page of an article yields an entry.
var ErrNothingFound = errors.New("no etymology found")

// Iterator visits the pages of an Article once, parsing each page when it
// is reached. Page order follows map iteration and is unspecified.
type Iterator struct {
	pages   []types.Page
	matcher wikitext.Matcher
	pos     int
}

// NewIterator returns an iterator over article using the default matcher.
func NewIterator(article types.Article) *Iterator {
	return NewIteratorWith(article, wikitext.Default)
}

// NewIteratorWith returns an iterator that parses pages with m.
func NewIteratorWith(article types.Article, m wikitext.Matcher) *Iterator {
	pages := make([]types.Page, 0, len(article.Pages))
	for _, p := range article.Pages {
		pages = append(pages, p)
	}
	return &Iterator{pages: pages, matcher: m}
}

// Next returns the entries of the next page. A page without text yields
// an empty sequence. ok is false once every page has been visited, and
// stays false on later calls.
func (it *Iterator) Next() (entries []types.Entry, ok bool) {
	if it.pos >= len(it.pages) {
		return nil, false
	}
	page := it.pages[it.pos]
	it.pos++
	if !page.HasText() {
		return []types.Entry{}, true
	}
	entries = it.matcher.Parse(*page.Text)
	if entries == nil {
		entries = []types.Entry{}
	}
	return entries, true
}

// Remaining returns the number of pages not yet visited.
func (it *Iterator) Remaining() int {
	return len(it.pages) - it.pos
}

// FirstNonEmpty returns the first non-empty entry sequence of article.
func FirstNonEmpty(article types.Article) ([]types.Entry, error) {
	return FirstNonEmptyWith(article, wikitext.Default)
}

// FirstNonEmptyWith is FirstNonEmpty with an explicit matcher.
func FirstNonEmptyWith(article types.Article, m wikitext.Matcher) ([]types.Entry, error) {
	it := NewIteratorWith(article, m)
	for {
		entries, ok := it.Next()
		if !ok {
			return nil, ErrNothingFound
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}
}

// PageEntries pairs a page with the entries parsed from it.
type PageEntries struct {
	Page    types.Page    `json:"page" yaml:"page"`
	Entries []types.Entry `json:"entries" yaml:"entries"`
}

// All parses every page of article, keeping pages without entries. It
// backs the extract command, which reports every page.
func All(article types.Article, m wikitext.Matcher) []PageEntries {
	it := NewIteratorWith(article, m)
	out := make([]PageEntries, 0, it.Remaining())
	for _, page := range it.pages {
		entries, _ := it.Next()
		page.Text = nil
		out = append(out, PageEntries{Page: page, Entries: entries})
	}
	return out
}
