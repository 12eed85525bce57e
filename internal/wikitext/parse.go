// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikitext extracts per-language etymology entries from the plain
// text extract of a Wiktionary page.
//
// A language section opens with a level-2 heading ("== Français ==") and
// is followed by typed subsections. The parser recognises the shape
// heading, Etymology subheading, paragraph on three consecutive non-blank
// lines. Only the first Etymology subsection directly under a heading line
// is found; later ones under the same heading are not matched.
package wikitext

import (
	"strings"

	"github.com/pdiddy/wiktitrage/pkg/types"
)

// French Wiktionary markers.
const (
	LanguageHeadingPrefix  = "== "
	LanguageHeadingSuffix  = " =="
	EtymologyHeading       = "=== Étymologie ==="
	MissingEtymologyPrefix = "Étymologie manquante ou incomplète"
)

// windowSize is the number of consecutive lines one match spans.
const windowSize = 3

// Matcher holds the markers a window must satisfy. The zero value is not
// useful; start from Default.
type Matcher struct {
	HeadingPrefix string
	HeadingSuffix string
	Etymology     string
	Missing       string
}

// Default is the French Wiktionary matcher.
var Default = Matcher{
	HeadingPrefix: LanguageHeadingPrefix,
	HeadingSuffix: LanguageHeadingSuffix,
	Etymology:     EtymologyHeading,
	Missing:       MissingEtymologyPrefix,
}

// WithMarkers returns a copy of m with the non-empty overrides applied.
func (m Matcher) WithMarkers(cfg types.MarkerConfig) Matcher {
	if cfg.Etymology != "" {
		m.Etymology = cfg.Etymology
	}
	if cfg.Missing != "" {
		m.Missing = cfg.Missing
	}
	return m
}

// Parse extracts entries from text using the French Wiktionary markers.
func Parse(text string) []types.Entry {
	return Default.Parse(text)
}

// Parse returns one entry per window of three non-blank lines that reads
// language heading, etymology heading, paragraph. Entries keep the order
// in which they appear in text. The result may be empty.
func (m Matcher) Parse(text string) []types.Entry {
	lines := nonBlankLines(text)

	var entries []types.Entry
	for i := 0; i+windowSize <= len(lines); i++ {
		heading, sub, desc := lines[i], lines[i+1], lines[i+2]
		if !m.isLanguageHeading(heading) || sub != m.Etymology {
			continue
		}
		if strings.HasPrefix(desc, m.Missing) {
			continue
		}
		entries = append(entries, types.Entry{
			Language:    heading,
			Description: desc,
		})
	}
	return entries
}

func (m Matcher) isLanguageHeading(line string) bool {
	return strings.HasPrefix(line, m.HeadingPrefix) && strings.HasSuffix(line, m.HeadingSuffix)
}

// nonBlankLines splits text on newlines and drops empty lines. Blank lines
// must go before windowing or the three lines of a section stop being
// adjacent.
func nonBlankLines(text string) []string {
	parts := strings.Split(text, "\n")
	lines := parts[:0]
	for _, p := range parts {
		if p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
