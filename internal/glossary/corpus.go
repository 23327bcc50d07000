// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"sort"

	"github.com/pdiddy/acronym-table/pkg/types"
)

// Resolver finds definitions for acronyms new to the corpus in one file's
// paragraphs. The returned map may omit acronyms without a definition.
type Resolver func(acronyms, paragraphs []string) map[string]*string

// Corpus accumulates acronyms and definitions across the files of one run.
// Once an acronym is recorded its definition, found or not, is final.
type Corpus struct {
	defs    map[string]*string
	sources map[string]string
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		defs:    make(map[string]*string),
		sources: make(map[string]string),
	}
}

// Merge records the acronyms found in source. Only acronyms not yet in the
// corpus are passed to resolve, together with the file's paragraphs. A nil
// resolve leaves every new acronym without a definition. Merge returns the
// new acronyms, sorted and deduplicated.
func (c *Corpus) Merge(source string, found, paragraphs []string, resolve Resolver) []string {
	seen := make(map[string]bool, len(found))
	var fresh []string
	for _, a := range found {
		if _, known := c.defs[a]; known || seen[a] {
			continue
		}
		seen[a] = true
		fresh = append(fresh, a)
	}
	sort.Strings(fresh)

	var defs map[string]*string
	if resolve != nil && len(fresh) > 0 {
		defs = resolve(fresh, paragraphs)
	}
	for _, a := range fresh {
		c.defs[a] = defs[a]
		c.sources[a] = source
	}
	return fresh
}

// Len returns the number of unique acronyms recorded.
func (c *Corpus) Len() int {
	return len(c.defs)
}

// Definition returns the recorded definition of acronym. The second result
// reports whether the acronym is in the corpus at all.
func (c *Corpus) Definition(acronym string) (*string, bool) {
	def, ok := c.defs[acronym]
	return def, ok
}

// Entries returns one entry per acronym, sorted ascending.
func (c *Corpus) Entries() []types.Entry {
	acronyms := make([]string, 0, len(c.defs))
	for a := range c.defs {
		acronyms = append(acronyms, a)
	}
	sort.Strings(acronyms)

	entries := make([]types.Entry, len(acronyms))
	for i, a := range acronyms {
		entries[i] = types.Entry{
			Acronym:    a,
			Definition: c.defs[a],
			Source:     c.sources[a],
		}
	}
	return entries
}
