// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acronym finds acronyms in text and infers their definitions from
// nearby words whose initials spell the acronym.
package acronym

import (
	"regexp"
	"strings"
)

// acronymPattern matches two or more consecutive uppercase letters (e.g. DT, CHT).
var acronymPattern = regexp.MustCompile(`[A-Z]{2,}`)

const (
	// wordTail completes a word after its initial letter.
	wordTail = `[\p{L}\p{N}_]+`
	// separator follows every word of a definition: whitespace (including
	// Unicode spaces such as U+00A0) or hyphens.
	separator = `[\s\p{Z}-]+`
)

// Scan returns the acronyms in text in order of appearance, duplicates included.
func Scan(text string) []string {
	return acronymPattern.FindAllString(text, -1)
}

// ScanAll scans each text unit in order and concatenates the results.
func ScanAll(units []string) []string {
	var found []string
	for _, u := range units {
		found = append(found, Scan(u)...)
	}
	return found
}

// Pattern builds the definition pattern for acronym: one word per letter,
// each starting with that exact letter and followed by separators.
// Letters are quoted, so any character in acronym is matched literally.
func Pattern(acronym string) *regexp.Regexp {
	var b strings.Builder
	for _, r := range acronym {
		b.WriteString(regexp.QuoteMeta(string(r)))
		b.WriteString(wordTail)
		b.WriteString(separator)
	}
	return regexp.MustCompile(b.String())
}

// FindDefinition returns the first phrase in paragraph whose word initials
// spell acronym, trailing separators included. The second result is false
// when paragraph holds no such phrase.
func FindDefinition(acronym, paragraph string) (string, bool) {
	if acronym == "" {
		return "", false
	}
	return findWith(Pattern(acronym), paragraph)
}

func findWith(pat *regexp.Regexp, paragraph string) (string, bool) {
	loc := pat.FindStringIndex(paragraph)
	if loc == nil {
		return "", false
	}
	return paragraph[loc[0]:loc[1]], true
}

// Definitions resolves every acronym against paragraphs. Only paragraphs that
// mention the acronym are searched, in order, and the first match wins.
// Every acronym gets a key; a nil value means no definition was found.
func Definitions(acronyms, paragraphs []string) map[string]*string {
	defs := make(map[string]*string, len(acronyms))
	for _, a := range acronyms {
		defs[a] = lookup(a, paragraphs)
	}
	return defs
}

func lookup(acronym string, paragraphs []string) *string {
	if acronym == "" {
		return nil
	}
	pat := Pattern(acronym)
	for _, p := range paragraphs {
		if !strings.Contains(p, acronym) {
			continue
		}
		if def, ok := findWith(pat, p); ok {
			return &def
		}
	}
	return nil
}
