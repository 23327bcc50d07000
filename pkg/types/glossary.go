// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one row of the acronyms table.
type Entry struct {
	// Acronym is two or more consecutive uppercase letters, kept verbatim.
	Acronym string `json:"acronym" yaml:"acronym"`

	// Definition is the phrase found for the acronym. Nil when none was found
	// or definition search was disabled.
	Definition *string `json:"definition" yaml:"definition"`

	// Source names the input file in which the acronym was first seen.
	Source string `json:"source" yaml:"source"`
}

// Description returns the definition text, or "" when it is absent.
func (e Entry) Description() string {
	if e.Definition == nil {
		return ""
	}
	return *e.Definition
}

// BuildSummary holds the outcome of a glossary run.
type BuildSummary struct {
	// Files is the number of input files scanned.
	Files int

	// Acronyms is the number of unique acronyms in the table.
	Acronyms int

	// Defined is the number of acronyms with a definition.
	Defined int

	// OutputPath is the table document that was written.
	OutputPath string

	// ExportPath is the YAML/JSON copy, empty when export is disabled.
	ExportPath string
}

// Undefined returns the number of acronyms without a definition.
func (s BuildSummary) Undefined() int {
	return s.Acronyms - s.Defined
}
