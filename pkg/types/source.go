// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceText holds the text units extracted from one input file.
type SourceText struct {
	// Path is the input file the text was read from.
	Path string `json:"path" yaml:"path"`

	// Paragraphs are scanned for acronyms and searched for definitions,
	// in document order.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`

	// Cells holds table cell text. Cells are scanned for acronyms only.
	Cells []string `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// Units returns every text unit that feeds the acronym scanner:
// paragraphs first, then table cells.
func (s SourceText) Units() []string {
	units := make([]string, 0, len(s.Paragraphs)+len(s.Cells))
	units = append(units, s.Paragraphs...)
	return append(units, s.Cells...)
}
