// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration reports a configuration value outside the set of
// recognized options. Wrapped errors name the allowed values.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Mode selects how input files are split into paragraphs.
type Mode string

const (
	// ModeLaTeX reads plain text where a blank line ends a paragraph.
	ModeLaTeX Mode = "latex"
	// ModeWord reads native paragraphs (and optionally tables) from .docx files.
	ModeWord Mode = "word"
)

// AllowedModes lists the execution modes in the order they are reported.
var AllowedModes = []Mode{ModeLaTeX, ModeWord}

// ExportFormat selects an optional machine-readable copy of the glossary.
type ExportFormat string

const (
	ExportNone ExportFormat = ""
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// DefaultEncoding is the character encoding assumed for plain-text input.
const DefaultEncoding = "utf-8"

// Config holds everything a glossary run needs. It is fixed before the run
// starts and never mutated by the pipeline.
type Config struct {
	// InputDir is the folder whose entries are scanned.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the folder that receives the acronyms table.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Mode selects the paragraph extractor: latex or word.
	Mode Mode `json:"mode" yaml:"mode" mapstructure:"mode"`

	// ReadTables adds table cell text to the acronym scan (word mode only).
	// Cells contribute acronyms but are never searched for definitions.
	ReadTables bool `json:"read_tables" yaml:"read_tables" mapstructure:"read_tables"`

	// FindDefinitions enables the definition matcher. When false every
	// acronym is emitted with an empty description.
	FindDefinitions bool `json:"find_definitions" yaml:"find_definitions" mapstructure:"find_definitions"`

	// Encoding is the character encoding of plain-text input (default utf-8).
	Encoding string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`

	// Export writes a YAML or JSON copy of the glossary next to the table.
	Export ExportFormat `json:"export,omitempty" yaml:"export,omitempty" mapstructure:"export"`
}

// Validate checks the enumerated options. It does not touch the filesystem.
func (c Config) Validate() error {
	if err := ValidateMode(c.Mode); err != nil {
		return err
	}
	switch c.Export {
	case ExportNone, ExportYAML, ExportJSON:
	default:
		return fmt.Errorf("%w: unsupported export format %q, allowed formats are [yaml json]",
			ErrInvalidConfiguration, c.Export)
	}
	return nil
}

// ValidateMode returns ErrInvalidConfiguration, listing AllowedModes, when
// m is not a recognized execution mode.
func ValidateMode(m Mode) error {
	for _, allowed := range AllowedModes {
		if m == allowed {
			return nil
		}
	}
	names := make([]string, len(AllowedModes))
	for i, allowed := range AllowedModes {
		names[i] = string(allowed)
	}
	return fmt.Errorf("%w: execution mode %q is not available, allowed modes are [%s]",
		ErrInvalidConfiguration, m, strings.Join(names, " "))
}
