// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paragraph splits input files into the text units scanned for
// acronyms. Each execution mode has its own Extractor.
package paragraph

import (
	"fmt"
	"log/slog"

	"github.com/pdiddy/acronym-table/pkg/types"
)

// Extractor reads one input file and returns its paragraphs (and, when
// enabled, table cells). Different modes implement this interface.
type Extractor interface {
	// Extract reads the file at path.
	Extract(path string) (types.SourceText, error)
}

// Options tune the extractors built by NewExtractor.
type Options struct {
	// ReadTables adds table cell text to word-mode results.
	ReadTables bool

	// Encoding names the plain-text character encoding (default utf-8).
	Encoding string

	// Logger receives decode warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewExtractor returns the extractor for mode. An unrecognized mode fails with
// types.ErrInvalidConfiguration listing the allowed modes.
func NewExtractor(mode types.Mode, opts Options) (Extractor, error) {
	if err := types.ValidateMode(mode); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch mode {
	case types.ModeWord:
		return &WordExtractor{ReadTables: opts.ReadTables}, nil
	case types.ModeLaTeX:
		return NewTextExtractor(opts.Encoding, logger)
	}
	// Unreachable while AllowedModes and the cases above agree.
	return nil, fmt.Errorf("%w: no extractor for mode %q", types.ErrInvalidConfiguration, mode)
}
