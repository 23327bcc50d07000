// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paragraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/pdiddy/acronym-table/pkg/types"
)

// DecodeError reports a line that could not be decoded. Extraction logs it
// and skips the line.
type DecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TextExtractor splits plain text into paragraphs separated by blank lines.
type TextExtractor struct {
	// decoder converts the input stream to UTF-8; nil when the input is
	// already UTF-8.
	decoder *encoding.Decoder
	logger  *slog.Logger
}

// NewTextExtractor returns an extractor decoding input with the named
// encoding. An empty name selects utf-8; an unknown name fails with
// types.ErrInvalidConfiguration.
func NewTextExtractor(encodingName string, logger *slog.Logger) (*TextExtractor, error) {
	if encodingName == "" {
		encodingName = types.DefaultEncoding
	}
	if logger == nil {
		logger = slog.Default()
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", types.ErrInvalidConfiguration, encodingName)
	}

	t := &TextExtractor{logger: logger}
	if canonical, _ := htmlindex.Name(enc); canonical != "utf-8" {
		t.decoder = enc.NewDecoder()
	}
	return t, nil
}

// Extract reads the file at path and splits it into paragraphs.
func (t *TextExtractor) Extract(path string) (types.SourceText, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.SourceText{}, err
	}
	defer f.Close()

	paragraphs, err := t.Split(path, f)
	if err != nil {
		return types.SourceText{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return types.SourceText{Path: path, Paragraphs: paragraphs}, nil
}

// Split reads r line by line. A paragraph is a maximal run of non-blank
// lines; the blank line ending it is consumed and not included. Line endings
// (\r\n, \r or \n) are kept as \n. The stream is decoded to UTF-8 before
// it is split; a line that is not valid UTF-8 is logged and skipped.
// name identifies r in warnings.
func (t *TextExtractor) Split(name string, r io.Reader) ([]string, error) {
	if t.decoder != nil {
		r = t.decoder.Reader(r)
	}
	br := bufio.NewReader(r)

	var (
		paragraphs []string
		par        strings.Builder
		lineNo     int
	)
	flush := func() {
		if par.Len() > 0 {
			paragraphs = append(paragraphs, par.String())
			par.Reset()
		}
	}

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if raw != "" {
			lineNo++
			if _, _, err := transform.String(encoding.UTF8Validator, raw); err != nil {
				derr := &DecodeError{Path: name, Line: lineNo, Err: err}
				t.logger.Warn("Line skipped", "error", derr)
			} else {
				for _, line := range splitLineEndings(raw) {
					if strings.TrimSpace(line) == "" {
						flush()
					} else {
						par.WriteString(line)
					}
				}
			}
		}
		if readErr != nil {
			break
		}
	}
	flush()

	return paragraphs, nil
}

// splitLineEndings normalizes \r\n to \n and splits raw at every lone \r,
// which also ends a line.
func splitLineEndings(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.Contains(raw, "\r") {
		return []string{raw}
	}
	lines := strings.SplitAfter(raw, "\r")
	for i, l := range lines {
		if strings.HasSuffix(l, "\r") {
			lines[i] = strings.TrimSuffix(l, "\r") + "\n"
		}
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
