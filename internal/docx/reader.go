// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads paragraphs and tables from WordprocessingML (.docx)
// documents and writes simple table documents.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// documentPart is the main document part inside the package.
	documentPart = "word/document.xml"
	// wordNS is the WordprocessingML main namespace.
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// ErrNoDocumentPart is returned when the archive has no word/document.xml.
var ErrNoDocumentPart = errors.New("docx: missing " + documentPart)

// Document holds the text content of a .docx file.
type Document struct {
	// Paragraphs are the body paragraphs in order. Paragraphs inside table
	// cells are not included.
	Paragraphs []string

	// Tables are the tables in the order they close, so a nested table
	// precedes the table that contains it.
	Tables []Table
}

// Table is a grid of cell texts.
type Table struct {
	Rows [][]string
}

// Cells returns every cell text of the table, row by row.
func (t Table) Cells() []string {
	var cells []string
	for _, row := range t.Rows {
		cells = append(cells, row...)
	}
	return cells
}

// Open reads the document at path.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		doc, err := Parse(rc)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrNoDocumentPart)
}

// tableState collects one table while it is being decoded.
type tableState struct {
	table Table
	row   []string
	cell  []string
}

// Parse decodes a word/document.xml stream.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	var (
		stack  []string // local names of open elements
		tables []*tableState
		para   *strings.Builder
		inText bool
	)

	parent := func() string {
		if len(stack) < 2 {
			return ""
		}
		return stack[len(stack)-2]
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding document xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Space != wordNS {
				stack = append(stack, "")
				continue
			}
			stack = append(stack, el.Name.Local)
			switch el.Name.Local {
			case "p":
				if p := parent(); p == "body" || p == "tc" {
					para = &strings.Builder{}
				}
			case "t":
				inText = para != nil
			case "tab":
				if para != nil && parent() == "r" {
					para.WriteByte('\t')
				}
			case "br", "cr":
				if para != nil {
					para.WriteByte('\n')
				}
			case "tbl":
				tables = append(tables, &tableState{})
			case "tr":
				if len(tables) > 0 {
					tables[len(tables)-1].row = nil
				}
			case "tc":
				if len(tables) > 0 {
					tables[len(tables)-1].cell = nil
				}
			}

		case xml.CharData:
			if inText {
				para.Write(el)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			name := stack[len(stack)-1]
			switch name {
			case "t":
				inText = false
			case "p":
				if para == nil {
					break
				}
				// Paragraphs nested in text boxes belong to the enclosing one.
				switch parent() {
				case "body":
					doc.Paragraphs = append(doc.Paragraphs, para.String())
					para = nil
				case "tc":
					if len(tables) > 0 {
						ts := tables[len(tables)-1]
						ts.cell = append(ts.cell, para.String())
					}
					para = nil
				}
			case "tc":
				if len(tables) > 0 {
					ts := tables[len(tables)-1]
					ts.row = append(ts.row, strings.Join(ts.cell, "\n"))
					ts.cell = nil
				}
			case "tr":
				if len(tables) > 0 {
					ts := tables[len(tables)-1]
					ts.table.Rows = append(ts.table.Rows, ts.row)
					ts.row = nil
				}
			case "tbl":
				if len(tables) > 0 {
					doc.Tables = append(doc.Tables, tables[len(tables)-1].table)
					tables = tables[:len(tables)-1]
				}
			}
			stack = stack[:len(stack)-1]
		}
	}

	return doc, nil
}
