// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paragraph

import (
	"github.com/pdiddy/acronym-table/internal/docx"
	"github.com/pdiddy/acronym-table/pkg/types"
)

// WordExtractor reads paragraphs from the structure of a .docx document.
type WordExtractor struct {
	// ReadTables returns every table cell as an extra scan unit. Cells are
	// never used for definitions.
	ReadTables bool
}

// Extract opens the document at path and collects its body paragraphs.
func (w *WordExtractor) Extract(path string) (types.SourceText, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return types.SourceText{}, err
	}

	src := types.SourceText{
		Path:       path,
		Paragraphs: doc.Paragraphs,
	}
	if w.ReadTables {
		for _, tbl := range doc.Tables {
			src.Cells = append(src.Cells, tbl.Cells()...)
		}
	}
	return src, nil
}
