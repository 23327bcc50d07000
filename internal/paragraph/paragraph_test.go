// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paragraph

import (
	"archive/zip"
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/acronym-table/pkg/types"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// writeDocx writes a .docx holding the given body paragraphs followed by one
// table with the given rows.
func writeDocx(t *testing.T, dir, name string, paragraphs []string, rows [][]string) string {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`)
	}
	if len(rows) > 0 {
		body.WriteString(`<w:tbl>`)
		for _, row := range rows {
			body.WriteString(`<w:tr>`)
			for _, cell := range row {
				body.WriteString(`<w:tc><w:p><w:r><w:t>` + cell + `</w:t></w:r></w:p></w:tc>`)
			}
			body.WriteString(`</w:tr>`)
		}
		body.WriteString(`</w:tbl>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	fw, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return writeFile(t, dir, name, buf.Bytes())
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		name    string
		mode    types.Mode
		want    any
		wantErr bool
	}{
		{name: "latex", mode: types.ModeLaTeX, want: &TextExtractor{}},
		{name: "word", mode: types.ModeWord, want: &WordExtractor{}},
		{name: "unknown", mode: "markdown", wantErr: true},
		{name: "empty", mode: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewExtractor(tt.mode, Options{})
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidConfiguration)
				assert.Contains(t, err.Error(), "[latex word]")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNewTextExtractorUnknownEncoding(t *testing.T) {
	_, err := NewTextExtractor("klingon-8", nil)
	require.ErrorIs(t, err, types.ErrInvalidConfiguration)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "blank line separates paragraphs",
			input: "AAA BBB\n\nCCC DDD\n",
			want:  []string{"AAA BBB\n", "CCC DDD\n"},
		},
		{
			name:  "multi-line paragraph",
			input: "first line\nsecond line\n\nthird\n",
			want:  []string{"first line\nsecond line\n", "third\n"},
		},
		{
			name:  "whitespace-only line is blank",
			input: "one\n \t \ntwo",
			want:  []string{"one\n", "two"},
		},
		{
			name:  "consecutive blank lines",
			input: "\n\none\n\n\n\ntwo\n\n",
			want:  []string{"one\n", "two\n"},
		},
		{
			name:  "crlf line endings",
			input: "one\r\n\r\ntwo\r\n",
			want:  []string{"one\n", "two\n"},
		},
		{
			name:  "lone carriage returns end lines",
			input: "one\rtwo\r\rthree",
			want:  []string{"one\ntwo\n", "three"},
		},
		{
			name:  "mixed line endings",
			input: "Decay Time (DT)\r\nis short\r\r\nCHT\n",
			want:  []string{"Decay Time (DT)\nis short\n", "CHT\n"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	ext, err := NewTextExtractor("", nil)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.Split("input", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitSkipsUndecodableLine(t *testing.T) {
	var logs bytes.Buffer
	ext, err := NewTextExtractor("utf-8", testLogger(&logs))
	require.NoError(t, err)

	input := "The DT value\nbad \xff\xfe line\nstill here\n\nnext\n"
	got, err := ext.Split("chapter.tex", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"The DT value\nstill here\n", "next\n"}, got)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Line skipped")
	assert.Contains(t, logs.String(), "chapter.tex:2")
	assert.Equal(t, 1, strings.Count(logs.String(), "level=WARN"))
}

func TestSplitLatin1(t *testing.T) {
	ext, err := NewTextExtractor("iso-8859-1", nil)
	require.NoError(t, err)

	got, err := ext.Split("latin1.tex", strings.NewReader("Caf\xe9 Time (CT)\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Café Time (CT)\n"}, got)
}

func TestSplitUTF16(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		order    unicode.Endianness
	}{
		{name: "little endian", encoding: "utf-16le", order: unicode.LittleEndian},
		{name: "big endian", encoding: "utf-16be", order: unicode.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := unicode.UTF16(tt.order, unicode.IgnoreBOM).NewEncoder().String("Decay Time (DT)\n\nCHT loop\n")
			require.NoError(t, err)

			var logs bytes.Buffer
			ext, err := NewTextExtractor(tt.encoding, testLogger(&logs))
			require.NoError(t, err)

			got, err := ext.Split("utf16.tex", strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, []string{"Decay Time (DT)\n", "CHT loop\n"}, got)
			assert.Empty(t, logs.String())
		})
	}
}

func TestTextExtract(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "chapter1.tex", []byte("Decay Time (DT)\n\nCHT loop\n"))

	ext, err := NewExtractor(types.ModeLaTeX, Options{})
	require.NoError(t, err)

	src, err := ext.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, []string{"Decay Time (DT)\n", "CHT loop\n"}, src.Paragraphs)
	assert.Empty(t, src.Cells)

	_, err = ext.Extract(filepath.Join(dir, "missing.tex"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWordExtract(t *testing.T) {
	dir := t.TempDir()
	path := writeDocx(t, dir, "chapter.docx",
		[]string{"The Decay Time (DT) is short.", "HVAC systems"},
		[][]string{{"CHT", "Conjugate Heat Transfer"}},
	)

	tests := []struct {
		name       string
		readTables bool
		wantCells  []string
	}{
		{name: "paragraphs only", readTables: false, wantCells: nil},
		{name: "with tables", readTables: true, wantCells: []string{"CHT", "Conjugate Heat Transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := NewExtractor(types.ModeWord, Options{ReadTables: tt.readTables})
			require.NoError(t, err)

			src, err := ext.Extract(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"The Decay Time (DT) is short.", "HVAC systems"}, src.Paragraphs)
			assert.Equal(t, tt.wantCells, src.Cells)
		})
	}
}

func TestWordExtractRejectsPlainText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", []byte("plain text"))
	_, err := (&WordExtractor{}).Extract(path)
	require.Error(t, err)
}
