// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glossary builds the acronyms table for a folder of documents.
// Files are scanned in filename order; the first file that defines an
// acronym wins.
package glossary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/acronym-table/internal/acronym"
	"github.com/pdiddy/acronym-table/internal/docx"
	"github.com/pdiddy/acronym-table/internal/paragraph"
	"github.com/pdiddy/acronym-table/pkg/types"
)

const (
	// TableName is the base name of the output document.
	TableName = "Acronyms Table"

	headerAcronym     = "Acronym"
	headerDescription = "Description"
)

// Builder runs the glossary pipeline for one configuration.
type Builder struct {
	cfg       types.Config
	extractor paragraph.Extractor
	w         io.Writer
	logger    *slog.Logger
}

// NewBuilder validates cfg and prepares the extractor for its mode. Status
// lines are written to w; warnings go to logger (slog.Default() when nil).
func NewBuilder(cfg types.Config, w io.Writer, logger *slog.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ext, err := paragraph.NewExtractor(cfg.Mode, paragraph.Options{
		ReadTables: cfg.ReadTables,
		Encoding:   cfg.Encoding,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return newBuilder(cfg, ext, w, logger), nil
}

func newBuilder(cfg types.Config, ext paragraph.Extractor, w io.Writer, logger *slog.Logger) *Builder {
	if w == nil {
		w = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, extractor: ext, w: w, logger: logger}
}

// Build scans every file in the input folder, merges the results and writes
// the acronyms table to the output folder. Any read error aborts the run
// before the table is written, and a failed export leaves no table behind.
func (b *Builder) Build(ctx context.Context) (types.BuildSummary, error) {
	files, err := InputFiles(b.cfg.InputDir)
	if err != nil {
		return types.BuildSummary{}, err
	}

	corpus := NewCorpus()
	var resolve Resolver
	if b.cfg.FindDefinitions {
		resolve = func(acronyms, paragraphs []string) map[string]*string {
			fmt.Fprintln(b.w, "Checking for definitions...")
			return acronym.Definitions(acronyms, paragraphs)
		}
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return types.BuildSummary{}, ctx.Err()
		default:
		}

		if err := b.scanFile(corpus, path, resolve); err != nil {
			return types.BuildSummary{}, err
		}
	}

	entries := corpus.Entries()
	summary := types.BuildSummary{
		Files:    len(files),
		Acronyms: len(entries),
	}
	for _, e := range entries {
		if e.Definition != nil {
			summary.Defined++
		}
	}

	fmt.Fprintln(b.w, "Filling table...")
	summary.OutputPath = filepath.Join(b.cfg.OutputDir, TableName+docx.Extension)
	if b.cfg.Export != types.ExportNone {
		summary.ExportPath = filepath.Join(b.cfg.OutputDir, TableName+"."+string(b.cfg.Export))
	}
	if err := b.writeOutputs(summary, entries); err != nil {
		return types.BuildSummary{}, err
	}

	fmt.Fprintf(b.w, "All done! %d acronyms (%d defined, %d undefined) from %d files written to %s\n",
		summary.Acronyms, summary.Defined, summary.Undefined(), summary.Files, summary.OutputPath)
	return summary, nil
}

// writeOutputs stages the table and the optional export, then renames both
// into place. A failure leaves neither output behind.
func (b *Builder) writeOutputs(summary types.BuildSummary, entries []types.Entry) error {
	var out outputSet
	defer out.discard()

	rows := TableRows(entries)
	if err := out.stage(summary.OutputPath, func(w io.Writer) error {
		return docx.WriteTable(w, rows)
	}); err != nil {
		return fmt.Errorf("writing acronyms table: %w", err)
	}

	if summary.ExportPath != "" {
		data, err := EncodeExport(b.cfg.Export, entries)
		if err != nil {
			return fmt.Errorf("exporting glossary: %w", err)
		}
		if err := out.stageBytes(summary.ExportPath, data); err != nil {
			return fmt.Errorf("exporting glossary: %w", err)
		}
	}

	if err := out.commit(); err != nil {
		return fmt.Errorf("saving outputs: %w", err)
	}
	return nil
}

func (b *Builder) scanFile(corpus *Corpus, path string, resolve Resolver) error {
	fmt.Fprintf(b.w, "Scanning %s for acronyms...\n", filepath.Base(path))

	src, err := b.extractor.Extract(path)
	if err != nil {
		return fmt.Errorf("extracting paragraphs from %s: %w", path, err)
	}

	if len(src.Cells) > 0 {
		fmt.Fprintln(b.w, "Scanning the tables for acronyms...")
	}
	found := acronym.ScanAll(src.Units())

	fresh := corpus.Merge(filepath.Base(path), found, src.Paragraphs, resolve)
	b.logger.Debug("scanned file", "path", path,
		"paragraphs", len(src.Paragraphs), "cells", len(src.Cells),
		"acronyms", len(found), "new", len(fresh))
	return nil
}

// InputFiles lists the regular entries of dir in filename order.
// Subdirectories are skipped; no extension filtering is applied.
func InputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// TableRows renders entries as table rows under the Acronym/Description
// header. Missing definitions leave the description cell empty.
func TableRows(entries []types.Entry) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{headerAcronym, headerDescription})
	for _, e := range entries {
		rows = append(rows, []string{e.Acronym, e.Description()})
	}
	return rows
}
