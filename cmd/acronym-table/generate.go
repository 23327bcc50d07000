// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/acronym-table/internal/glossary"
	"github.com/pdiddy/acronym-table/pkg/types"
)

// configKeys maps viper keys to the generate flags that set them.
var configKeys = map[string]string{
	"input_dir":        "input-dir",
	"output_dir":       "output-dir",
	"mode":             "mode",
	"read_tables":      "read-tables",
	"find_definitions": "find-definitions",
	"encoding":         "encoding",
	"export":           "export",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the input folder and write the acronyms table",
	Long: `Generate reads every file in the input folder in filename order, collects
the acronyms, and writes "Acronyms Table.docx" to the output folder with one
row per acronym. The first definition found for an acronym wins; acronyms
without a definition get an empty description.

Modes:
  latex  plain text, paragraphs separated by blank lines
  word   .docx documents; --read-tables also scans table cells`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("input-dir", "chapters", "folder containing the documents to scan")
	generateCmd.Flags().String("output-dir", ".", "folder receiving the acronyms table")
	generateCmd.Flags().String("mode", string(types.ModeLaTeX), "execution mode: latex or word")
	generateCmd.Flags().Bool("read-tables", false, "scan table cells for acronyms (word mode)")
	generateCmd.Flags().Bool("find-definitions", true, "search the text for acronym definitions")
	generateCmd.Flags().String("encoding", types.DefaultEncoding, "character encoding of plain-text input")
	generateCmd.Flags().String("export", "", "also write the glossary as yaml or json")

	for key, flag := range configKeys {
		if err := viper.BindPFlag(key, generateCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	builder, err := glossary.NewBuilder(cfg, os.Stdout, slog.Default())
	if err != nil {
		return err
	}

	summary, err := builder.Build(context.Background())
	if err != nil {
		return err
	}
	if summary.ExportPath != "" {
		fmt.Fprintf(os.Stdout, "Exported to %s\n", summary.ExportPath)
	}
	return nil
}

// loadConfig reads the run configuration from v and validates it.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Encoding == "" {
		cfg.Encoding = types.DefaultEncoding
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
