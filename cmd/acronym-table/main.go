// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the acronym-table CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the acronym-table CLI.
var rootCmd = &cobra.Command{
	Use:   "acronym-table",
	Short: "Build an acronym glossary from a folder of documents",
	Long: `acronym-table scans a folder of LaTeX sources or Word documents for
acronyms (two or more consecutive capitals), guesses each definition from the
words around it, and writes a two-column "Acronyms Table.docx".

Settings come from flags, ACRONYM_TABLE_* environment variables, or an
acronym-table.yaml config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := parseLogLevel(levelName)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./acronym-table.yaml or ~/.config/acronym-table/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("acronym-table")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "acronym-table"))
		}
	}

	viper.SetEnvPrefix("ACRONYM_TABLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// parseLogLevel maps a level name to its slog.Level.
func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unsupported log level %q: use debug, info, warn, or error", name)
	}
	return level, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
