//go:build mage

// Package main contains Mage build targets for acronym-table developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories a glossary run expects.
var projectDirs = []string{
	"chapters",
	"output",
}

// Init creates the input and output folders used by Generate.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "acronym-table"
	cmdPkg  = "./cmd/acronym-table"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Generate builds the CLI and writes the acronyms table for chapters/ into output/.
func Generate() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "generate",
		"--input-dir", projectDirs[0], "--output-dir", projectDirs[1])
}
