// Package output handles file naming and writing for spec-sheet documents.
// Filenames are derived from the product name, sanitized to a safe
// character set, with a fixed "_spec" suffix.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered documents to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating it
// if absent. If outputDir is empty, it defaults to "output" under the
// current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		outputDir = "output"
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores one product's rendered document and returns its path.
// Example: "Latitude 3550 Base Configuration" → Latitude 3550 Base Configuration_spec.pdf
func (w *Writer) Write(productName string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Filename(productName)+ext)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename sanitizes a product name into a filename stem: letters, digits,
// spaces, hyphens, and underscores survive; everything else is dropped.
// Letters and digits are matched Unicode-aware, so accented names keep
// their characters.
func Filename(productName string) string {
	var b strings.Builder
	for _, ch := range productName {
		switch {
		case unicode.IsLetter(ch), unicode.IsDigit(ch):
			b.WriteRune(ch)
		case ch == ' ', ch == '-', ch == '_':
			b.WriteRune(ch)
		}
	}
	return b.String() + "_spec"
}
