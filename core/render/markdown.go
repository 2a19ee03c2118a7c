// Package render — Markdown renderer.
// Writes the record back out as a readable markdown spec sheet.
package render

import (
	"fmt"
	"strings"

	"github.com/jakerains/configpdfprocessor/core"
)

// MarkdownRenderer writes a record as a markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render produces a markdown spec sheet with the same content the PDF
// renderer draws: title, price, specification table, upgrade options.
func (r *MarkdownRenderer) Render(record core.StructuredRecord) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", record.Title)
	if hasPrice(record.Price) {
		fmt.Fprintf(&b, "**$%s**\n\n", record.Price)
	}

	b.WriteString("| Specification | Details |\n|---|---|\n")
	for _, spec := range record.MainSpecs {
		if spec.Value == "" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", spec.Label, oneLine(spec.Value))
	}

	if len(record.UpgradeOptions) > 0 {
		b.WriteString("\n## Upgrade Options\n\n")
		for _, upgrade := range record.UpgradeOptions {
			if upgrade.Value == "" {
				continue
			}
			line := fmt.Sprintf("- **%s**: %s", upgrade.Label, oneLine(upgrade.Value))
			if upgrade.Price != "" {
				line += fmt.Sprintf(" - $%s", upgrade.Price)
			}
			b.WriteString(line + "\n")
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// oneLine flattens explicit line breaks so table cells stay on one row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
