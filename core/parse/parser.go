package parse

import (
	"fmt"
	"strings"

	"github.com/jakerains/configpdfprocessor/core"
)

const (
	// placeholder marks a cell the source spreadsheet export left empty.
	placeholder = "NaN"
	// currencyMarker prefixes price cells.
	currencyMarker = "$"
)

// markerPhrases identify a row that starts a new product block.
var markerPhrases = []string{"Base Configuration", "Base configuration"}

// TableParser reconstructs product blocks from pipe-delimited markdown.
type TableParser struct{}

// New creates a TableParser.
func New() *TableParser {
	return &TableParser{}
}

// Parse scans the markdown and returns the product blocks in source order.
// A block is emitted only when it has a name and at least one specification.
func (p *TableParser) Parse(markdown string) []core.RawProduct {
	var products []core.RawProduct

	var currentName string
	var currentSpecs []core.RawSpec
	// The running price carries forward across rows and is consumed at
	// block finalization, so a price row anywhere in a block (or even
	// before it) prices the block.
	var currentPrice string

	flush := func() {
		if currentName != "" && len(currentSpecs) > 0 {
			products = append(products, core.RawProduct{
				Name:           currentName,
				Price:          currentPrice,
				Specifications: currentSpecs,
			})
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") || isSeparatorRow(line) {
			continue
		}

		cells := splitCells(line)
		if len(cells) == 0 {
			continue
		}

		for _, cell := range cells {
			if strings.HasPrefix(cell, currencyMarker) {
				currentPrice = strings.ReplaceAll(strings.TrimPrefix(cell, currencyMarker), ",", "")
				break
			}
		}

		if cells[0] != placeholder && isMarkerRow(line) {
			flush()
			currentName = cells[0]
			currentSpecs = nil
			continue
		}

		if currentName != "" && len(cells) >= 2 {
			if cells[0] == placeholder {
				// Price-only rows update the running price above and
				// contribute no specification.
				if strings.HasPrefix(cells[1], currencyMarker) {
					continue
				}
				currentSpecs = append(currentSpecs, core.RawSpec{
					Category: Classify(cells[1]),
					Value:    cells[1],
				})
			} else {
				currentSpecs = append(currentSpecs, core.RawSpec{
					Category: cells[0],
					Value:    cells[1],
				})
			}
		}
	}

	flush()
	return products
}

// Serialize renders a product list back to pipe-table markdown that Parse
// reconstructs into the same products.
func Serialize(products []core.RawProduct) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "| %s | Base Configuration |\n", p.Name)
		if p.Price != "" {
			fmt.Fprintf(&b, "| %s | %s%s |\n", placeholder, currencyMarker, p.Price)
		}
		for _, s := range p.Specifications {
			fmt.Fprintf(&b, "| %s | %s |\n", s.Category, s.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// splitCells splits a table row on pipes, trims each cell, and drops
// the empty ones.
func splitCells(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// isSeparatorRow reports whether the line is a table separator like
// |---|---| or | --- | :-- |.
func isSeparatorRow(line string) bool {
	for _, ch := range line {
		if ch != '|' && ch != '-' && ch != ' ' && ch != ':' {
			return false
		}
	}
	return true
}

func isMarkerRow(line string) bool {
	for _, phrase := range markerPhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}
