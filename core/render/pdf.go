// Package render — PDF spec-sheet renderer.
// Lays a structured record onto an A4 page as a title, a price, and a table
// of label/value rows with alternating backgrounds. Row heights are driven
// by content: explicit line breaks and a wrapped-line estimate.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jakerains/configpdfprocessor/core"
)

const (
	marginLeft  = 20.0
	marginRight = 20.0
	marginTop   = 20.0

	// baseRowHeight is the line pitch; row height is a multiple of it.
	baseRowHeight = 8.0
	labelShare    = 0.3

	fillDark  = 230
	fillLight = 245
	textGray  = 100

	titleFontSize = 24.0
	priceFontSize = 32.0
	specFontSize  = 10.0
)

// Reserved-band boundaries shared with the background template artifact.
// These must match the bands baked into the template page; the code does
// not verify the template itself.
const (
	// ContentTopY is where templated content starts, below the header band.
	ContentTopY = 75.0
	// ContentEndY marks the bottom of the usable content area.
	ContentEndY = 220.0
)

// SheetRenderer renders a StructuredRecord as a PDF specification sheet.
type SheetRenderer struct {
	// contentTop, when positive, is where content starts; the band above
	// is reserved for a background template header.
	contentTop float64
	// autoBreak enables gofpdf's automatic page break. The templated
	// variant turns it off so content never flows past the footer band.
	autoBreak bool
}

// NewSheetRenderer creates a renderer for standalone spec sheets.
func NewSheetRenderer() *SheetRenderer {
	return &SheetRenderer{autoBreak: true}
}

// NewTemplatedSheetRenderer creates a renderer whose output is meant to be
// composited over a background template: content starts below the header
// band and pagination is disabled.
func NewTemplatedSheetRenderer() *SheetRenderer {
	return &SheetRenderer{contentTop: ContentTopY, autoBreak: false}
}

// Render draws the record and returns the PDF bytes.
func (r *SheetRenderer) Render(record core.StructuredRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if r.autoBreak {
		pdf.SetAutoPageBreak(true, 15)
	} else {
		pdf.SetAutoPageBreak(false, 0)
	}
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.AddPage()
	if r.contentTop > 0 {
		pdf.SetY(r.contentTop)
	}

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - marginLeft - marginRight
	labelWidth := contentWidth * labelShare
	valueWidth := contentWidth - labelWidth

	// Title.
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.CellFormat(0, 15, Sanitize(record.Title), "", 1, "L", false, 0, "")

	// Price, unless absent or the "none" sentinel.
	if hasPrice(record.Price) {
		pdf.SetFont("Helvetica", "B", priceFontSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 20, "$"+Sanitize(record.Price), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Main specifications with alternating backgrounds.
	pdf.SetFont("Helvetica", "", specFontSize)
	isDark := true

	for _, spec := range record.MainSpecs {
		if spec.Value == "" {
			continue
		}

		setFill(pdf, isDark)

		value := Sanitize(spec.Value)
		rowHeight := RowHeight(spec.Value, pdf.GetStringWidth(value), valueWidth)

		x, y := pdf.GetXY()
		pdf.Rect(x, y, contentWidth, rowHeight, "F")

		pdf.SetTextColor(textGray, textGray, textGray)
		pdf.SetFont("Helvetica", "B", specFontSize)
		pdf.CellFormat(labelWidth, rowHeight, Sanitize(spec.Label), "", 0, "L", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", specFontSize)
		pdf.MultiCell(valueWidth, baseRowHeight, value, "", "L", false)

		pdf.SetXY(x, y+rowHeight)
		isDark = !isDark
	}

	r.renderUpgrades(pdf, record, contentWidth, labelWidth, valueWidth)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF for %q: %w", record.Title, err)
	}
	return buf.Bytes(), nil
}

// renderUpgrades draws the upgrade-options section. Row height here comes
// from explicit line breaks only; upgrade values are short.
func (r *SheetRenderer) renderUpgrades(pdf *gofpdf.Fpdf, record core.StructuredRecord, contentWidth, labelWidth, valueWidth float64) {
	if len(record.UpgradeOptions) == 0 {
		return
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "UPGRADE OPTIONS", "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", specFontSize)
	isDark := true

	for _, upgrade := range record.UpgradeOptions {
		if upgrade.Value == "" {
			continue
		}

		setFill(pdf, isDark)

		text := upgrade.Value
		if upgrade.Price != "" {
			text += " - $" + upgrade.Price
		}
		lines := strings.Count(text, "\n") + 1
		rowHeight := baseRowHeight * float64(lines)

		x, y := pdf.GetXY()
		pdf.Rect(x, y, contentWidth, rowHeight, "F")

		pdf.SetTextColor(textGray, textGray, textGray)
		pdf.SetFont("Helvetica", "B", specFontSize)
		pdf.CellFormat(labelWidth, rowHeight, Sanitize(upgrade.Label), "", 0, "L", false, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", specFontSize)
		pdf.MultiCell(valueWidth, rowHeight/float64(lines), Sanitize(text), "", "L", false)

		pdf.SetXY(x, y+rowHeight)
		isDark = !isDark
	}
}

// Extension returns the file extension for PDF output.
func (r *SheetRenderer) Extension() string {
	return ".pdf"
}

// RowHeight returns the height for one specification row: the base unit
// times the larger of the explicit line count and the wrapped-line estimate.
func RowHeight(value string, renderedWidth, columnWidth float64) float64 {
	return baseRowHeight * float64(TotalLines(value, renderedWidth, columnWidth))
}

// TotalLines combines explicit line breaks with the wrap estimate.
func TotalLines(value string, renderedWidth, columnWidth float64) int {
	explicit := strings.Count(value, "\n") + 1
	wrapped := WrappedLines(renderedWidth, columnWidth)
	if explicit > wrapped {
		return explicit
	}
	return wrapped
}

// WrappedLines estimates how many lines a string of the given rendered
// width needs in a column. The estimate can undershoot true wrapping
// (word breaks are ignored); that is accepted behavior.
func WrappedLines(renderedWidth, columnWidth float64) int {
	lines := int(renderedWidth/columnWidth) + 1
	if lines < 1 {
		lines = 1
	}
	return lines
}

// hasPrice reports whether the price should be drawn.
func hasPrice(price string) bool {
	return price != "" && price != "None"
}

func setFill(pdf *gofpdf.Fpdf, isDark bool) {
	if isDark {
		pdf.SetFillColor(fillDark, fillDark, fillDark)
	} else {
		pdf.SetFillColor(fillLight, fillLight, fillLight)
	}
}
