// Package template creates and composites the background template page.
// The template carries header and footer artwork in fixed bands; the
// content renderer stays inside the band boundaries. The boundaries are
// a manual contract between the two artifacts — nothing verifies that an
// edited template still matches.
package template

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/jakerains/configpdfprocessor/core/render"
)

const (
	pageWidth  = 210.0
	pageHeight = 297.0

	// HeaderBottomY is the bottom edge of the header band.
	HeaderBottomY = 70.0
	// FooterTopY is the top edge of the footer band.
	FooterTopY = 257.0
)

// CreateBackground writes an editable background template PDF: gray header
// and footer bands with placeholder text, plus markers showing where
// rendered content will start and end.
func CreateBackground(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(0, 0, pageWidth, HeaderBottomY, "F")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetXY(20, 30)
	pdf.CellFormat(0, 10, "HEADER AREA - Edit in PDF editor", "", 1, "C", false, 0, "")

	// Content area markers.
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(200, 200, 200)
	pdf.SetXY(20, render.ContentTopY)
	pdf.CellFormat(0, 10, "--- Content will start here ---", "", 1, "L", false, 0, "")
	pdf.SetXY(20, render.ContentEndY)
	pdf.CellFormat(0, 10, "--- Content will end here ---", "", 1, "L", false, 0, "")

	// Footer band.
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(0, FooterTopY, pageWidth, pageHeight-FooterTopY, "F")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetXY(20, 272)
	pdf.CellFormat(0, 10, "FOOTER AREA - Edit in PDF editor", "", 1, "C", false, 0, "")

	// Guidelines at the band boundaries.
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, HeaderBottomY, pageWidth-20, HeaderBottomY)
	pdf.Line(20, FooterTopY, pageWidth-20, FooterTopY)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing template %s: %w", path, err)
	}
	return nil
}

// Exists reports whether the background template file is present.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
