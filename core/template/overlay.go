package template

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Overlay composites a rendered content page on top of page 1 of the
// background template and returns the merged PDF. The content bytes are
// staged in a uniquely named temp file (the importer reads from paths)
// which is removed on every exit path, so concurrent overlays do not
// collide.
func Overlay(contentPDF []byte, templatePath string) (merged []byte, err error) {
	tmp, err := os.CreateTemp("", "specsheet-content-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("staging content page: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(contentPDF); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("staging content page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("staging content page: %w", err)
	}

	// The importer panics on unreadable or malformed PDFs; surface that
	// as an error so one bad product does not kill the batch.
	defer func() {
		if r := recover(); r != nil {
			merged = nil
			err = fmt.Errorf("merging template %s: %v", templatePath, r)
		}
	}()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()

	// Template first, content on top: a flattening composite of page 1
	// of each document.
	importer := gofpdi.NewImporter()
	background := importer.ImportPage(pdf, templatePath, 1, "/MediaBox")
	importer.UseImportedTemplate(pdf, background, 0, 0, w, h)
	content := importer.ImportPage(pdf, tmp.Name(), 1, "/MediaBox")
	importer.UseImportedTemplate(pdf, content, 0, 0, w, h)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing merged PDF: %w", err)
	}
	return buf.Bytes(), nil
}
