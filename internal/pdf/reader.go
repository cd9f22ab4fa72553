// Package pdf turns PDF bills into the plain text the extraction pipeline
// consumes. Scanned (image-only) PDFs yield empty text; OCR is out of scope.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPages caps how many pages are read per document. Utility bills
// are a handful of pages; anything past the cap is boilerplate.
const DefaultMaxPages = 20

// Reader extracts plain text from PDF documents.
type Reader struct {
	maxPages int
}

// NewReader creates a PDF text reader. maxPages <= 0 selects the default cap.
func NewReader(maxPages int) *Reader {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Reader{maxPages: maxPages}
}

// ExtractFile reads the PDF at path and returns its text content.
func (r *Reader) ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()
	return r.Extract(f)
}

// Extract reads a PDF from src and returns its text, page rows separated by
// newlines. The reader needs the full document in memory: the PDF format
// requires random access.
func (r *Reader) Extract(src io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(src)
	if err != nil {
		return "", fmt.Errorf("read pdf source: %w", err)
	}

	doc, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	pages := doc.NumPage()
	if pages > r.maxPages {
		pages = r.maxPages
	}

	var text strings.Builder
	for i := 1; i <= pages; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single corrupt page should not void the rest of the bill.
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				text.WriteString(word.S)
				text.WriteString(" ")
			}
			text.WriteString("\n")
		}
	}
	return text.String(), nil
}
