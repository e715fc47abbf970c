// Package pdfio handles PDF decoding and assembly: per-page text extraction
// for the scan pass and page concatenation for the consolidated output.
package pdfio

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jteoh/invsplit/internal/engine"
)

// Reader is one open source PDF yielding position-ordered plain text per
// page.
type Reader struct {
	file *os.File
	doc  *pdf.Reader
	path string
}

// OpenReader opens a source PDF for text extraction. The file stays open
// until Close so the whole scan works off one handle.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat PDF: %w", err)
	}
	doc, err := pdf.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}
	return &Reader{file: f, doc: doc, path: path}, nil
}

// NumPages returns the page count.
func (r *Reader) NumPages() int {
	return r.doc.NumPage()
}

// PageText renders the 1-based page as plain text: one line per text row,
// horizontal gaps between fragments widened into column gaps so downstream
// heuristics can split on runs of whitespace. An empty or unreadable page
// yields an empty string.
func (r *Reader) PageText(pageNum int) (string, error) {
	if pageNum < 1 || pageNum > r.doc.NumPage() {
		return "", fmt.Errorf("page %d out of range for %s", pageNum, r.path)
	}
	page := r.doc.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
	}

	var b strings.Builder
	for _, row := range rows {
		var prev *pdf.Text
		for i := range row.Content {
			word := row.Content[i]
			if prev != nil {
				b.WriteString(gap(prev, &word))
			}
			b.WriteString(word.S)
			prev = &row.Content[i]
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// gap converts the horizontal distance between two fragments into
// whitespace: a distance wider than roughly one character becomes a column
// gap, a small positive distance a single space, and touching fragments
// nothing.
func gap(prev, next *pdf.Text) string {
	dist := next.X - (prev.X + prev.W)
	size := prev.FontSize
	if size <= 0 {
		size = 10
	}
	switch {
	case dist > size:
		return "  "
	case dist > size*0.15:
		return " "
	default:
		return ""
	}
}

// Opener opens source PDFs for the engine.
type Opener struct{}

// Open opens the PDF at path as an engine page source.
func (Opener) Open(path string) (engine.PageSource, error) {
	return OpenReader(path)
}
