package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for any file extension other than the
// supported resume formats. The check runs before any file I/O.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Supported reports whether the file name carries a resume extension this
// extractor can handle.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// Extractor converts resume documents into plain text.
type Extractor struct{}

func (Extractor) Extract(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	return strings.TrimSpace(stripTags(content)), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// stripTags flattens the document.xml markup the docx reader returns into
// plain text, keeping paragraph boundaries as newlines.
func stripTags(s string) string {
	s = paragraphEnd.ReplaceAllString(s, "\n")
	s = xmlTag.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
