package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned when a document's format is outside the
// PDF/DOC/DOCX set the extractor can handle.
var ErrUnsupportedFormat = errors.New("unsupported file type")

type TextExtractor interface {
	Extract(data []byte, format DocumentFormat) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract produces plain text from a document blob. Only textual content
// matters downstream; layout fidelity is not preserved.
func (t *textExtractor) Extract(data []byte, format DocumentFormat) (string, error) {
	switch format {
	case FormatPDF:
		return t.extractPDF(data)
	case FormatDOC, FormatDOCX:
		return t.extractWord(data, format)
	default:
		return "", ErrUnsupportedFormat
	}
}

func (t *textExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func (t *textExtractor) extractWord(data []byte, format DocumentFormat) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), format.ContentType(), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s document: %w", format, err)
	}

	text := res.Body
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in %s document", format)
	}

	return text, nil
}

// CleanText trims and collapses blank lines in extracted text before it is
// embedded into a scoring prompt.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
