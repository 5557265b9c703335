// Package docextract pulls plain text out of uploaded resume documents.
package docextract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported content types.
const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
	MimeDOCX        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText        = "text/plain"
)

var (
	// ErrUnsupportedType is returned for content types that cannot be read.
	ErrUnsupportedType = errors.New("unsupported document type")
	// ErrInvalidDocument is returned when document bytes cannot be parsed.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrEmptyText is returned when a document parses but holds no text.
	ErrEmptyText = errors.New("empty extracted text")
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// Supported reports whether contentType can be extracted.
func Supported(contentType string) bool {
	switch mediaType(contentType) {
	case MimePDF, MimeOctetStream, MimeDOCX, MimeText:
		return true
	default:
		return false
	}
}

// Extract returns the trimmed text of a document. Octet streams are read as PDF.
func Extract(contentType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch mediaType(contentType) {
	case MimePDF, MimeOctetStream:
		text, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimeText:
		text = string(data)
	default:
		return "", fmt.Errorf("%w (got %q)", ErrUnsupportedType, contentType)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// ExtractFile reads a document from disk, picking the content type from its extension.
func ExtractFile(path string) (string, error) {
	contentType := ContentTypeForPath(path)
	if contentType == "" {
		return "", fmt.Errorf("%w (unknown extension %q)", ErrUnsupportedType, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Extract(contentType, data)
}

// ContentTypeForPath maps a file extension to a supported content type, or "".
func ContentTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".text", ".md":
		return MimeText
	default:
		return ""
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// extractPDF joins the plain text of every page with newlines.
// The pdf reader panics on some malformed input, which is reported as ErrInvalidDocument.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrInvalidDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrInvalidDocument, i, err)
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns WordprocessingML into lines of text, one per paragraph.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllStringFunc(content, func(tag string) string {
		if strings.HasPrefix(tag, "<w:tab") {
			return " "
		}
		return "\n"
	})
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
