// Package parser extracts plain text from uploaded documents locally.
// Formats with no local extractor (images, legacy .doc) are routed to
// model OCR by the caller.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw document bytes into paragraph-preserving text.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// UnsupportedTypeError indicates an upload media type outside the allow-list.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MimeType)
}

// SupportedTypes lists every media type this service accepts, including
// the OCR-only ones.
var SupportedTypes = map[string]bool{
	"text/plain":      true,
	"text/markdown":   true,
	"text/html":       true,
	"text/csv":        true,
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ocrOnlyTypes have no local extractor and always go through model OCR.
var ocrOnlyTypes = map[string]bool{
	"image/png":          true,
	"image/jpeg":         true,
	"application/msword": true,
}

// IsSupported checks if a media type is in the allow-list.
func IsSupported(mimeType string) bool {
	return SupportedTypes[normalizeMime(mimeType)]
}

// IsOCROnly reports whether a media type can only be handled by model OCR.
func IsOCROnly(mimeType string) bool {
	return ocrOnlyTypes[normalizeMime(mimeType)]
}

// ForMime returns the local extractor for a media type. Callers must check
// IsOCROnly first; OCR-only types yield an UnsupportedTypeError here.
func ForMime(mimeType string) (Extractor, error) {
	switch normalizeMime(mimeType) {
	case "text/plain":
		return &TextExtractor{}, nil
	case "text/markdown":
		return &MarkdownExtractor{}, nil
	case "text/html":
		return &HTMLExtractor{}, nil
	case "text/csv":
		return &CSVExtractor{}, nil
	case "application/pdf":
		return &PDFExtractor{}, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return &DOCXExtractor{}, nil
	default:
		return nil, &UnsupportedTypeError{MimeType: mimeType}
	}
}

// MimeForFilename maps a filename extension to a media type, for uploads
// that arrive without a usable Content-Type.
func MimeForFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain"
	case ".md", ".markdown":
		return "text/markdown"
	case ".html", ".htm":
		return "text/html"
	case ".csv":
		return "text/csv"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return ""
	}
}

func normalizeMime(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
