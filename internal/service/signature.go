package service

import (
	"bytes"
	"net/http"

	"bolextract/internal/domain"
)

// signatureWindow is how far into a document a PDF header is searched for.
const signatureWindow = 1024

var (
	pdfHeader = []byte("%PDF-")
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

// matchesContentType reports whether data plausibly holds a document of contentType.
// PDF readers accept junk before the header, so "%PDF-" may appear anywhere in the
// first signatureWindow bytes. Images are sniffed after stripping a BOM and leading whitespace.
func matchesContentType(contentType string, data []byte) bool {
	head := data
	if len(head) > signatureWindow {
		head = head[:signatureWindow]
	}
	if contentType == domain.AllowedFileTypes[domain.FileTypePDF] {
		return bytes.Contains(head, pdfHeader)
	}
	head = bytes.TrimLeft(bytes.TrimPrefix(head, utf8BOM), " \t\r\n")
	return normalizeContentType(http.DetectContentType(head)) == contentType
}
