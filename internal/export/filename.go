package export

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"bolextract/internal/domain"
)

// maxFilenameBase caps the uploaded-name part of a download filename.
const maxFilenameBase = 100

// separatorRun matches any run of characters that cannot appear in a quoted
// Content-Disposition filename. Underscores are included so runs collapse to one.
var separatorRun = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// SanitizeFilename turns an uploaded bill-of-lading name such as "BOL / March 2025"
// into "BOL_March_2025" for the export download.
func SanitizeFilename(name string) string {
	s := strings.Trim(separatorRun.ReplaceAllString(name, "_"), "_")
	if len(s) > maxFilenameBase {
		s = strings.TrimRight(s[:maxFilenameBase], "_")
	}
	return s
}

// BuildFilename names an export as <document>_<YYYY-MM-DD>.<format>, falling back
// to "bill_of_lading" when nothing usable is left of the upload name.
func BuildFilename(documentName string, format domain.ExportFormat) string {
	base := SanitizeFilename(strings.TrimSuffix(documentName, filepath.Ext(documentName)))
	if base == "" {
		base = "bill_of_lading"
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", base, date, format)
}

// ParseFormat validates a requested export format.
func ParseFormat(s string) (domain.ExportFormat, error) {
	format := domain.ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := domain.ExportContentTypes[format]; !ok {
		return "", domain.ErrUnsupportedExportFormat
	}
	return format, nil
}
