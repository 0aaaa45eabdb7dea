package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"bolextract/internal/domain"
)

// BOM prefixes CSV exports so spreadsheet apps read them as UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{"Section", "Field", "Value"}

const (
	sectionMeta      = "meta"
	sectionCanonical = "canonical"
	sectionRawForm   = "raw_form"
	sectionLine      = "line"
)

// CSVWriter wraps csv.Writer for exporting an extraction as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult writes metadata, canonical fields, raw form pairs and lines, in that order.
// Absent canonical fields are written with an empty value.
func (w *CSVWriter) WriteResult(result *domain.ExtractionResult) error {
	for _, row := range resultToRows(result) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a complete CSV document, BOM included, for result.
func WriteCSV(out io.Writer, result *domain.ExtractionResult) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewCSVWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteResult(result); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func resultToRows(result *domain.ExtractionResult) [][]string {
	meta := result.Meta
	rows := [][]string{
		{sectionMeta, "id", meta.ID.String()},
		{sectionMeta, "source", meta.Source},
		{sectionMeta, "content_type", meta.ContentType},
		{sectionMeta, "processed_at", formatTime(meta.ProcessedAt)},
	}

	ext := result.Extraction
	if ext == nil {
		return rows
	}
	for _, f := range domain.CanonicalFields {
		v, _ := ext.Value(f)
		rows = append(rows, []string{sectionCanonical, string(f), v})
	}
	for _, e := range ext.RawForms.Entries() {
		rows = append(rows, []string{sectionRawForm, e.Key, e.Value})
	}
	for i, line := range ext.Data {
		rows = append(rows, []string{sectionLine, strconv.Itoa(i + 1), line})
	}
	return rows
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
