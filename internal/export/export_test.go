package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bolextract/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleResult() *domain.ExtractionResult {
	forms := domain.NewResolvedKV()
	forms.Set("Shipper Name", "ACME Corp")
	forms.Set("B/L No", "BOL-123")

	return &domain.ExtractionResult{
		Meta: domain.ExtractionMeta{
			ID:          uuid.MustParse("6f1c1e3a-4c59-4f8e-9d0b-6a1f3d9d2b11"),
			Source:      "upload:bol.pdf",
			ContentType: "application/pdf",
			ProcessedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		Extraction: &domain.Extraction{
			Status:   domain.ExtractionStatusSuccess,
			Data:     []string{"BILL OF LADING", "Shipper Name ACME Corp"},
			RawForms: forms,
			CanonicalRecord: domain.CanonicalRecord{
				Shipper:   strPtr("ACME Corp"),
				BOLNumber: strPtr("BOL-123"),
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, BOM))

	rows, err := csv.NewReader(bytes.NewReader(raw[len(BOM):])).ReadAll()
	require.NoError(t, err)

	// header + 4 meta + 8 canonical + 2 forms + 2 lines
	require.Len(t, rows, 17)
	assert.Equal(t, []string{"Section", "Field", "Value"}, rows[0])
	assert.Equal(t, []string{"meta", "id", "6f1c1e3a-4c59-4f8e-9d0b-6a1f3d9d2b11"}, rows[1])
	assert.Equal(t, []string{"meta", "processed_at", "2025-01-15T10:00:00Z"}, rows[4])
	assert.Equal(t, []string{"canonical", "bol_number", "BOL-123"}, rows[5])
	assert.Equal(t, []string{"canonical", "shipper", "ACME Corp"}, rows[6])
	assert.Equal(t, []string{"canonical", "consignee", ""}, rows[7])
	assert.Equal(t, []string{"raw_form", "Shipper Name", "ACME Corp"}, rows[13])
	assert.Equal(t, []string{"raw_form", "B/L No", "BOL-123"}, rows[14])
	assert.Equal(t, []string{"line", "2", "Shipper Name ACME Corp"}, rows[16])
}

func TestWriteCSV_NoExtraction(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &domain.ExtractionResult{}))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, []string{"meta", "processed_at", ""}, rows[4])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleResult()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetFields, SheetRawForms, SheetLines}, f.GetSheetList())

	fields, err := f.GetRows(SheetFields)
	require.NoError(t, err)
	require.Len(t, fields, 9)
	assert.Equal(t, []string{"Field", "Value"}, fields[0])
	assert.Equal(t, []string{"bol_number", "BOL-123"}, fields[1])
	assert.Equal(t, []string{"shipper", "ACME Corp"}, fields[2])

	forms, err := f.GetRows(SheetRawForms)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Key", "Value"}, {"Shipper Name", "ACME Corp"}, {"B/L No", "BOL-123"}}, forms)

	lines, err := f.GetRows(SheetLines)
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "upload:bol.pdf", props.Subject)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "BOL_March_2025", SanitizeFilename("BOL / March 2025"))
	assert.Equal(t, "a-b_c", SanitizeFilename("__a-b__c__"))
	assert.Len(t, SanitizeFilename(strings.Repeat("x", 150)), 100)
	assert.Equal(t, "Ship--to_Acme_Co", SanitizeFilename("Ship--to & Acme Co.!!"))
	assert.Equal(t, strings.Repeat("y", 99), SanitizeFilename(strings.Repeat("y", 99)+"_z"))
}

func TestBuildFilename(t *testing.T) {
	date := time.Now().Format("2006-01-02")

	assert.Equal(t, "scan_01_"+date+".csv", BuildFilename("scan 01.pdf", domain.ExportFormatCSV))
	assert.Equal(t, "bill_of_lading_"+date+".xlsx", BuildFilename("", domain.ExportFormatXLSX))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}
