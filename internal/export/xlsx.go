package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bolextract/internal/domain"
)

// Sheet names of the XLSX export.
const (
	SheetFields   = "Fields"
	SheetRawForms = "Raw Forms"
	SheetLines    = "Lines"
)

// WriteXLSX writes result as a workbook with one sheet each for canonical
// fields, raw form pairs and document lines.
func WriteXLSX(out io.Writer, result *domain.ExtractionResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetFields); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetRawForms, SheetLines} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}

	fields := [][]interface{}{{"Field", "Value"}}
	forms := [][]interface{}{{"Key", "Value"}}
	lines := [][]interface{}{{"Line"}}
	if ext := result.Extraction; ext != nil {
		for _, field := range domain.CanonicalFields {
			v, _ := ext.Value(field)
			fields = append(fields, []interface{}{string(field), v})
		}
		for _, e := range ext.RawForms.Entries() {
			forms = append(forms, []interface{}{e.Key, e.Value})
		}
		for _, line := range ext.Data {
			lines = append(lines, []interface{}{line})
		}
	}

	for sheet, rows := range map[string][][]interface{}{
		SheetFields:   fields,
		SheetRawForms: forms,
		SheetLines:    lines,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "Bill of Lading extraction",
		Subject:    result.Meta.Source,
		Identifier: result.Meta.ID.String(),
	}); err != nil {
		return fmt.Errorf("setting doc props: %w", err)
	}

	f.SetActiveSheet(0)
	return f.Write(out)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
