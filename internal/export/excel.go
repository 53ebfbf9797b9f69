package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/octoscout/octoscout/internal/domain"
)

const sheetName = "Contributors"

// WriteExcel writes the same tabular schema as WriteCSV to an XLSX workbook
// at path, creating the destination directory if absent.
func WriteExcel(records []*domain.ContributorRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := toCellValues(Header())
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address export row: %w", err)
		}
		row := toCellValues(Row(rec))
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write export row for %s: %w", rec.Username, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save export file %s: %w", path, err)
	}
	return nil
}

func toCellValues(fields []string) []interface{} {
	values := make([]interface{}, len(fields))
	for i, field := range fields {
		values[i] = field
	}
	return values
}
