package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/username/commrec/backend/src/models"
)

// ReadXLSX reads the first sheet of an Excel workbook into raw rows, the
// first row serving as the column header.
func ReadXLSX(r io.Reader) ([]models.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %q: %w", sheetName, err)
	}
	return rowsFromCells(cells), nil
}
