package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/username/commrec/backend/src/models"
)

// ReadCSV reads a comma-separated export into raw rows, the first row
// serving as the column header. Ragged rows are tolerated.
func ReadCSV(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	return rowsFromCells(cells), nil
}
