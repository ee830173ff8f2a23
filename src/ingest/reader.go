// Package ingest reads carrier export files into ordered raw rows for the
// parsers. It is a thin collaborator: no cleaning happens here, cells pass
// through as the text the file carries.
package ingest

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/username/commrec/backend/src/models"
)

// ReadTabular picks the reader from the filename extension. Carrier exports
// arrive as .xlsx or .csv; anything else is rejected up front.
func ReadTabular(filename string, r io.Reader) ([]models.RawRow, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q, want .xlsx or .csv", path.Ext(filename))
	}
}

// rowsFromCells converts a header row plus data rows into RawRows. Cells
// beyond the header width are dropped; short rows leave the remaining
// columns absent.
func rowsFromCells(cells [][]string) []models.RawRow {
	if len(cells) == 0 {
		return []models.RawRow{}
	}
	header := cells[0]
	rows := make([]models.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(models.RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(line) {
				row[col] = line[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
