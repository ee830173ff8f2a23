package models

// RawRow is one row of a carrier export as delivered by the file-reading
// collaborators: raw column header -> raw cell text. Numeric and date cells
// arrive as their display strings; empty cells are absent or "".
type RawRow map[string]string

// Get returns the cell value for a raw column as-is, or "" when the column
// is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}
