package parsers

import (
	"github.com/username/commrec/backend/src/models"
)

// Parser converts one carrier's raw tabular rows into canonical records.
// Row order is preserved. Rows missing both an agent identity and a
// commission amount are skipped and counted, not fatal; unparsable dates and
// amounts are nulled and counted as defects with the row retained.
type Parser interface {
	// Carrier returns the canonical carrier name stamped on every record.
	Carrier() string
	// Parse produces records for the given commission period (YYYY-MM).
	Parse(period string, rows []models.RawRow) (Result, error)
}

// Result is a carrier batch outcome: records in input order plus the
// recoverable-issue counters the pipeline aggregates into ProcessingStats.
type Result struct {
	Records []models.Record
	Skipped int // rows dropped for missing required fields
	Defects int // field-level date/amount coercion failures
}
