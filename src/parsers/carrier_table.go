package parsers

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/utils"
)

// columnMap binds canonical record fields to one carrier's raw column
// headers. An empty entry means the carrier has no source column and the
// field stays null.
type columnMap struct {
	AgentName         string
	AgencyName        string
	MemberID          string
	MemberName        string
	PlanName          string
	EnrollmentDate    string
	DisenrollmentDate string
	CommissionAmount  string
	TransactionType   string
	PolicyNumber      string
	EffectiveDate     string
	ProcessedDate     string
}

// carrierTable is the whole per-carrier configuration: one column map plus
// the format quirks the shared core needs. New carriers add a table, not a
// parser implementation.
type carrierTable struct {
	Carrier string
	Columns columnMap
	// DateFormats are tried in order; empty falls back to the common list.
	DateFormats []string
	// AgentFallbackColumn is consulted when the agent column is blank.
	AgentFallbackColumn string
	// MemberNameColumns, when set, are joined with a space instead of
	// reading Columns.MemberName (carriers that split first/last name).
	MemberNameColumns []string
	// DefaultTransactionType is used when the carrier has no type column or
	// the cell is blank.
	DefaultTransactionType string
}

// tableParser runs the shared extraction core over one carrier table.
type tableParser struct {
	table carrierTable
}

func newTableParser(table carrierTable) *tableParser {
	return &tableParser{table: table}
}

func (p *tableParser) Carrier() string { return p.table.Carrier }

func (p *tableParser) Parse(period string, rows []models.RawRow) (Result, error) {
	if err := utils.ValidatePeriod(period); err != nil {
		return Result{}, err
	}

	var res Result
	for i, row := range rows {
		rowNum := i + 1
		rec, defects, ok := p.extract(period, rowNum, row)
		if !ok {
			res.Skipped++
			logger.L.Debug("Skipping row missing required fields",
				"carrier", p.table.Carrier, "row", rowNum)
			continue
		}

		// Both dates present with disenrollment before enrollment points at
		// an upstream mapping bug, not a data-quality issue.
		if rec.EnrollmentDate != nil && rec.DisenrollmentDate != nil &&
			rec.DisenrollmentDate.Before(*rec.EnrollmentDate) {
			return Result{}, fmt.Errorf(
				"%s row %d: disenrollment date %s precedes enrollment date %s",
				p.table.Carrier, rowNum,
				utils.FormatDate(rec.DisenrollmentDate), utils.FormatDate(rec.EnrollmentDate))
		}

		res.Defects += defects
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// extract maps one raw row to a record. ok=false means the row fails
// required-field extraction (no agent identity and no amount).
func (p *tableParser) extract(period string, rowNum int, row models.RawRow) (models.Record, int, bool) {
	cols := p.table.Columns
	defects := 0

	agent := strings.TrimSpace(row.Get(cols.AgentName))
	if agent == "" && p.table.AgentFallbackColumn != "" {
		agent = strings.TrimSpace(row.Get(p.table.AgentFallbackColumn))
	}

	amount, amountDefect := CleanAmount(row.Get(cols.CommissionAmount))
	if agent == "" && amount == nil {
		return models.Record{}, 0, false
	}
	if amountDefect {
		defects++
		logger.L.Warn("Uncoercible commission amount",
			"carrier", p.table.Carrier, "row", rowNum, "value", row.Get(cols.CommissionAmount))
	}

	memberName := strings.TrimSpace(row.Get(cols.MemberName))
	if len(p.table.MemberNameColumns) > 0 {
		parts := make([]string, 0, len(p.table.MemberNameColumns))
		for _, c := range p.table.MemberNameColumns {
			if v := strings.TrimSpace(row.Get(c)); v != "" {
				parts = append(parts, v)
			}
		}
		memberName = strings.Join(parts, " ")
	}

	txType := strings.TrimSpace(row.Get(cols.TransactionType))
	if txType == "" {
		txType = p.table.DefaultTransactionType
	}

	rec := models.Record{
		CarrierName:      p.table.Carrier,
		CommissionPeriod: period,
		AgentName:        agent,
		AgencyName:       strings.TrimSpace(row.Get(cols.AgencyName)),
		MemberID:         strings.TrimSpace(row.Get(cols.MemberID)),
		MemberName:       memberName,
		PlanName:         strings.TrimSpace(row.Get(cols.PlanName)),
		CommissionAmount: amount,
		TransactionType:  txType,
		PolicyNumber:     strings.TrimSpace(row.Get(cols.PolicyNumber)),
		RowIndex:         rowNum,
	}
	rec.EnrollmentDate = p.parseDate(row.Get(cols.EnrollmentDate), rowNum, "enrollment_date", &defects)
	rec.DisenrollmentDate = p.parseDate(row.Get(cols.DisenrollmentDate), rowNum, "disenrollment_date", &defects)
	rec.EffectiveDate = p.parseDate(row.Get(cols.EffectiveDate), rowNum, "effective_date", &defects)
	rec.ProcessedDate = p.parseDate(row.Get(cols.ProcessedDate), rowNum, "processed_date", &defects)

	return rec, defects, true
}

func (p *tableParser) parseDate(raw string, rowNum int, field string, defects *int) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, ok := utils.ParseDateAny(raw, p.table.DateFormats)
	if !ok {
		*defects++
		logger.L.Warn("Unparsable date",
			"carrier", p.table.Carrier, "row", rowNum, "field", field, "value", raw)
		return nil
	}
	return &t
}
