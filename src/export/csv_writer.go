// Package export renders the normalized record set as the canonical
// 14-column CSV consumed by downstream reporting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/security/validation"
	"github.com/username/commrec/backend/src/utils"
)

// WriteRecordsCSV writes the canonical schema header plus one line per
// record. Text fields pass through the formula-injection sanitizer since
// the output is opened in spreadsheet software.
func WriteRecordsCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.StandardColumns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		amount := ""
		if r.CommissionAmount != nil {
			amount = strconv.FormatFloat(*r.CommissionAmount, 'f', 2, 64)
		}
		line := []string{
			validation.SanitizeForFormulaInjection(r.CarrierName),
			r.CommissionPeriod,
			validation.SanitizeForFormulaInjection(r.AgentName),
			validation.SanitizeForFormulaInjection(r.AgencyName),
			validation.SanitizeForFormulaInjection(r.MemberID),
			validation.SanitizeForFormulaInjection(r.MemberName),
			validation.SanitizeForFormulaInjection(r.PlanName),
			utils.FormatDate(r.EnrollmentDate),
			utils.FormatDate(r.DisenrollmentDate),
			amount,
			r.TransactionType,
			validation.SanitizeForFormulaInjection(r.PolicyNumber),
			utils.FormatDate(r.EffectiveDate),
			utils.FormatDate(r.ProcessedDate),
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
