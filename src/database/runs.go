package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/username/commrec/backend/src/models"
	"github.com/username/commrec/backend/src/utils"
)

// Run is one persisted reconciliation run.
type Run struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Stats     models.ProcessingStats `json:"stats"`
}

// SaveRun persists a run and its normalized records in one transaction.
// keys carries the dedup key per record; the unique (run_id, dedup_key)
// constraint guards against double-inserting a record within a run.
func SaveRun(run Run, records []models.Record, keys []string) error {
	if len(keys) != len(records) {
		return fmt.Errorf("dedup key count %d does not match record count %d", len(keys), len(records))
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO reconciliation_runs (id, created_at, input_count, skipped_count, duplicate_count, defect_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339),
		run.Stats.InputCount, run.Stats.SkippedCount, run.Stats.DuplicateCount, run.Stats.DefectCount)
	if err != nil {
		return fmt.Errorf("error inserting run %s: %w", run.ID, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO commission_records (run_id, carrier_name, commission_period, agent_name, agency_name,
		 member_id, member_name, plan_name, enrollment_date, disenrollment_date, commission_amount,
		 transaction_type, policy_number, effective_date, processed_date, dedup_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.Exec(run.ID, r.CarrierName, r.CommissionPeriod, r.AgentName, r.AgencyName,
			r.MemberID, r.MemberName, r.PlanName,
			utils.FormatDate(r.EnrollmentDate), utils.FormatDate(r.DisenrollmentDate), r.Amount(),
			r.TransactionType, r.PolicyNumber,
			utils.FormatDate(r.EffectiveDate), utils.FormatDate(r.ProcessedDate), keys[i])
		if err != nil {
			return fmt.Errorf("error inserting record for agent %q: %w", r.AgentName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing run %s: %w", run.ID, err)
	}
	return nil
}

// GetLatestRun returns the most recently created run.
func GetLatestRun() (Run, error) {
	row := DB.QueryRow(
		`SELECT id, created_at, input_count, skipped_count, duplicate_count, defect_count
		 FROM reconciliation_runs ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanRun(row)
}

// GetRun returns one run by id.
func GetRun(id string) (Run, error) {
	row := DB.QueryRow(
		`SELECT id, created_at, input_count, skipped_count, duplicate_count, defect_count
		 FROM reconciliation_runs WHERE id = ?`, id)
	return scanRun(row)
}

func scanRun(row *sql.Row) (Run, error) {
	var run Run
	var createdAt string
	err := row.Scan(&run.ID, &createdAt,
		&run.Stats.InputCount, &run.Stats.SkippedCount, &run.Stats.DuplicateCount, &run.Stats.DefectCount)
	if err != nil {
		return Run{}, err
	}
	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		run.CreatedAt = t
	}
	return run, nil
}

// GetRunRecords returns a run's normalized records in insertion order.
func GetRunRecords(runID string) ([]models.Record, error) {
	rows, err := DB.Query(
		`SELECT carrier_name, commission_period, agent_name, agency_name, member_id, member_name,
		 plan_name, enrollment_date, disenrollment_date, commission_amount, transaction_type,
		 policy_number, effective_date, processed_date
		 FROM commission_records WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("error querying records for run %s: %w", runID, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		var enrollment, disenrollment, effective, processed string
		var amount float64
		err := rows.Scan(&r.CarrierName, &r.CommissionPeriod, &r.AgentName, &r.AgencyName,
			&r.MemberID, &r.MemberName, &r.PlanName, &enrollment, &disenrollment,
			&amount, &r.TransactionType, &r.PolicyNumber, &effective, &processed)
		if err != nil {
			return nil, fmt.Errorf("error scanning record for run %s: %w", runID, err)
		}
		r.CommissionAmount = &amount
		r.EnrollmentDate = parseStoredDate(enrollment)
		r.DisenrollmentDate = parseStoredDate(disenrollment)
		r.EffectiveDate = parseStoredDate(effective)
		r.ProcessedDate = parseStoredDate(processed)
		records = append(records, r)
	}
	return records, rows.Err()
}

func parseStoredDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(utils.ISODateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}
