package models

import "time"

// Record is the unified representation of one commission transaction.
// Each carrier parser is responsible for populating as many of these fields
// as possible directly from its source file; fields with no source column
// stay nil/empty. Dates and the amount are pointers so that "missing" is
// distinguishable from a zero value.
type Record struct {
	CarrierName       string     `json:"carrier_name"`
	CommissionPeriod  string     `json:"commission_period"` // YYYY-MM
	AgentName         string     `json:"agent_name"`
	AgencyName        string     `json:"agency_name,omitempty"`
	MemberID          string     `json:"member_id,omitempty"`
	MemberName        string     `json:"member_name,omitempty"`
	PlanName          string     `json:"plan_name,omitempty"`
	EnrollmentDate    *time.Time `json:"enrollment_date,omitempty"`
	DisenrollmentDate *time.Time `json:"disenrollment_date,omitempty"`
	CommissionAmount  *float64   `json:"commission_amount"`
	TransactionType   string     `json:"transaction_type"`
	PolicyNumber      string     `json:"policy_number,omitempty"`
	EffectiveDate     *time.Time `json:"effective_date,omitempty"`
	ProcessedDate     *time.Time `json:"processed_date,omitempty"`

	// RowIndex is the 1-based position of the source row within the merged
	// input, used as the final dedup tie-break. Not part of the canonical
	// output schema.
	RowIndex int `json:"-"`
}

// Amount returns the commission amount, treating a missing value as zero.
func (r *Record) Amount() float64 {
	if r.CommissionAmount == nil {
		return 0
	}
	return *r.CommissionAmount
}

// StandardColumns lists the canonical output schema, in export order.
func StandardColumns() []string {
	return []string{
		"carrier_name",
		"commission_period",
		"agent_name",
		"agency_name",
		"member_id",
		"member_name",
		"plan_name",
		"enrollment_date",
		"disenrollment_date",
		"commission_amount",
		"transaction_type",
		"policy_number",
		"effective_date",
		"processed_date",
	}
}
