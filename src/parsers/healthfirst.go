package parsers

// NewHealthfirstParser builds the parser for Healthfirst commission exports.
// When the producer name is blank their files sometimes carry the payee in
// the producer type column, so that is used as the agent fallback.
func NewHealthfirstParser() Parser {
	return newTableParser(carrierTable{
		Carrier: "Healthfirst",
		Columns: columnMap{
			AgentName:         "Producer Name",
			MemberID:          "Member ID",
			MemberName:        "Member Name",
			PlanName:          "Product",
			EnrollmentDate:    "Member Effective Date",
			DisenrollmentDate: "Disenrolled Date",
			CommissionAmount:  "Amount",
			TransactionType:   "Enrollment Type",
			EffectiveDate:     "Member Effective Date",
		},
		AgentFallbackColumn: "Producer Type",
		DateFormats:         []string{"2006-01-02", "01/02/2006", "02-01-2006"},
	})
}
