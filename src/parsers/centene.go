package parsers

// NewCenteneParser builds the parser for Centene commission exports.
// Centene carries no disenrollment column; the policy slot holds the state
// code their export files.
func NewCenteneParser() Parser {
	return newTableParser(carrierTable{
		Carrier: "Centene",
		Columns: columnMap{
			AgentName:        "Writing Broker Name",
			AgencyName:       "Delta Care CORPORATION",
			MemberID:         "Medicare Beneficiary Identifier (MBI)",
			MemberName:       "Member Name",
			PlanName:         "Plan Plan Type",
			EnrollmentDate:   "Effective Date",
			CommissionAmount: "Payment Amount",
			TransactionType:  "Payment Type",
			PolicyNumber:     "Policy State",
			EffectiveDate:    "Effective Date",
		},
		DateFormats: []string{"2006-01-02", "01/02/2006"},
	})
}
