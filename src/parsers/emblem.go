package parsers

// NewEmblemParser builds the parser for Emblem commission exports. Emblem
// splits member names into first/last columns and has no transaction type
// column, so every row defaults to Commission.
func NewEmblemParser() Parser {
	return newTableParser(carrierTable{
		Carrier: "Emblem",
		Columns: columnMap{
			AgentName:         "Rep Name",
			AgencyName:        "Payee Name",
			MemberID:          "Member ID",
			PlanName:          "Plan",
			EnrollmentDate:    "Effective Date",
			DisenrollmentDate: "Term Date",
			CommissionAmount:  "Payment",
			PolicyNumber:      "Member HIC",
			EffectiveDate:     "Effective Date",
		},
		MemberNameColumns:      []string{"Member First Name", "Member Last Name"},
		DateFormats:            []string{"01/02/2006", "2006-01-02"},
		DefaultTransactionType: "Commission",
	})
}
