package normalizer

import "strings"

// transactionTypeMap folds the carriers' free-form type labels into the
// closed canonical set. Canonical values map to themselves so a second
// normalization pass is a no-op.
var transactionTypeMap = map[string]string{
	"new":          "New",
	"new-business": "New",
	"new business": "New",
	"renewal":      "Renewal",
	"renew":        "Renewal",
	"cancel":       "Cancellation",
	"cancellation": "Cancellation",
	"terminate":    "Termination",
	"termination":  "Termination",
	"adjustment":   "Adjustment",
	"adj":          "Adjustment",
	"bonus":        "Bonus",
	"commission":   "Commission",
	"chargeback":   "Chargeback",
	"charge back":  "Chargeback",
	"reversal":     "Chargeback",
	"correction":   "Correction",
	"other":        "Other",
}

// StandardizeTransactionType maps a raw type label to its canonical value,
// defaulting to Other.
func StandardizeTransactionType(raw string) string {
	if canonical, ok := transactionTypeMap[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return "Other"
}

// IsChargeback reports whether a canonical transaction type represents a
// reversing commission.
func IsChargeback(canonicalType string) bool {
	return canonicalType == "Chargeback"
}
