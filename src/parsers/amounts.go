package parsers

import (
	"math"
	"strconv"
	"strings"

	"github.com/username/commrec/backend/src/utils"
)

// CleanAmount coerces a raw currency cell to a decimal with 2 fractional
// digits. It strips dollar signs and thousands separators and reads
// parenthesized values as negatives. A blank cell is missing (nil, no
// defect); a non-blank cell that cannot coerce is missing with defect=true.
func CleanAmount(raw string) (amount *float64, defect bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, true
	}
	v = utils.RoundCurrency(v)
	return &v, false
}
